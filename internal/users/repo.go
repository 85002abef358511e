package users

import "context"

// ConflictPolicy decides what an insert does when the id already exists.
type ConflictPolicy string

const (
	// ConflictError lets the primary key violation surface as an error.
	ConflictError ConflictPolicy = "error"
	// ConflictIgnore leaves the existing row untouched and reports success.
	ConflictIgnore ConflictPolicy = "ignore"
)

// ParseConflictPolicy maps a configuration value to a policy, defaulting to ConflictError.
func ParseConflictPolicy(raw string) ConflictPolicy {
	if ConflictPolicy(raw) == ConflictIgnore {
		return ConflictIgnore
	}
	return ConflictError
}

// Repo is the users store. Insert reports whether a new row was written.
type Repo interface {
	Insert(ctx context.Context, profile Profile, policy ConflictPolicy) (bool, error)
	GetByID(ctx context.Context, userID string) (Profile, error)
	Ping(ctx context.Context) error
}
