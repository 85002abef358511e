package users

import (
	"context"
	"fmt"
	"sync"
)

// MemoryRepo keeps users in process; it enforces the primary key and, when
// roles are given, the role foreign key.
type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]Profile
	roles map[string]bool
}

func NewMemoryRepo(roleIDs ...string) *MemoryRepo {
	r := &MemoryRepo{users: make(map[string]Profile)}
	if len(roleIDs) > 0 {
		r.roles = make(map[string]bool, len(roleIDs))
		for _, id := range roleIDs {
			r.roles[id] = true
		}
	}
	return r
}

func (r *MemoryRepo) Insert(ctx context.Context, profile Profile, policy ConflictPolicy) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.roles != nil && !r.roles[profile.RoleID] {
		return false, fmt.Errorf("%w: %s", ErrUnknownRole, profile.RoleID)
	}
	if _, ok := r.users[profile.ID]; ok {
		if policy == ConflictIgnore {
			return false, nil
		}
		return false, fmt.Errorf("%w: %s", ErrAlreadyExists, profile.ID)
	}
	r.users[profile.ID] = profile
	return true, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.users[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return profile, nil
}

func (r *MemoryRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Len returns the number of stored users.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
