package users

import (
	"strings"
	"time"

	"coach-backend/internal/schema"
)

// Profile is the users row created for a newly synced identity.
type Profile struct {
	ID        string    `json:"id"`
	Email     *string   `json:"email"`
	FirstName *string   `json:"first_name"`
	LastName  string    `json:"last_name"`
	RoleID    string    `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProfile derives the default profile for identity.
func NewProfile(identity Identity, roleID string, now time.Time) Profile {
	return Profile{
		ID:        identity.ID,
		Email:     identity.Email,
		FirstName: firstNameFromEmail(identity.Email),
		LastName:  "",
		RoleID:    roleID,
		CreatedAt: now.UTC(),
	}
}

// firstNameFromEmail returns the local part of email, or nil when there is no email.
func firstNameFromEmail(email *string) *string {
	if email == nil || *email == "" {
		return nil
	}
	local, _, _ := strings.Cut(*email, "@")
	return &local
}

// Insert maps the profile onto the users insert shape.
func (p Profile) Insert() schema.UsersInsert {
	return schema.UsersInsert{
		ID:        p.ID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		RoleID:    p.RoleID,
		CreatedAt: p.CreatedAt,
	}
}

func profileFromRow(row schema.UserRow) Profile {
	p := Profile{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		RoleID:    row.RoleID,
	}
	if row.LastName != nil {
		p.LastName = *row.LastName
	}
	if row.CreatedAt != nil {
		p.CreatedAt = row.CreatedAt.UTC()
	}
	return p
}
