package schema

import "time"

// UsersInsert is the subset of users columns written when an identity is first synced.
type UsersInsert struct {
	ID        string    `json:"id"`
	Email     *string   `json:"email"`
	FirstName *string   `json:"first_name"`
	LastName  string    `json:"last_name"`
	RoleID    string    `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Columns returns the users columns in the order Values produces them.
func (UsersInsert) Columns() []string {
	return []string{"id", "email", "first_name", "last_name", "role_id", "created_at"}
}

// Values returns the column values in Columns order; nil pointers become SQL NULL.
func (u UsersInsert) Values() []any {
	return []any{u.ID, nullable(u.Email), nullable(u.FirstName), u.LastName, u.RoleID, u.CreatedAt}
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
