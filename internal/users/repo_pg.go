package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"coach-backend/internal/schema"
	"coach-backend/internal/shared/storage/db"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type PGRepo struct {
	DB *sql.DB
}

var insertUserQuery = buildInsertQuery()

func buildInsertQuery() string {
	cols := schema.UsersInsert{}.Columns()
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s)\nVALUES (%s)",
		schema.TableUsers,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
	)
}

func (r *PGRepo) Insert(ctx context.Context, profile Profile, policy ConflictPolicy) (bool, error) {
	query := insertUserQuery
	if policy == ConflictIgnore {
		query += "\nON CONFLICT (id) DO NOTHING"
	}
	res, err := r.DB.ExecContext(ctx, query, profile.Insert().Values()...)
	if err != nil {
		return false, mapPGError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT id, email, first_name, last_name, role_id, created_at
FROM users
WHERE id = $1
LIMIT 1`
	var row schema.UserRow
	var email sql.NullString
	var firstName sql.NullString
	var lastName sql.NullString
	var createdAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&row.ID,
		&email,
		&firstName,
		&lastName,
		&row.RoleID,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	if email.Valid {
		row.Email = &email.String
	}
	if firstName.Valid {
		row.FirstName = &firstName.String
	}
	if lastName.Valid {
		row.LastName = &lastName.String
	}
	if createdAt.Valid {
		row.CreatedAt = &createdAt.Time
	}
	return profileFromRow(row), nil
}

func (r *PGRepo) Ping(ctx context.Context) error {
	return db.Ping(ctx, r.DB, 0)
}

func mapPGError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrUnknownRole, err)
	default:
		return err
	}
}
