package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/supabase-community/postgrest-go"

	"coach-backend/internal/schema"
)

const restProfileColumns = "id,email,first_name,last_name,role_id,created_at"

// RESTRepo writes users through the managed database's REST endpoint using
// the privileged service key.
type RESTRepo struct {
	client *postgrest.Client
}

// NewRESTRepo constructs a REST-backed store for baseURL (the project URL, without /rest/v1).
func NewRESTRepo(baseURL, serviceKey string) (*RESTRepo, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	serviceKey = strings.TrimSpace(serviceKey)
	if serviceKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required")
	}
	client := postgrest.NewClient(baseURL+"/rest/v1", "public", map[string]string{
		"apikey":        serviceKey,
		"Authorization": "Bearer " + serviceKey,
	})
	if client.ClientError != nil {
		return nil, fmt.Errorf("rest client: %w", client.ClientError)
	}
	return &RESTRepo{client: client}, nil
}

// Insert posts one row. Under the ignore policy a duplicate id is reported as
// not created instead of an error; the stored row is left untouched.
func (r *RESTRepo) Insert(ctx context.Context, profile Profile, policy ConflictPolicy) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, _, err := r.client.From(schema.TableUsers).
		Insert(profile.Insert(), false, "", "minimal", "").
		Execute()
	if err == nil {
		return true, nil
	}
	err = mapRESTError(err)
	if policy == ConflictIgnore && errors.Is(err, ErrAlreadyExists) {
		return false, nil
	}
	return false, err
}

func (r *RESTRepo) GetByID(ctx context.Context, userID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	var rows []schema.UserRow
	_, err := r.client.From(schema.TableUsers).
		Select(restProfileColumns, "", false).
		Eq("id", userID).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return Profile{}, mapRESTError(err)
	}
	if len(rows) == 0 {
		return Profile{}, ErrNotFound
	}
	return profileFromRow(rows[0]), nil
}

func (r *RESTRepo) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := r.client.From(schema.TableUsers).
		Select("id", "", false).
		Limit(1, "").
		Execute()
	if err != nil {
		return fmt.Errorf("rest ping: %w", err)
	}
	return nil
}

// mapRESTError classifies a PostgREST error by the database code carried in its message.
func mapRESTError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, pgUniqueViolation):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case strings.Contains(msg, pgForeignKeyViolation):
		return fmt.Errorf("%w: %w", ErrUnknownRole, err)
	}
	return fmt.Errorf("rest: %w", err)
}
