package users

import (
	"context"
	"errors"
	"testing"
	"time"
)

type failingRepo struct {
	MemoryRepo
	err   error
	calls int
}

func (r *failingRepo) Insert(ctx context.Context, profile Profile, policy ConflictPolicy) (bool, error) {
	r.calls++
	return false, r.err
}

func TestSyncFromEventWritesOnce(t *testing.T) {
	repo := NewMemoryRepo("role-1")
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService(repo, "role-1", ConflictError)
	svc.Now = func() time.Time { return fixed }

	res, err := svc.SyncFromEvent(context.Background(), Identity{ID: "u1", Email: strPtr("a.b@example.com")})
	if err != nil {
		t.Fatalf("SyncFromEvent: %v", err)
	}
	if !res.Created {
		t.Fatalf("expected row to be created")
	}
	stored, err := repo.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !stored.CreatedAt.Equal(fixed) || *stored.FirstName != "a.b" {
		t.Fatalf("unexpected stored profile: %+v", stored)
	}
}

func TestSyncFromEventRedeliveryFailsUnderErrorPolicy(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, "role-1", ConflictError)

	if _, err := svc.SyncFromEvent(context.Background(), Identity{ID: "u1"}); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	_, err := svc.SyncFromEvent(context.Background(), Identity{ID: "u1"})
	if !errors.Is(err, ErrStoreWrite) || !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected store write + already exists, got %v", err)
	}
}

func TestSyncFromEventRedeliveryIgnoredUnderIgnorePolicy(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, "role-1", ConflictIgnore)

	if _, err := svc.SyncFromEvent(context.Background(), Identity{ID: "u1", Email: strPtr("first@example.com")}); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	res, err := svc.SyncFromEvent(context.Background(), Identity{ID: "u1", Email: strPtr("second@example.com")})
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if res.Created {
		t.Fatalf("expected redelivery to skip the insert")
	}
	stored, _ := repo.GetByID(context.Background(), "u1")
	if *stored.Email != "first@example.com" {
		t.Fatalf("expected existing row untouched, got %q", *stored.Email)
	}
}

func TestSyncFromEventUnknownRole(t *testing.T) {
	svc := NewService(NewMemoryRepo("role-1"), "role-missing", ConflictError)
	_, err := svc.SyncFromEvent(context.Background(), Identity{ID: "u1"})
	if !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestSyncFromEventRejectsEmptyIDWithoutWrite(t *testing.T) {
	repo := &failingRepo{err: errors.New("should not be called")}
	svc := NewService(repo, "role-1", ConflictError)
	if _, err := svc.SyncFromEvent(context.Background(), Identity{ID: "  "}); !errors.Is(err, ErrMissingIdentity) {
		t.Fatalf("expected ErrMissingIdentity, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("expected no store call, got %d", repo.calls)
	}
}

func TestSyncFromEventDoesNotRetry(t *testing.T) {
	repo := &failingRepo{err: errors.New("connection refused")}
	svc := NewService(repo, "role-1", ConflictError)
	if _, err := svc.SyncFromEvent(context.Background(), Identity{ID: "u1"}); !errors.Is(err, ErrStoreWrite) {
		t.Fatalf("expected ErrStoreWrite, got %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected exactly one insert attempt, got %d", repo.calls)
	}
}

func TestParseConflictPolicy(t *testing.T) {
	if ParseConflictPolicy("ignore") != ConflictIgnore {
		t.Fatalf("expected ignore")
	}
	if ParseConflictPolicy("anything") != ConflictError {
		t.Fatalf("expected error default")
	}
}

func TestSyncFromEventKeepsWhitespaceID(t *testing.T) {
	repo := NewMemoryRepo("role-1")
	svc := NewService(repo, "role-1", ConflictError)

	res, err := svc.SyncFromEvent(context.Background(), Identity{ID: " "})
	if err != nil {
		t.Fatalf("SyncFromEvent: %v", err)
	}
	if !res.Created || res.Profile.ID != " " {
		t.Fatalf("unexpected result: %+v", res)
	}
	if _, err := svc.SyncFromEvent(context.Background(), Identity{}); !errors.Is(err, ErrMissingIdentity) {
		t.Fatalf("expected ErrMissingIdentity for empty id, got %v", err)
	}
}
