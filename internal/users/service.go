package users

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Service struct {
	Repo       Repo
	RoleID     string
	OnConflict ConflictPolicy
	// Now is the clock used for created_at; defaults to time.Now.
	Now func() time.Time
}

func NewService(repo Repo, roleID string, policy ConflictPolicy) *Service {
	return &Service{Repo: repo, RoleID: roleID, OnConflict: policy, Now: time.Now}
}

// SyncResult describes the outcome of a successful sync.
type SyncResult struct {
	Profile Profile
	// Created is false when the id already existed and the ignore policy skipped the insert.
	Created bool
}

// SyncFromEvent derives the default profile for identity and performs exactly one insert.
func (s *Service) SyncFromEvent(ctx context.Context, identity Identity) (SyncResult, error) {
	if s == nil || s.Repo == nil {
		return SyncResult{}, errors.New("users service not configured")
	}
	if identity.ID == "" {
		return SyncResult{}, ErrMissingIdentity
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	profile := NewProfile(identity, s.RoleID, now())
	created, err := s.Repo.Insert(ctx, profile, s.OnConflict)
	if err != nil {
		return SyncResult{Profile: profile}, fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}
	return SyncResult{Profile: profile, Created: created}, nil
}
