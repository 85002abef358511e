package health

import (
	"context"
	"time"
)

// Pinger is anything whose connectivity can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Service reports whether the users store is reachable.
type Service struct {
	Store   Pinger
	Backend string
	Timeout time.Duration
}

// NewService constructs a new health service.
func NewService(store Pinger, backend string) *Service {
	return &Service{Store: store, Backend: backend, Timeout: 2 * time.Second}
}

// Status pings the store and returns a small health payload.
func (s *Service) Status(ctx context.Context) (map[string]any, error) {
	status := map[string]any{"ok": true, "store": s.Backend}
	if s.Store == nil {
		return status, nil
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.Store.Ping(pingCtx); err != nil {
		status["ok"] = false
		return status, err
	}
	return status, nil
}
