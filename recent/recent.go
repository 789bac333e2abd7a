package recent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

//go:generate mockgen -source=recent.go -destination=mocks/mock_recent.go -package=mocks

const MaxEntries = 20

const guestViewer = "guest"

// Key is the storage key of a viewer's list. An empty viewer is the guest.
func Key(viewer string) string {
	if viewer == "" {
		viewer = guestViewer
	}
	return "recently_viewed:" + viewer
}

// Push moves id to the front of ids, dropping any earlier occurrence and
// trimming the result to limit entries. ids is not modified.
func Push(ids []string, id string, limit int) []string {
	if id == "" || limit <= 0 {
		return ids
	}

	next := make([]string, 0, min(len(ids)+1, limit))
	next = append(next, id)

	for _, existing := range ids {
		if len(next) >= limit {
			break
		}
		if existing != id {
			next = append(next, existing)
		}
	}

	return next
}

type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Service keeps per-viewer recently viewed lists. Both operations are best
// effort: store failures are logged and never returned.
type Service struct {
	store  Store
	mu     sync.Mutex
	logger *slog.Logger
}

func NewService(store Store) *Service {
	return &Service{store: store, logger: slog.Default().With("component", "recent")}
}

func (s *Service) Get(ctx context.Context, viewer string) []string {
	ids, err := s.load(ctx, viewer)
	if err != nil {
		s.logger.Warn("failed to read recently viewed list", "viewer", Key(viewer), "err", err)
		return []string{}
	}
	return ids
}

func (s *Service) Add(ctx context.Context, id, viewer string) {
	if id == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, viewer)
	if err != nil {
		s.logger.Warn("discarding unreadable recently viewed list", "viewer", Key(viewer), "err", err)
		current = []string{}
	}

	raw, err := json.Marshal(Push(current, id, MaxEntries))
	if err != nil {
		s.logger.Warn("failed to encode recently viewed list", "viewer", Key(viewer), "err", err)
		return
	}

	if err := s.store.Set(ctx, Key(viewer), string(raw)); err != nil {
		s.logger.Warn("failed to save recently viewed list", "viewer", Key(viewer), "err", err)
	}
}

func (s *Service) load(ctx context.Context, viewer string) ([]string, error) {
	raw, found, err := s.store.Get(ctx, Key(viewer))
	if err != nil {
		return nil, err
	}

	if !found || raw == "" {
		return []string{}, nil
	}

	var entries []any
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode recently viewed list: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if id, ok := entry.(string); ok {
			ids = append(ids, id)
		}
	}

	return ids, nil
}
