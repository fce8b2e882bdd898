// Package cartstore persists cart snapshots as one JSON file per
// session, mirroring the storefront client's local storage behavior.
package cartstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"retrokick/config"
	"retrokick/internal/domain/entity"
	"retrokick/internal/domain/repository"

	"github.com/pkg/errors"
)

type fileStore struct {
	dir    string
	logger *slog.Logger

	// Serializes snapshot writes per process. Carts are session-scoped,
	// so contention is between requests of the same shopper only.
	mu sync.Mutex
}

// New creates the snapshot directory if needed and returns the store.
func New(cfg *config.Config, logger *slog.Logger) (repository.CartStore, error) {
	dir := cfg.Cart.StoragePath
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create cart storage directory")
	}

	return &fileStore{dir: dir, logger: logger}, nil
}

// Load returns the snapshot for the session. Missing or corrupt
// snapshots yield an empty cart: the shopper loses the cart, never the
// session.
func (s *fileStore) Load(_ context.Context, sessionID string) (*entity.Cart, error) {
	empty := &entity.Cart{SessionID: sessionID}

	data, err := os.ReadFile(s.path(sessionID))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read cart snapshot, starting empty",
				"sessionID", sessionID, "error", err)
		}

		return empty, nil
	}

	var cart entity.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		s.logger.Warn("Corrupt cart snapshot, starting empty",
			"sessionID", sessionID, "error", err)

		return empty, nil
	}
	cart.SessionID = sessionID

	return &cart, nil
}

// Save writes the full cart snapshot atomically (write-and-rename).
func (s *fileStore) Save(_ context.Context, cart *entity.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cart snapshot")
	}

	target := s.path(cart.SessionID)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write cart snapshot")
	}
	if err := os.Rename(tmp, target); err != nil {
		return errors.Wrap(err, "failed to replace cart snapshot")
	}

	return nil
}

// Delete removes the session's snapshot; absent snapshots are a no-op.
func (s *fileStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(sessionID)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to delete cart snapshot")
	}

	return nil
}

func (s *fileStore) path(sessionID string) string {
	// Session ids are caller-provided; strip path separators so a
	// hostile id cannot escape the storage directory.
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.':
			return '_'
		}

		return r
	}, sessionID)

	return filepath.Join(s.dir, safe+".json")
}
