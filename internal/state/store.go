// Package state persists small pieces of client state across process
// restarts: the session token, the theme preference, and the stable
// client install ID. Everything else the client holds is an in-memory
// cache rebuilt from the remote API.
package state

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Well-known keys. These survive restarts until explicitly cleared.
const (
	KeySessionToken = "session:token"
	KeyTheme        = "pref:theme"
	KeyClientID     = "client:id"
)

// DefaultTheme is used when no preference has been stored yet.
const DefaultTheme = "dark"

// Store wraps a Badger database holding persisted client state.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the state database at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil      // Disable Badger's internal logging
	opts.SyncWrites = true // The token must survive an immediate crash after login

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value for key. The second return is false when the
// key has never been set.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores the value under key.
func (s *Store) Set(key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Token returns the persisted session token, or "" when anonymous.
func (s *Store) Token() string {
	token, _, err := s.Get(KeySessionToken)
	if err != nil {
		s.logger.Warn("failed to read session token", "error", err)
		return ""
	}
	return token
}

// SetToken persists the session token.
func (s *Store) SetToken(token string) error {
	return s.Set(KeySessionToken, token)
}

// ClearToken removes the persisted session token.
func (s *Store) ClearToken() error {
	return s.Delete(KeySessionToken)
}

// Theme returns the persisted theme preference.
func (s *Store) Theme() string {
	theme, ok, err := s.Get(KeyTheme)
	if err != nil {
		s.logger.Warn("failed to read theme preference", "error", err)
		return DefaultTheme
	}
	if !ok {
		return DefaultTheme
	}
	return theme
}

// SetTheme persists the theme preference.
func (s *Store) SetTheme(theme string) error {
	return s.Set(KeyTheme, theme)
}

// ClientID returns the stable install identifier, minting and
// persisting one on first use.
func (s *Store) ClientID() (string, error) {
	id, ok, err := s.Get(KeyClientID)
	if err != nil {
		return "", err
	}
	if ok {
		return id, nil
	}

	id = uuid.NewString()
	if err := s.Set(KeyClientID, id); err != nil {
		return "", err
	}
	s.logger.Debug("minted client install id", "client_id", id)
	return id, nil
}
