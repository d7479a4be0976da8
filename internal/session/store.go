package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when the state file lock cannot be acquired before
// the context is done.
var ErrLocked = errors.New("state file is locked by another process")

const lockRetryDelay = 50 * time.Millisecond

// Store persists a JSON value at a path. Writers hold an exclusive file lock
// so concurrent docnav processes do not lose each other's updates.
type Store[T any] struct {
	path    string
	initial T
	log     *slog.Logger
}

// NewStore returns a store for path that reports initial until something is
// written.
func NewStore[T any](path string, initial T, log *slog.Logger) *Store[T] {
	if log == nil {
		log = slog.Default()
	}
	return &Store[T]{path: path, initial: initial, log: log}
}

// Path returns the state file path.
func (s *Store[T]) Path() string { return s.path }

// LockPath returns the path of the lock file guarding the state file.
func (s *Store[T]) LockPath() string { return s.path + ".lock" }

// Get returns the stored value. A missing or unreadable file yields the
// initial value; read problems are logged, not returned.
func (s *Store[T]) Get() T {
	v, err := s.read()
	if err != nil {
		s.log.Warn("cannot read state, using defaults", "path", s.path, "error", err)
		return s.initial
	}
	return v
}

func (s *Store[T]) read() (T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s.initial, nil
		}
		return s.initial, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return s.initial, fmt.Errorf("invalid state JSON: %w", err)
	}
	return v, nil
}

// Set applies u to the current value under the file lock and writes the
// result. It returns the new value.
func (s *Store[T]) Set(ctx context.Context, u Update[T]) (T, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return s.initial, fmt.Errorf("cannot create state dir: %w", err)
	}

	l := flock.New(s.LockPath())
	locked, err := l.TryLockContext(ctx, lockRetryDelay)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return s.initial, fmt.Errorf("cannot acquire state lock: %w", err)
	}
	if !locked {
		return s.initial, fmt.Errorf("%w (lock: %s)", ErrLocked, s.LockPath())
	}
	defer func() { _ = l.Unlock() }()

	cur := s.Get()
	next := u.Apply(cur)
	if err := s.write(next); err != nil {
		return cur, err
	}
	return next, nil
}

// write replaces the state file atomically via a temp file and rename.
func (s *Store[T]) write(v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal state: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*")
	if err != nil {
		return fmt.Errorf("cannot create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("cannot write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write state: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("cannot install state %s: %w", s.path, err)
	}
	return nil
}

// Reset writes the initial value back to the state file.
func (s *Store[T]) Reset(ctx context.Context) error {
	_, err := s.Set(ctx, Value(s.initial))
	return err
}
