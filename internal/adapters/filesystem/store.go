package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"daybook/internal/domain"
	"daybook/internal/ports"
)

const (
	lockTimeout   = 3 * time.Second
	lockRetryTick = 50 * time.Millisecond
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._@-]`)

// Store implements ports.Store with one JSON file per user
type Store struct {
	dataDir string
}

// NewStore creates a store rooted at dataDir
func NewStore(dataDir string) *Store {
	return &Store{dataDir: ExpandHome(dataDir)}
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}

// Path returns the snapshot file of a user
func (s *Store) Path(userID string) string {
	return filepath.Join(s.dataDir, "users", unsafeChars.ReplaceAllString(userID, "_")+".json")
}

// Load reads the user's snapshot
func (s *Store) Load(ctx context.Context, userID string) (*domain.Aggregate, error) {
	var data *domain.Aggregate
	err := s.withLock(ctx, userID, func(path string) error {
		var err error
		data, err = readSnapshot(path)
		return err
	})
	return data, err
}

// Save overwrites the user's snapshot
func (s *Store) Save(ctx context.Context, userID string, data *domain.Aggregate) error {
	return s.withLock(ctx, userID, func(path string) error {
		return writeSnapshot(path, data)
	})
}

// Initialize writes an empty snapshot unless one already exists
func (s *Store) Initialize(ctx context.Context, userID string) (*domain.Aggregate, error) {
	data := domain.NewAggregate()
	err := s.withLock(ctx, userID, func(path string) error {
		if _, err := os.Stat(path); err == nil {
			return ports.ErrSnapshotExists
		}
		return writeSnapshot(path, data)
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// withLock holds the per-user lock file while fn runs so that the CLI, TUI
// and MCP server never interleave writes to the same snapshot.
func (s *Store) withLock(ctx context.Context, userID string, fn func(path string) error) error {
	path := s.Path(userID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryTick)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire lock on %s", path)
	}
	defer func() { _ = lock.Unlock() }()

	return fn(path)
}

func readSnapshot(path string) (*domain.Aggregate, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ports.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if len(content) == 0 {
		return nil, ports.ErrSnapshotNotFound
	}

	var data domain.Aggregate
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	data.Normalize()
	return &data, nil
}

func writeSnapshot(path string, data *domain.Aggregate) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
