package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"daybook/internal/domain"
	"daybook/internal/ports"
)

// Session owns the aggregate of one user and commits it after every change.
// All reads and writes go through View and Mutate, which serialize access.
type Session struct {
	mu     sync.Mutex
	store  ports.Store
	userID string
	data   *domain.Aggregate
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option configures a Session
type Option func(*Session)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithIDGenerator overrides how new entity identifiers are produced
func WithIDGenerator(newID func() string) Option {
	return func(s *Session) {
		s.newID = newID
	}
}

// WithLogger sets the logger used for commit diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewID returns a time-ordered UUIDv7 string
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// OpenSession loads the user's snapshot, creating an empty one on first use
func OpenSession(ctx context.Context, store ports.Store, userID string, opts ...Option) (*Session, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}

	s := &Session{
		store:  store,
		userID: userID,
		now:    time.Now,
		newID:  NewID,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := s.loadOrInitialize(ctx)
	if err != nil {
		return nil, err
	}
	s.data = data
	return s, nil
}

func (s *Session) loadOrInitialize(ctx context.Context) (*domain.Aggregate, error) {
	data, err := s.store.Load(ctx, s.userID)
	if err == nil {
		data.Normalize()
		return data, nil
	}
	if !errors.Is(err, ports.ErrSnapshotNotFound) {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	s.logger.Info("initializing user data", "user", s.userID)
	data, err = s.store.Initialize(ctx, s.userID)
	if errors.Is(err, ports.ErrSnapshotExists) {
		// Another client created it in between
		data, err = s.store.Load(ctx, s.userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize data: %w", err)
	}
	data.Normalize()
	return data, nil
}

// UserID returns the identity the session is scoped to
func (s *Session) UserID() string {
	return s.userID
}

// Now returns the current time from the session clock
func (s *Session) Now() time.Time {
	return s.now()
}

// Today returns midnight of the current local day
func (s *Session) Today() time.Time {
	return domain.Day(s.now())
}

// NewID returns a fresh entity identifier
func (s *Session) NewID() string {
	return s.newID()
}

// View runs fn with read access to the aggregate
func (s *Session) View(fn func(data *domain.Aggregate)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.data)
}

// Mutate runs fn against the aggregate and saves it when fn reports a change.
// Errors from fn are returned as-is and nothing is saved. A failed save is
// returned as *PersistError; the change stays applied in memory.
func (s *Session) Mutate(ctx context.Context, op string, fn func(data *domain.Aggregate) (bool, error)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed, err := fn(s.data)
	if err != nil || !changed {
		return changed, err
	}

	if err := s.store.Save(ctx, s.userID, s.data); err != nil {
		s.logger.Error("save failed", "user", s.userID, "op", op, "error", err)
		return true, &PersistError{Op: op, Err: err}
	}
	s.logger.Debug("saved", "user", s.userID, "op", op)
	return true, nil
}

// Reload replaces the in-memory aggregate with the stored snapshot
func (s *Session) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.loadOrInitialize(ctx)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

// Replace swaps in a whole aggregate and saves it, as an import does
func (s *Session) Replace(ctx context.Context, data *domain.Aggregate) error {
	data.Normalize()
	_, err := s.Mutate(ctx, "import", func(current *domain.Aggregate) (bool, error) {
		*current = *data
		return true, nil
	})
	return err
}
