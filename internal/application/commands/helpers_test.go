package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"daybook/internal/application"
	"daybook/internal/domain"
	"daybook/internal/ports"
)

// memStore is an in-memory ports.Store that can be told to fail saves
type memStore struct {
	data     map[string]*domain.Aggregate
	saves    int
	failSave error
}

func newMemStore() *memStore {
	return &memStore{data: map[string]*domain.Aggregate{}}
}

func (m *memStore) Load(ctx context.Context, userID string) (*domain.Aggregate, error) {
	a, ok := m.data[userID]
	if !ok {
		return nil, ports.ErrSnapshotNotFound
	}
	return clone(a), nil
}

func (m *memStore) Save(ctx context.Context, userID string, data *domain.Aggregate) error {
	if m.failSave != nil {
		return m.failSave
	}
	m.saves++
	m.data[userID] = clone(data)
	return nil
}

func (m *memStore) Initialize(ctx context.Context, userID string) (*domain.Aggregate, error) {
	if _, ok := m.data[userID]; ok {
		return nil, ports.ErrSnapshotExists
	}
	m.data[userID] = domain.NewAggregate()
	return domain.NewAggregate(), nil
}

func clone(a *domain.Aggregate) *domain.Aggregate {
	raw, err := json.Marshal(a)
	if err != nil {
		panic(err)
	}
	var out domain.Aggregate
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return &out
}

// testClock is a settable clock
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
}

// newTestSession opens a session on a fresh store at Monday 2024-01-01 09:00 UTC
func newTestSession(t *testing.T) (*application.Session, *memStore, *testClock) {
	t.Helper()
	store := newMemStore()
	clock := &testClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	s, err := application.OpenSession(context.Background(), store, "user-1",
		application.WithClock(clock.Now),
		application.WithIDGenerator(sequentialIDs()),
	)
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	return s, store, clock
}

func requireValidation(t *testing.T, err error, field string) {
	t.Helper()
	var valErr *application.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if valErr.Field != field {
		t.Errorf("expected field %q, got %q", field, valErr.Field)
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
