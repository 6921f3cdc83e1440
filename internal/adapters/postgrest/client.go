// Package postgrest stores snapshots in the users_data table of a PostgREST
// (Supabase) backend.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"daybook/internal/adapters/wire"
	"daybook/internal/domain"
	"daybook/internal/ports"
)

const tablePath = "/rest/v1/users_data"

// Config holds the connection settings of the remote store
type Config struct {
	URL    string
	APIKey string
	// Token is the user's access token; the API key is used when empty
	Token   string
	Timeout time.Duration
}

// Store implements ports.Store against the remote users_data table
type Store struct {
	httpClient *http.Client
	config     Config
	now        func() time.Time
}

// Ensure Store implements ports.Store
var _ ports.Store = (*Store)(nil)

// NewStore creates a remote store client
func NewStore(cfg Config) *Store {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	return &Store{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		now:        time.Now,
	}
}

// Load fetches the user's row
func (s *Store) Load(ctx context.Context, userID string) (*domain.Aggregate, error) {
	query := url.Values{}
	query.Set("user_id", "eq."+userID)
	query.Set("select", "*")

	var rows []wire.Row
	if err := s.do(ctx, http.MethodGet, query, nil, &rows, http.StatusOK); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrSnapshotNotFound
	}
	return rows[0].Aggregate()
}

// Save overwrites the user's row, creating it when the update matched nothing
func (s *Store) Save(ctx context.Context, userID string, data *domain.Aggregate) error {
	row, err := wire.FromAggregate(userID, data, s.now())
	if err != nil {
		return err
	}

	query := url.Values{}
	query.Set("user_id", "eq."+userID)

	var updated []wire.Row
	if err := s.do(ctx, http.MethodPatch, query, row, &updated, http.StatusOK); err != nil {
		return err
	}
	if len(updated) > 0 {
		return nil
	}
	return s.do(ctx, http.MethodPost, nil, row, nil, http.StatusCreated)
}

// Initialize inserts an empty row. A conflicting row yields ErrSnapshotExists.
func (s *Store) Initialize(ctx context.Context, userID string) (*domain.Aggregate, error) {
	data := domain.NewAggregate()
	row, err := wire.FromAggregate(userID, data, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.do(ctx, http.MethodPost, nil, row, nil, http.StatusCreated); err != nil {
		return nil, err
	}
	return data, nil
}

// StatusError is returned for unexpected HTTP responses
type StatusError struct {
	Method string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote store %s: status %d: %s", e.Method, e.Status, e.Body)
}

func (s *Store) do(ctx context.Context, method string, query url.Values, body any, out any, want int) error {
	endpoint := s.config.URL + tablePath
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	s.authorize(req)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if out != nil && method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict && method == http.MethodPost {
		return ports.ErrSnapshotExists
	}
	if resp.StatusCode != want {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Method: method, Status: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (s *Store) authorize(req *http.Request) {
	req.Header.Set("apikey", s.config.APIKey)
	token := s.config.Token
	if token == "" {
		token = s.config.APIKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
}
