package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"daybook/internal/adapters/filesystem"
	"daybook/internal/adapters/wire"
	"daybook/internal/domain"
	"daybook/internal/ports"
)

const table = "users_data"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store implements ports.Store on a local SQLite database laid out like the
// remote users_data table
type Store struct {
	db  *sql.DB
	sb  squirrel.StatementBuilderType
	now func() time.Time
}

// Ensure Store implements ports.Store
var _ ports.Store = (*Store)(nil)

// Open creates the database file if needed, applies migrations and connects
func Open(path string) (*Store, error) {
	path = filesystem.ExpandHome(path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	if err := RunMigrations(path); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	return &Store{
		db:  db,
		sb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		now: time.Now,
	}, nil
}

// RunMigrations applies the embedded schema migrations to the database at path
func RunMigrations(path string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite://"+path)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the user's row
func (s *Store) Load(ctx context.Context, userID string) (*domain.Aggregate, error) {
	query, args, err := s.sb.Select(wire.Columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	values := make([]sql.NullString, len(wire.Columns))
	dest := make([]any, len(values))
	for i := range values {
		dest[i] = &values[i]
	}

	err = s.db.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	row := wire.Row{UserID: userID}
	for i, field := range row.Fields() {
		if values[i].Valid {
			*field = []byte(values[i].String)
		}
	}
	return row.Aggregate()
}

// Save overwrites the user's row, inserting it when missing
func (s *Store) Save(ctx context.Context, userID string, data *domain.Aggregate) error {
	row, err := wire.FromAggregate(userID, data, s.now())
	if err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *snapshotTx) error {
		updated, err := tx.update(ctx, row)
		if err != nil {
			return err
		}
		if updated {
			return nil
		}
		return tx.insert(ctx, row)
	})
}

// Initialize inserts an empty row unless the user already has one
func (s *Store) Initialize(ctx context.Context, userID string) (*domain.Aggregate, error) {
	data := domain.NewAggregate()
	row, err := wire.FromAggregate(userID, data, s.now())
	if err != nil {
		return nil, err
	}

	err = s.withTx(ctx, func(tx *snapshotTx) error {
		exists, err := tx.exists(ctx, userID)
		if err != nil {
			return err
		}
		if exists {
			return ports.ErrSnapshotExists
		}
		return tx.insert(ctx, row)
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Store) withTx(ctx context.Context, fn func(tx *snapshotTx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	tx := &snapshotTx{tx: sqlTx, sb: s.sb}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
