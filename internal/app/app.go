// Package app wires configuration, storage and identity into a session
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"

	"daybook/internal/adapters/auth"
	"daybook/internal/adapters/filesystem"
	"daybook/internal/adapters/postgrest"
	"daybook/internal/adapters/sqlite"
	"daybook/internal/application"
	"daybook/internal/config"
	"daybook/internal/logging"
	"daybook/internal/ports"
)

// App holds the dependencies shared by the CLI, TUI and MCP entry points
type App struct {
	Config  *config.Config
	Session *application.Session
	Logger  *slog.Logger
	closers []io.Closer
}

// OpenStore builds the store selected by cfg.Backend. The closer may be nil.
func OpenStore(cfg *config.Config) (ports.Store, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		return filesystem.NewStore(cfg.DataDir), nil, nil
	case config.BackendSQLite:
		store, err := sqlite.Open(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case config.BackendRemote:
		return postgrest.NewStore(postgrest.Config{
			URL:    cfg.Remote.URL,
			APIKey: cfg.Remote.APIKey,
			Token:  cfg.Token,
		}), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// ResolveIdentity picks the identity source. A token wins over the
// configured user; it is verified when a token secret is configured.
func ResolveIdentity(cfg *config.Config) (ports.Identity, error) {
	if cfg.Token == "" {
		return auth.StaticIdentity(cfg.User), nil
	}
	if cfg.TokenSecret == "" {
		return auth.NewTokenIdentity(nil, cfg.Token), nil
	}

	authenticator, err := auth.NewAuthenticator(cfg.TokenSecret, "daybook")
	if err != nil {
		return nil, err
	}
	return auth.NewTokenIdentity(authenticator, cfg.Token), nil
}

// Open resolves the user and loads their session
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	identity, err := ResolveIdentity(cfg)
	if err != nil {
		return nil, err
	}
	userID, err := identity.UserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	store, closer, err := OpenStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Backend, err)
	}

	session, err := application.OpenSession(ctx, store, userID, application.WithLogger(logger))
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}

	logger.Debug("session opened", "user", userID, "backend", cfg.Backend)
	a := &App{Config: cfg, Session: session, Logger: logger}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	return a, nil
}

// Start loads the configuration from v, sets up logging and opens the
// session. Entry points call it once and defer Close.
func Start(ctx context.Context, v *viper.Viper, verbose bool) (*App, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logger, logFile, err := logging.Setup(logging.Options{Level: cfg.LogLevel, Verbose: verbose})
	if err != nil {
		return nil, err
	}

	a, err := Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		logFile.Close()
		return nil, err
	}
	a.closers = append(a.closers, logFile)
	return a, nil
}

// Close releases the store and the log file
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
