package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultDataDir  = "~/.local/share/daybook"
	DefaultDatabase = "~/.local/share/daybook/daybook.db"
	DefaultUser     = "local"
	DefaultLogLevel = "warn"
)

// Backend selects the snapshot store
type Backend string

const (
	BackendLocal  Backend = "local"
	BackendSQLite Backend = "sqlite"
	BackendRemote Backend = "remote"
)

// Remote holds the PostgREST connection settings
type Remote struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// Config is the resolved configuration of a daybook process
type Config struct {
	Backend     Backend `mapstructure:"backend"`
	DataDir     string  `mapstructure:"data_dir"`
	Database    string  `mapstructure:"database"`
	User        string  `mapstructure:"user"`
	Token       string  `mapstructure:"token"`
	TokenSecret string  `mapstructure:"token_secret"`
	Remote      Remote  `mapstructure:"remote"`
	LogLevel    string  `mapstructure:"log_level"`
}

// New returns a viper instance with defaults, env binding and config file
// discovery set up. DAYBOOK_CONFIG or configFile pin the file explicitly.
func New(configFile string) *viper.Viper {
	v := viper.New()

	v.SetDefault("backend", string(BackendLocal))
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("database", DefaultDatabase)
	v.SetDefault("user", DefaultUser)
	v.SetDefault("token", "")
	v.SetDefault("token_secret", "")
	v.SetDefault("remote.url", "")
	v.SetDefault("remote.api_key", "")
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetEnvPrefix("DAYBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = os.Getenv("DAYBOOK_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("daybook")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}
	return v
}

// Load reads the config file, if any, and decodes the merged settings
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Backend = Backend(strings.ToLower(string(cfg.Backend)))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the backend specific settings
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendLocal, BackendSQLite:
		return nil
	case BackendRemote:
		if c.Remote.URL == "" || c.Remote.APIKey == "" {
			return fmt.Errorf("remote backend needs remote.url and remote.api_key")
		}
		if c.Token == "" {
			return fmt.Errorf("remote backend needs a token (DAYBOOK_TOKEN)")
		}
		return nil
	default:
		return fmt.Errorf("unknown backend %q (want local, sqlite or remote)", c.Backend)
	}
}

// ConfigDir returns the XDG config directory for daybook
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "daybook")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "daybook")
}
