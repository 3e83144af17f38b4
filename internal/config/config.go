// Package config resolves runtime configuration from ~/.gamelan/config.toml,
// GAMELAN_* environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/gamelan-harmony/internal/observability"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "GAMELAN"

	DirName = ".gamelan"

	KeyPreferencesBackend = "preferences.backend"
	KeyPreferencesPath    = "preferences.path"
	KeySQLitePath         = "preferences.sqlite_path"
	KeySessionLatency     = "session.latency"
	KeyLogLevel           = "log.level"
	KeyLogEncoding        = "log.encoding"

	DefaultSessionLatency = 500 * time.Millisecond
)

type Backend string

const (
	BackendTOML   Backend = "toml"
	BackendSQLite Backend = "sqlite"
	BackendChain  Backend = "chain"
	BackendMemory Backend = "memory"
)

type Config struct {
	Dir         string
	Preferences PreferencesConfig
	Session     SessionConfig
	Logger      observability.LoggerConfig
}

type PreferencesConfig struct {
	Backend    Backend
	Path       string
	SQLitePath string
}

type SessionConfig struct {
	// Latency is the simulated network delay of login and register.
	Latency time.Duration
}

// Load reads configuration into v. A nil v gets a fresh viper instance.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	_ = godotenv.Load()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(homeDir, DirName)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyPreferencesBackend, string(BackendTOML))
	v.SetDefault(KeyPreferencesPath, filepath.Join(dir, "preferences.toml"))
	v.SetDefault(KeySQLitePath, filepath.Join(dir, "preferences.db"))
	v.SetDefault(KeySessionLatency, DefaultSessionLatency.String())
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogEncoding, "console")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	backend := Backend(strings.ToLower(strings.TrimSpace(v.GetString(KeyPreferencesBackend))))
	if !backend.Valid() {
		return nil, fmt.Errorf("unsupported preferences backend %q", backend)
	}

	latency := v.GetDuration(KeySessionLatency)
	if latency < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %s", KeySessionLatency, latency)
	}

	return &Config{
		Dir: dir,
		Preferences: PreferencesConfig{
			Backend:    backend,
			Path:       v.GetString(KeyPreferencesPath),
			SQLitePath: v.GetString(KeySQLitePath),
		},
		Session: SessionConfig{Latency: latency},
		Logger: observability.LoggerConfig{
			Level:    v.GetString(KeyLogLevel),
			Encoding: v.GetString(KeyLogEncoding),
		},
	}, nil
}

func (b Backend) Valid() bool {
	switch b {
	case BackendTOML, BackendSQLite, BackendChain, BackendMemory:
		return true
	default:
		return false
	}
}
