package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Credential slot backends.
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Login modes.
const (
	LoginLocal  = "local"
	LoginRemote = "remote"
)

// User directory backends for the local issuer.
const (
	DirectoryMemory = "memory"
	DirectoryMongo  = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Credential CredentialConfig
	Session    SessionConfig
	Login      LoginConfig
	Mongo      MongoConfig
	Redis      RedisConfig
}

type CredentialConfig struct {
	Store string `env:"CREDENTIAL_STORE, default=file"`
	Path  string `env:"CREDENTIAL_PATH,  default=.console/credential"`
	Key   string `env:"CREDENTIAL_KEY,   default=console:auth_token"`
}

type SessionConfig struct {
	AllowDegradedClaims bool `env:"SESSION_ALLOW_DEGRADED_CLAIMS, default=false"`
	DecodeCacheSize     int  `env:"SESSION_DECODE_CACHE,          default=16"`
}

type LoginConfig struct {
	Mode         string        `env:"LOGIN_MODE,    default=local"`
	URL          string        `env:"LOGIN_URL"`
	Timeout      time.Duration `env:"LOGIN_TIMEOUT, default=10s"`
	JWTSecret    string        `env:"JWT_SECRET"`
	TokenTTL     time.Duration `env:"TOKEN_TTL,     default=8h"`
	Directory    string        `env:"USER_DIRECTORY, default=memory"`
	SeedUsername string        `env:"SEED_USERNAME"`
	SeedPassword string        `env:"SEED_PASSWORD"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=admin_console"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through l and validates it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enum values and mode-specific requirements.
func (c *Config) Validate() error {
	var errs []error

	switch c.Credential.Store {
	case StoreFile, StoreRedis, StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("CREDENTIAL_STORE must be one of file, redis, memory; got %q", c.Credential.Store))
	}

	switch c.Login.Mode {
	case LoginLocal:
		if c.Login.JWTSecret == "" {
			errs = append(errs, errors.New("JWT_SECRET is required when LOGIN_MODE=local"))
		}
		switch c.Login.Directory {
		case DirectoryMemory, DirectoryMongo:
		default:
			errs = append(errs, fmt.Errorf("USER_DIRECTORY must be memory or mongo; got %q", c.Login.Directory))
		}
		if (c.Login.SeedUsername == "") != (c.Login.SeedPassword == "") {
			errs = append(errs, errors.New("SEED_USERNAME and SEED_PASSWORD must be set together"))
		}
	case LoginRemote:
		if c.Login.URL == "" {
			errs = append(errs, errors.New("LOGIN_URL is required when LOGIN_MODE=remote"))
		}
	default:
		errs = append(errs, fmt.Errorf("LOGIN_MODE must be local or remote; got %q", c.Login.Mode))
	}

	if c.Session.DecodeCacheSize < 0 {
		errs = append(errs, errors.New("SESSION_DECODE_CACHE must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// IsDevelopment reports whether pretty, human-oriented output is wanted.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "local"
}
