package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Hermes   HermesConfig   `yaml:"hermes"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port               int     `yaml:"port"`
	MetricsPort        int     `yaml:"metrics_port"`
	AdminToken         string  `yaml:"admin_token"`
	RateLimitPerSecond float64 `yaml:"rate_limit_per_second"`
	RateLimitBurst     int     `yaml:"rate_limit_burst"`
	ShutdownTimeoutMs  int     `yaml:"shutdown_timeout_ms"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	URL    string `yaml:"url"`
	// Path is the database file for the sqlite driver.
	Path string `yaml:"path"`
}

// HermesConfig is optional; an empty URL disables event publishing.
type HermesConfig struct {
	URL string `yaml:"url"`
}

type ScoringConfig struct {
	// FactorWeights are the aggregation weights used when a request sends none.
	FactorWeights scoring.FactorWeights `yaml:"factor_weights"`
	// TopObjectives is how many objectives a scope-computed event carries.
	TopObjectives int `yaml:"top_objectives"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutMs) * time.Millisecond
}

// SlogLevel maps the configured level name, defaulting to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger on stdout.
func (l LoggingConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if strings.EqualFold(l.Format, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               8600,
			MetricsPort:        8601,
			RateLimitPerSecond: 20,
			RateLimitBurst:     40,
			ShutdownTimeoutMs:  10000,
		},
		Database: DatabaseConfig{
			Driver: DriverPostgres,
			Path:   "cobalt.db",
		},
		Scoring: ScoringConfig{
			FactorWeights: scoring.DefaultFactorWeights(),
			TopObjectives: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("config: database.url is required for the %s driver", DriverPostgres)
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("config: database.path is required for the %s driver", DriverSQLite)
		}
	default:
		return fmt.Errorf("config: unknown database driver %q", c.Database.Driver)
	}
	if c.Server.RateLimitPerSecond <= 0 || c.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("config: rate limit and burst must be positive")
	}
	if err := c.Scoring.FactorWeights.Validate(); err != nil {
		return fmt.Errorf("config: scoring.factor_weights: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("COBALT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("COBALT_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("COBALT_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("COBALT_RATE_LIMIT_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Server.RateLimitPerSecond = f
		}
	}
	if v := os.Getenv("COBALT_RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitBurst = n
		}
	}
	if v := os.Getenv("COBALT_DATABASE_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("COBALT_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("COBALT_DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("COBALT_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("COBALT_FACTOR_WEIGHTS"); v != "" {
		w, err := ParseFactorWeights(v)
		if err != nil {
			return fmt.Errorf("COBALT_FACTOR_WEIGHTS: %w", err)
		}
		cfg.Scoring.FactorWeights = cfg.Scoring.FactorWeights.Merge(w)
	}
	if v := os.Getenv("COBALT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("COBALT_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	return nil
}

// ParseFactorWeights reads "df3=2,df6=0.5" or repeated "df3=2" pairs.
func ParseFactorWeights(pairs ...string) (scoring.FactorWeights, error) {
	out := scoring.FactorWeights{}
	for _, p := range pairs {
		for _, kv := range strings.Split(p, ",") {
			kv = strings.TrimSpace(kv)
			if kv == "" {
				continue
			}
			id, raw, ok := strings.Cut(kv, "=")
			if !ok {
				return nil, fmt.Errorf("weight %q: expected factor=value", kv)
			}
			w, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, fmt.Errorf("weight %q: %w", kv, err)
			}
			out[strings.TrimSpace(id)] = w
		}
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
