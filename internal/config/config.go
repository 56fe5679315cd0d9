package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/VoidMesh/density/internal/interp"
	"github.com/VoidMesh/density/internal/noise"
)

// FileEnv names the environment variable pointing at an optional YAML file.
const FileEnv = "DENSITY_CONFIG"

const (
	DriverSQLite  = "sqlite"
	DriverLevelDB = "leveldb"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Logging    LoggingConfig    `yaml:"logging"`
	Generation GenerationConfig `yaml:"generation"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type StoreConfig struct {
	Driver       string `yaml:"driver"`
	Path         string `yaml:"path"`
	MaxOpenConns int    `yaml:"max_open_conns"`

	// Retention is how long snapshots are kept. Zero keeps them forever.
	Retention     time.Duration `yaml:"retention"`
	PruneInterval time.Duration `yaml:"prune_interval"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type GenerationConfig struct {
	Seed       int64   `yaml:"seed"`
	NoiseKind  string  `yaml:"noise_kind"`
	Mode       string  `yaml:"mode"`
	Workers    int     `yaml:"workers"`
	WorldName  string  `yaml:"world_name"`
	BiomeScale float64 `yaml:"biome_scale"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Store: StoreConfig{
			Driver:        DriverSQLite,
			Path:          "./density.db",
			MaxOpenConns:  1,
			PruneInterval: time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Generation: GenerationConfig{
			Seed:       0,
			NoiseKind:  string(noise.KindPerlin),
			Mode:       interp.Trilinear.String(),
			Workers:    runtime.NumCPU(),
			WorldName:  "overworld",
			BiomeScale: 256,
		},
	}
}

// Load builds the configuration from defaults, the YAML file named by
// DENSITY_CONFIG if set, and environment variables, in increasing priority.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv(FileEnv); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnvStr("PORT", c.Server.Port)
	c.Server.ReadTimeout = getEnvDuration("READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getEnvDuration("WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.IdleTimeout = getEnvDuration("IDLE_TIMEOUT", c.Server.IdleTimeout)
	c.Server.RequestTimeout = getEnvDuration("REQUEST_TIMEOUT", c.Server.RequestTimeout)
	c.Server.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)

	c.Store.Driver = getEnvStr("STORE_DRIVER", c.Store.Driver)
	c.Store.Path = getEnvStr("STORE_PATH", c.Store.Path)
	c.Store.MaxOpenConns = getEnvInt("STORE_MAX_OPEN_CONNS", c.Store.MaxOpenConns)
	c.Store.Retention = getEnvDuration("STORE_RETENTION", c.Store.Retention)
	c.Store.PruneInterval = getEnvDuration("STORE_PRUNE_INTERVAL", c.Store.PruneInterval)

	c.Logging.Level = getEnvStr("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnvStr("LOG_FORMAT", c.Logging.Format)

	c.Generation.Seed = getEnvInt64("SEED", c.Generation.Seed)
	c.Generation.NoiseKind = getEnvStr("NOISE_KIND", c.Generation.NoiseKind)
	c.Generation.Mode = getEnvStr("INTERP_MODE", c.Generation.Mode)
	c.Generation.Workers = getEnvInt("WORKERS", c.Generation.Workers)
	c.Generation.WorldName = getEnvStr("WORLD_NAME", c.Generation.WorldName)
	c.Generation.BiomeScale = getEnvFloat("BIOME_SCALE", c.Generation.BiomeScale)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Store.Driver) {
	case DriverSQLite, DriverLevelDB:
	default:
		errs = append(errs, fmt.Errorf("store driver %q: must be %s or %s", c.Store.Driver, DriverSQLite, DriverLevelDB))
	}
	if c.Store.Path == "" {
		errs = append(errs, errors.New("store path is empty"))
	}
	if c.Store.Retention < 0 {
		errs = append(errs, fmt.Errorf("store retention must not be negative, got %s", c.Store.Retention))
	}
	if c.Store.Retention > 0 && c.Store.PruneInterval <= 0 {
		errs = append(errs, errors.New("store prune interval must be positive when retention is set"))
	}
	if _, err := interp.ParseMode(c.Generation.Mode); err != nil {
		errs = append(errs, err)
	}
	if _, err := noise.New(noise.Kind(c.Generation.NoiseKind), 0); err != nil {
		errs = append(errs, err)
	}
	if c.Generation.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Generation.Workers))
	}
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server port is empty"))
	}

	return errors.Join(errs...)
}

// InterpMode returns the parsed interpolation mode. Call Validate first.
func (c *Config) InterpMode() interp.Mode {
	m, _ := interp.ParseMode(c.Generation.Mode)
	return m
}

func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
