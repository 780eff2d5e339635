package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"taskmarket.com/taskmarket/internal/constants"
)

type Config struct {
	AppURL                 string
	AppEnv                 string
	DatabaseDriver         string
	DatabaseDSN            string
	AutoMigrate            bool
	RateLimit              int
	RedisAddr              string
	RedisKeyPrefix         string
	ShutdownTimeoutSeconds int
	JWTSecret              string
	JWTExpire              time.Duration
	CORSOrigin             string
	LogLevel               string
	LogFormat              string
	TaskListingPolicy      constants.ListingPolicy
}

// source resolves a key from the environment first, then from the optional
// YAML file, then falls back to the default.
type source struct {
	file map[string]string
}

func (s source) get(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v, ok := s.file[key]; ok && v != "" {
		return v
	}
	return defaultVal
}

func (s source) getInt(key string, defaultVal int) (int, error) {
	v := s.get(key, "")
	if v == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s", key)
	}
	return i, nil
}

func (s source) getBool(key string, defaultVal bool) (bool, error) {
	v := s.get(key, "")
	if v == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid boolean value for %s", key)
	}
	return b, nil
}

func (s source) getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := s.get(key, "")
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration value for %s", key)
	}
	return d, nil
}

// Load reads configuration from the environment. When path is not empty the
// YAML file at path supplies values for keys missing from the environment.
func Load(path string) (Config, error) {
	src := source{}
	if path != "" {
		file, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		src.file = file
	}

	appEnv := src.get("APP_ENV", "development")
	cfg := Config{
		AppURL:            fmt.Sprintf("%s:%s", src.get("APP_HOST", "127.0.0.1"), src.get("APP_PORT", "5010")),
		AppEnv:            appEnv,
		DatabaseDriver:    src.get("DATABASE_DRIVER", "sqlite"),
		DatabaseDSN:       src.get("DATABASE_DSN", "taskmarket.db"),
		RedisAddr:         src.get("REDIS_ADDR", ""),
		RedisKeyPrefix:    src.get("REDIS_KEY_PREFIX", "taskmarket:ratelimit"),
		JWTSecret:         src.get("JWT_SECRET", ""),
		CORSOrigin:        src.get("CORS_ORIGIN", "*"),
		LogLevel:          src.get("LOG_LEVEL", "info"),
		LogFormat:         src.get("LOG_FORMAT", "json"),
		TaskListingPolicy: constants.ListingPolicy(src.get("TASK_LISTING_POLICY", string(constants.ListOpen))),
	}

	var err error
	if cfg.AutoMigrate, err = src.getBool("DB_AUTO_MIGRATE", appEnv == "development"); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit, err = src.getInt("RATE_LIMIT_PER_MINUTE", 60); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeoutSeconds, err = src.getInt("SHUTDOWN_TIMEOUT_SECONDS", 20); err != nil {
		return Config{}, err
	}
	if cfg.JWTExpire, err = src.getDuration("JWT_EXPIRE", time.Hour); err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret == "" && appEnv == "development" {
		cfg.JWTSecret = "development-only-secret"
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return values, nil
}

func validate(cfg Config) error {
	switch {
	case cfg.DatabaseDriver != "sqlite" && cfg.DatabaseDriver != "postgres":
		return fmt.Errorf("DATABASE_DRIVER must be sqlite or postgres, got %q", cfg.DatabaseDriver)
	case cfg.DatabaseDSN == "":
		return errors.New("DATABASE_DSN must not be empty")
	case cfg.RateLimit <= 0:
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	case cfg.ShutdownTimeoutSeconds <= 0:
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	case cfg.JWTSecret == "":
		return errors.New("JWT_SECRET must be set outside development")
	case cfg.JWTExpire <= 0:
		return errors.New("JWT_EXPIRE must be a positive duration")
	case !cfg.TaskListingPolicy.IsValid():
		return fmt.Errorf("TASK_LISTING_POLICY must be open, assigned or open_and_assigned, got %q", cfg.TaskListingPolicy)
	}
	return nil
}
