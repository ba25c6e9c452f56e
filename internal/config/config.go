package config

import (
	"fmt"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"pet-health-log/internal/platform/logger"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendREST     = "rest"
)

var backends = []string{BackendMemory, BackendPostgres, BackendSQLite, BackendREST}

type Config struct {
	// HTTP Server
	Port string

	// Store
	StoreBackend string
	DBDSN        string
	SQLiteDBPath string
	StoreURL     string
	StoreAPIKey  string
	StoreTimeout time.Duration
	SeedDemo     bool

	// Logging
	LogLevel  string
	LogFormat string
	AppName   string
}

func Load() *Config {
	backend := strings.ToLower(getEnv("STORE_BACKEND", BackendMemory))

	return &Config{
		Port: getEnv("PORT", "8080"),

		StoreBackend: backend,
		DBDSN:        getEnv("DB_DSN", ""),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/pets.db"),
		StoreURL:     getEnv("STORE_URL", ""),
		StoreAPIKey:  getEnv("STORE_API_KEY", ""),
		StoreTimeout: getEnvDuration("STORE_TIMEOUT", 10*time.Second),
		// en memoria no hay datos si no se siembra
		SeedDemo: getEnvBool("SEED_DEMO", backend == BackendMemory),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		AppName:   getEnv("APP_NAME", "pet-health-log"),
	}
}

// Validate junta todos los problemas en un solo error.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if !slices.Contains(backends, c.StoreBackend) {
		errs = append(errs, fmt.Sprintf("invalid store backend '%s': must be one of %v", c.StoreBackend, backends))
	}

	switch c.StoreBackend {
	case BackendPostgres:
		if c.DBDSN == "" {
			errs = append(errs, "DB_DSN is required when using postgres backend")
		}
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
		}
	case BackendREST:
		if c.StoreURL == "" {
			errs = append(errs, "STORE_URL is required when using rest backend")
		} else if u, err := url.Parse(c.StoreURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid STORE_URL '%s': %v", c.StoreURL, err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			errs = append(errs, fmt.Sprintf("invalid STORE_URL scheme '%s': must be 'http' or 'https'", u.Scheme))
		}
	}

	if c.StoreTimeout < 100*time.Millisecond || c.StoreTimeout > 5*time.Minute {
		errs = append(errs, fmt.Sprintf("invalid store timeout %v: must be between 100ms and 5m", c.StoreTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: logger.ParseFormat(c.LogFormat),
		App:    c.AppName,
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
