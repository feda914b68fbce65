// Package config reads the configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP Server
	Port   string
	APIURL string

	// Logging
	LogFormat string

	// Database
	DataDir string
	DSN     string

	// Startup import
	ImportFile string

	// Router
	CORSAllowOrigins []string
	EnablePprof      bool
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if it exists, variables already set
// in the environment take precedence.
func Load() *Config {
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", "data")

	return &Config{
		Port:   getEnv("PORT", "8080"),
		APIURL: getEnv("API_URL", ""),

		LogFormat: getEnv("LOG_FORMAT", ""),

		DataDir: dataDir,
		DSN:     getEnv("DB_DSN", filepath.Join(dataDir, "event-budget.db")),

		ImportFile: getEnv("IMPORT_FILE", filepath.Join(dataDir, "budget.xlsx")),

		CORSAllowOrigins: strings.Fields(getEnv("CORS_ALLOW_ORIGINS", "")),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.APIURL == "" {
		errs = append(errs, errors.New("environment variable API_URL must be set"))
	} else if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("environment variable API_URL must be a valid URL, is '%s'", c.APIURL))
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if c.DSN == "" {
		errs = append(errs, errors.New("the database DSN must not be empty"))
	}

	return errors.Join(errs...)
}

// BaseURL returns the parsed API URL. It must only be called after Validate.
func (c *Config) BaseURL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
