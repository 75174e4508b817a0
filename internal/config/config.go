package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Category backend drivers.
const (
	DriverHTTP  = "http"
	DriverRedis = "redis"
	DriverSeed  = "seed"
)

// Config holds the backoffice API configuration.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Auth       AuthConfig       `yaml:"auth"`
	Logging    LoggingConfig    `yaml:"logging"`
	Categories CategoriesConfig `yaml:"categories"`
	Seed       SeedConfig       `yaml:"seed"`
	Products   ProductsConfig   `yaml:"products"`
	Promotions PromotionsConfig `yaml:"promotions"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings. No keys disables the gate.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// CategoriesConfig selects and configures the remote category backend.
type CategoriesConfig struct {
	Driver           string   `yaml:"driver"` // http, redis, seed (default: seed)
	BaseURL          string   `yaml:"base_url"`
	TimeoutSec       int      `yaml:"timeout_sec"`
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	KeyPrefix        string   `yaml:"key_prefix"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// Timeout returns the remote call timeout.
func (c CategoriesConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// SeedConfig points at an alternative seed dataset. Empty uses the built-in one.
type SeedConfig struct {
	Path string `yaml:"path"`
}

// ProductsConfig holds catalog metric settings.
type ProductsConfig struct {
	LowStockThreshold int `yaml:"low_stock_threshold"`
}

// PromotionsConfig holds coupon metric settings.
type PromotionsConfig struct {
	ExpiringWindowDays int `yaml:"expiring_window_days"`
	RankingLimit       int `yaml:"ranking_limit"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, expanding ${VAR} references,
// then applies defaults and validates.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Categories.Driver == "" {
		c.Categories.Driver = DriverSeed
	}
	if c.Categories.TimeoutSec <= 0 {
		c.Categories.TimeoutSec = 10
	}
	if c.Categories.KeyPrefix == "" {
		c.Categories.KeyPrefix = "backoffice:"
	}
	if c.Categories.ReadinessTimeout <= 0 {
		c.Categories.ReadinessTimeout = 10
	}
	if c.Products.LowStockThreshold <= 0 {
		c.Products.LowStockThreshold = 5
	}
	if c.Promotions.ExpiringWindowDays <= 0 {
		c.Promotions.ExpiringWindowDays = 7
	}
	if c.Promotions.RankingLimit <= 0 {
		c.Promotions.RankingLimit = 5
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Categories.Driver {
	case DriverHTTP:
		if c.Categories.BaseURL == "" {
			return fmt.Errorf("categories.base_url is required for driver %q", DriverHTTP)
		}
	case DriverRedis:
		if len(c.Categories.Addrs) == 0 {
			return fmt.Errorf("categories.addrs is required for driver %q", DriverRedis)
		}
	case DriverSeed:
	default:
		return fmt.Errorf(
			"categories.driver must be %q, %q or %q, got %q",
			DriverHTTP, DriverRedis, DriverSeed, c.Categories.Driver,
		)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
