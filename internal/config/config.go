// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Store    StoreConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// CatalogConfig contains the locations of the static storefront data files.
// Plain paths are read from disk; http(s) URLs are fetched.
type CatalogConfig struct {
	ProductsURL            string
	TranslationsURL        string
	ProductTranslationsURL string
	ReviewsURL             string
	FetchTimeout           time.Duration
	DataDir                string
}

// StoreConfig contains storefront business configuration
type StoreConfig struct {
	DiscountRate     float64
	DeliveryFee      float64
	PageSize         int
	DefaultLocale    string
	SupportedLocales []string
	SessionTTL       time.Duration
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	TrustedProxies     []string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Storefront Engine"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Server: ServerConfig{
			Port:         getEnv("APP_PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		Catalog: CatalogConfig{
			ProductsURL:            getEnv("CATALOG_PRODUCTS_URL", "./assets/data/product.json"),
			TranslationsURL:        getEnv("CATALOG_TRANSLATIONS_URL", "./assets/data/translation.json"),
			ProductTranslationsURL: getEnv("CATALOG_PRODUCT_TRANSLATIONS_URL", "./assets/data/producttranslation.json"),
			ReviewsURL:             getEnv("CATALOG_REVIEWS_URL", "./assets/data/reviews.json"),
			FetchTimeout:           getEnvAsDuration("CATALOG_FETCH_TIMEOUT", 10*time.Second),
			DataDir:                getEnv("CATALOG_DATA_DIR", "./assets/data"),
		},
		Store: StoreConfig{
			DiscountRate:     getEnvAsFloat("STORE_DISCOUNT_RATE", 0.20),
			DeliveryFee:      getEnvAsFloat("STORE_DELIVERY_FEE", 15),
			PageSize:         getEnvAsInt("STORE_PAGE_SIZE", 9),
			DefaultLocale:    getEnv("STORE_DEFAULT_LOCALE", "en"),
			SupportedLocales: getEnvAsSlice("STORE_SUPPORTED_LOCALES", []string{"en", "uk"}),
			SessionTTL:       getEnvAsDuration("STORE_SESSION_TTL", 24*time.Hour),
		},
		Security: SecurityConfig{
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept"}),
			TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	if c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}

	if c.Store.DiscountRate < 0 || c.Store.DiscountRate >= 1 {
		return fmt.Errorf("STORE_DISCOUNT_RATE must be within [0, 1)")
	}

	if c.Store.DeliveryFee < 0 {
		return fmt.Errorf("STORE_DELIVERY_FEE cannot be negative")
	}

	if c.Store.PageSize < 1 {
		return fmt.Errorf("STORE_PAGE_SIZE must be at least 1")
	}

	if c.Store.DefaultLocale == "" {
		return fmt.Errorf("STORE_DEFAULT_LOCALE is required")
	}

	supported := false
	for _, locale := range c.Store.SupportedLocales {
		if locale == c.Store.DefaultLocale {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("STORE_DEFAULT_LOCALE %q is not in STORE_SUPPORTED_LOCALES", c.Store.DefaultLocale)
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsLocaleSupported reports whether the locale can be switched to
func (c *Config) IsLocaleSupported(locale string) bool {
	for _, l := range c.Store.SupportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
