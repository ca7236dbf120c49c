package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers understood by the store factory.
const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Store
	StoreDriver string
	SQLitePath  string

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Booking domain
	WalletInitialBalance int64
	CatalogSize          int
	AirportLookupLatency time.Duration
}

// MaxCatalogSize caps CATALOG_SIZE.
const MaxCatalogSize = 500

const defaultCatalogSize = 10

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreDriverMemory)),
		SQLitePath:  getEnv("SQLITE_PATH", "skyvoyager.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "skyvoyager"),
		DBPassword: getEnv("DB_PASSWORD", "skyvoyager"),
		DBName:     getEnv("DB_NAME", "skyvoyager"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPrefix:   getEnv("REDIS_PREFIX", "skyvoyager:"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		WalletInitialBalance: int64(getEnvInt("WALLET_INITIAL_BALANCE", 50000)),
		CatalogSize:          catalogSize(getEnvInt("CATALOG_SIZE", defaultCatalogSize)),
	}

	config.JWTExpirationDur = getEnvDuration("JWT_EXPIRES_IN", 24*time.Hour)
	config.AirportLookupLatency = getEnvDuration("AIRPORT_LOOKUP_LATENCY", 300*time.Millisecond)

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// PostgresURL returns the connection URL used by golang-migrate.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort +
		"/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// PostgresDSN returns the keyword/value DSN used by the GORM postgres driver.
func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=" + c.DBSSLMode
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

// catalogSize keeps the per-search catalog between 1 and MaxCatalogSize.
func catalogSize(n int) int {
	switch {
	case n < 1:
		log.Printf("Warning: CATALOG_SIZE %d is not positive, using %d\n", n, defaultCatalogSize)
		return defaultCatalogSize
	case n > MaxCatalogSize:
		log.Printf("Warning: CATALOG_SIZE %d is too large, capping at %d\n", n, MaxCatalogSize)
		return MaxCatalogSize
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
