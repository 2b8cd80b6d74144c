package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
	"golang.org/x/crypto/bcrypt"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "hisab-kitab"
)

// Config holds application configuration.
type Config struct {
	DBDriver           string
	DatabaseURL        string // postgres connection URL
	MySQLDSN           string
	MigrationsPath     string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	JWTExpiryDuration  time.Duration
	JWTIssuer          string
	LoginRateLimit     string // ulule formatted rate, e.g. "5-M"
	PasswordHashCost   int
	CORSAllowedOrigins []string
	InvoiceTaxRates    []decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DB_DRIVER", DriverPostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MYSQL_DSN", "")
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("PASSWORD_HASH_COST", bcrypt.DefaultCost)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("DEFAULT_TAX_RATES", "0,18,21")

	viper.AutomaticEnv()

	cfg := &Config{
		DBDriver:       strings.ToLower(strings.TrimSpace(viper.GetString("DB_DRIVER"))),
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		MySQLDSN:       viper.GetString("MYSQL_DSN"),
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		JWTIssuer:      viper.GetString("JWT_ISSUER"),
		LoginRateLimit: viper.GetString("LOGIN_RATE_LIMIT"),
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			slog.Warn("PGSQL_URL environment variable not set")
		}
	case DriverMySQL:
		if cfg.MySQLDSN == "" {
			slog.Warn("MYSQL_DSN environment variable not set")
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", cfg.DBDriver, DriverPostgres, DriverMySQL)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET not set, using default insecure key")
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
	}

	// e.g. "60m", "1h"
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiry <= 0 {
		jwtExpiry = time.Hour
		slog.Warn("Invalid JWT_EXPIRY_DURATION, using default",
			slog.String("value", jwtExpiryStr), slog.String("default", jwtExpiry.String()))
	}
	cfg.JWTExpiryDuration = jwtExpiry

	if _, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit); err != nil {
		slog.Warn("Invalid LOGIN_RATE_LIMIT, using default",
			slog.String("value", cfg.LoginRateLimit), slog.String("default", "5-M"))
		cfg.LoginRateLimit = "5-M"
	}

	cfg.PasswordHashCost = viper.GetInt("PASSWORD_HASH_COST")
	if cfg.PasswordHashCost < bcrypt.MinCost || cfg.PasswordHashCost > bcrypt.MaxCost {
		slog.Warn("Invalid PASSWORD_HASH_COST, using default",
			slog.Int("value", cfg.PasswordHashCost), slog.Int("default", bcrypt.DefaultCost))
		cfg.PasswordHashCost = bcrypt.DefaultCost
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	rates, err := ParseTaxRates(viper.GetString("DEFAULT_TAX_RATES"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_TAX_RATES: %w", err)
	}
	cfg.InvoiceTaxRates = rates

	return cfg, nil
}

// ParseTaxRates parses a comma separated list of GST percentages such as "0,18,21".
func ParseTaxRates(raw string) ([]decimal.Decimal, error) {
	parts := splitList(raw)
	if len(parts) == 0 {
		return nil, fmt.Errorf("at least one rate is required")
	}
	rates := make([]decimal.Decimal, 0, len(parts))
	for _, p := range parts {
		r, err := decimal.NewFromString(strings.TrimSuffix(p, "%"))
		if err != nil {
			return nil, fmt.Errorf("rate %q: %w", p, err)
		}
		if r.IsNegative() {
			return nil, fmt.Errorf("rate %q must not be negative", p)
		}
		rates = append(rates, r)
	}
	return rates, nil
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
