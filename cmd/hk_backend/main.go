package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/hisab_kitab/internal/core/ports/repositories"
	"github.com/SscSPs/hisab_kitab/internal/core/services"
	"github.com/SscSPs/hisab_kitab/internal/handlers"
	"github.com/SscSPs/hisab_kitab/internal/middleware"
	"github.com/SscSPs/hisab_kitab/internal/platform/config"
	"github.com/SscSPs/hisab_kitab/internal/repositories/database/mysql"
	"github.com/SscSPs/hisab_kitab/internal/repositories/database/pgsql"
	"github.com/SscSPs/hisab_kitab/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Hisab Kitab API
// @version 1.0
// @description Bookkeeping backend for purchases, GST invoices, expenses, worker wages and payments.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	repos, closeDB, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("driver", cfg.DBDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeDB()

	serviceContainer := services.NewContainer(repos, cfg.PasswordHashCost, services.WithAllowedInvoiceRates(cfg.InvoiceTaxRates))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("driver", cfg.DBDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories opens the configured store, migrates it and returns the
// repositories built on it together with a close function.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*repositories.RepositoryProvider, func(), error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		db, err := database.NewMySQLDB(ctx, cfg.MySQLDSN, true)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(db, config.DriverMySQL, cfg.MigrationsPath, logger); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return mysql.NewRepositoryProvider(db), func() { _ = db.Close() }, nil

	default:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, nil, err
		}

		// Open a temporary standard sql.DB connection for migrations
		// Using pgx/v5/stdlib driver to be compatible with the main pool
		migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			dbPool.Close()
			return nil, nil, err
		}
		defer func() {
			if cerr := migrationDB.Close(); cerr != nil {
				logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
			}
		}()

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(migrationDB, config.DriverPostgres, cfg.MigrationsPath, logger); err != nil {
			dbPool.Close()
			return nil, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	}
}
