// Package main provides the tenantforum-migrate executable, which creates the
// forum topic and response tables in the host database.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/coregx/tenantforum"
	forumgorm "github.com/coregx/tenantforum/adapters/gorm"
	"github.com/coregx/tenantforum/cmd/tenantforum-migrate/internal/config"
)

func main() {
	envFile := flag.String("env-file", "", "load environment from this file (default .env, optional)")
	dryRun := flag.Bool("dry-run", false, "print the SQL statements instead of applying them")
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.Logger.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if *dryRun {
		if err := printStatements(cfg); err != nil {
			logger.Fatal("Failed to render migrations", zap.Error(err))
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	tables := cfg.Database.Tables()
	logger.Info("Applying forum schema",
		zap.String("driver", cfg.Database.Driver),
		zap.String("mode", cfg.Database.Mode),
		zap.String("topic_table", tables.Topic()),
		zap.String("response_table", tables.Response()),
	)

	if cfg.Database.Mode == "gorm" {
		db, err := forumgorm.Open(forumgorm.Config{
			Driver:       cfg.Database.Driver,
			DSN:          cfg.Database.GetDSN(),
			MaxOpenConns: 1,
		})
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := forumgorm.Close(db); closeErr != nil {
				logger.Warn("Failed to close database", zap.Error(closeErr))
			}
		}()

		if err := forumgorm.AutoMigrate(db.WithContext(ctx), tables); err != nil {
			return err
		}
		logger.Info("Forum schema migrated with GORM")
		return nil
	}

	db, err := sql.Open(cfg.Database.Driver, cfg.Database.GetDSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("Failed to close database", zap.Error(closeErr))
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Debug("Database connection established")

	if err := tenantforum.Migrate(ctx, db, cfg.Database.Driver, tables); err != nil {
		return err
	}
	logger.Info("Forum schema applied")
	return nil
}

func printStatements(cfg *config.Config) error {
	statements, err := tenantforum.MigrationStatements(cfg.Database.Driver, cfg.Database.Tables())
	if err != nil {
		return err
	}
	for _, stmt := range statements {
		fmt.Printf("%s;\n\n", stmt)
	}
	return nil
}
