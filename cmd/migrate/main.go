package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/mentorhub/mentorhub-api/config"
	"github.com/mentorhub/mentorhub-api/pkg/db"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "migrate",
		Usage: "manage the MentorHub database schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Usage:   "migrations source URL",
				Value:   db.DefaultMigrationsPath,
				EnvVars: []string{"MIGRATIONS_PATH"},
			},
		},
		Before: setup,
		After: func(*cli.Context) error {
			logger.Sync()
			return nil
		},
		Action: up,
		Commands: []*cli.Command{
			{Name: "up", Usage: "apply all pending migrations", Action: up},
			{
				Name:  "down",
				Usage: "roll back the most recent migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Action: down,
			},
			{Name: "version", Usage: "print the current schema version", Action: version},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("Migration command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

var cfg *config.Config

func setup(*cli.Context) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	return logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		ServiceName: "mentorhub-migrate",
	})
}

func up(c *cli.Context) error {
	logger.Info("Starting database migrations", zap.String("database", maskDatabaseURL(cfg.Database.URL)))
	if err := db.RunMigrations(cfg.Database.URL, c.String("path")); err != nil {
		return err
	}
	logger.Info("Database migrations completed successfully")
	return nil
}

func down(c *cli.Context) error {
	steps := c.Int("steps")
	logger.Info("Rolling back migrations",
		zap.String("database", maskDatabaseURL(cfg.Database.URL)),
		zap.Int("steps", steps))
	if err := db.RollbackMigrations(cfg.Database.URL, c.String("path"), steps); err != nil {
		return err
	}
	logger.Info("Rollback completed")
	return nil
}

func version(c *cli.Context) error {
	v, dirty, err := db.MigrationVersion(cfg.Database.URL, c.String("path"))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "version %d (dirty: %t)\n", v, dirty)
	return nil
}

// maskDatabaseURL hides the password before the URL is logged
func maskDatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "***"
	}
	return u.Redacted()
}
