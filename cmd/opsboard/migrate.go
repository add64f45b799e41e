package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"opsboard/internal/config"
	"opsboard/internal/storage"
)

func newMigrateCommand(configPath *string) *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the task database schema",
	}

	migrate.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(*configPath, storage.MigrateUp)
		},
	})
	migrate.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(*configPath, storage.MigrateDown)
		},
	})
	return migrate
}

func withDB(configPath string, fn func(db *sql.DB) error) error {
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repo.Close()
	return fn(repo.DB())
}
