package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"opsboard/internal/config"
	"opsboard/internal/logging"
	"opsboard/internal/storage"
	"opsboard/internal/store"
	"opsboard/internal/update"
)

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "opsboard",
		Short:         "Terminal task board with kanban, list and calendar views",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "path to the config file")
	root.AddCommand(newMigrateCommand(&configPath))
	return root
}

func runApp(configPath string) error {
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.LogPath, logging.ParseLevel(cfg.LogLevel))
	defer logger.Close()

	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repo.Close()
	if err := storage.MigrateUp(repo.DB()); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	st := store.New(store.WithRepository(repo), store.WithLogger(logger))
	if err := st.Load(context.Background()); err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	logger.Info("startup", fmt.Sprintf("loaded %d tasks from %s", st.Len(), cfg.DBPath))

	m := update.NewModel(st, cfg)
	m.Submitter.WithLogger(logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("startup", err.Error())
		return err
	}
	return nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return config.DefaultConfigFileName
	}
	return filepath.Join(home, ".opsboard", config.DefaultConfigFileName)
}
