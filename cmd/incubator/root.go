package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seedbed/incubator/internal/config"
	"github.com/seedbed/incubator/internal/sqlite"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "incubator",
		Short:         "Startup incubation records service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newUserCmd())

	return root
}

func newLogger(cfg config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openDatabase opens the configured SQLite file and applies the schema on a
// fresh database.
func openDatabase(cfg config.Config) (*sqlite.DB, error) {
	if err := ensureDBDir(cfg.DB.Path); err != nil {
		return nil, fmt.Errorf("preparing database path: %w", err)
	}

	fresh := cfg.DB.Path == ":memory:" || !fileExists(cfg.DB.Path)

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return nil, err
	}

	if fresh {
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
	}
	return db, nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
