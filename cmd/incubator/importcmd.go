package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seedbed/incubator/internal/config"
	"github.com/seedbed/incubator/internal/importer"
	"github.com/seedbed/incubator/internal/sqlite"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <bundle.json>",
		Short: "Import a legacy export bundle",
		Long: `Reads a denormalized legacy export (startups with embedded achievements,
revenue history and progress tracking, plus loosely-linked meeting schedules)
and reconciles it into the database. Re-running with the same bundle updates
existing records instead of duplicating them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			return runImport(cfg, args[0])
		},
	}
}

func runImport(cfg config.Config, bundlePath string) error {
	logger := newLogger(cfg)

	data, err := os.ReadFile(bundlePath)
	if err != nil {
		return fmt.Errorf("reading bundle: %w", err)
	}

	var bundle importer.Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return fmt.Errorf("parsing bundle: %w", err)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := importer.New(sqlite.NewImportStore(db), logger)
	summary, err := svc.Run(context.Background(), &bundle)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if len(summary.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "%d record(s) failed; see errors above\n", len(summary.Errors))
	}
	return nil
}
