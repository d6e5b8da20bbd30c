package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seedbed/incubator/internal/config"
	"github.com/seedbed/incubator/internal/sqlite"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate entity counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			counts, err := sqlite.NewStatsRepository(db).Counts(context.Background())
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(counts, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
