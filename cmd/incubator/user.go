package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seedbed/incubator/internal/config"
	"github.com/seedbed/incubator/internal/domain/user"
	"github.com/seedbed/incubator/internal/sqlite"
)

func newUserCmd() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users and API tokens",
	}
	userCmd.AddCommand(newUserAddCmd())
	userCmd.AddCommand(newUserTokenCmd())
	return userCmd
}

func newUserAddCmd() *cobra.Command {
	var email, name, role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user",
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

			svc := user.NewService(sqlite.NewUserRepository(db), newLogger(cfg))
			u, err := svc.Create(context.Background(), email, name, user.Role(role))
			if err != nil {
				return err
			}
			fmt.Printf("created user %s (%s)\n", u.Email, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&role, "role", string(user.RoleStaff), "role: admin or staff")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUserTokenCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token for a user",
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

			svc := user.NewService(sqlite.NewUserRepository(db), newLogger(cfg))
			token, err := svc.IssueToken(context.Background(), email)
			if err != nil {
				return err
			}
			// Printed once; only the hash is stored.
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
