package main

import (
	"context"
	"fmt"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/review-analyzer/internal/infrastructure/database"
)

var migrateLimit int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context(), migrate.Up, migrateLimit)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations (one by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := migrateLimit
		if !cmd.Flags().Changed("limit") {
			limit = 1
		}
		return runMigrate(cmd.Context(), migrate.Down, limit)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and when they were applied",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.NewPostgresDB(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer database.CloseDB(db)

		statuses, err := database.Status(db)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if s.AppliedAt != nil {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-45s %s\n", s.ID, applied)
		}
		return nil
	},
}

func init() {
	migrateCmd.PersistentFlags().IntVarP(&migrateLimit, "limit", "n", 0, "Maximum migrations to apply, 0 for all")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func runMigrate(ctx context.Context, dir migrate.MigrationDirection, limit int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := database.NewPostgresDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.CloseDB(db)

	n, err := database.Migrate(db, dir, limit)
	if err != nil {
		return err
	}

	verb := "Applied"
	if dir == migrate.Down {
		verb = "Rolled back"
	}
	fmt.Printf("✅ %s %d migration(s)\n", verb, n)
	return nil
}
