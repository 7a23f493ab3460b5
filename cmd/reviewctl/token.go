package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/review-analyzer/pkg/jwt"
)

var (
	tokenSubject string
	tokenExpiry  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an admin token for DELETE /api/reviews/:id",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Admin.JWTSecret == "" {
			return fmt.Errorf("ADMIN_JWT_SECRET is not set")
		}

		expiry := cfg.Admin.TokenExpiry
		if cmd.Flags().Changed("expiry") {
			expiry = tokenExpiry
		}

		token, err := jwt.NewManager(cfg.Admin.JWTSecret, expiry).GenerateAdminToken(tokenSubject)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "reviewctl", "Token subject")
	tokenCmd.Flags().DurationVar(&tokenExpiry, "expiry", 24*time.Hour, "Token lifetime")
}
