package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/review-analyzer/internal/bootstrap"
	"github.com/johnquangdev/review-analyzer/internal/infrastructure/cache"
	"github.com/johnquangdev/review-analyzer/internal/infrastructure/database"
	"github.com/johnquangdev/review-analyzer/pkg/config"
)

var checkTimeout time.Duration

// probe is one named dependency check
type probe struct {
	name string
	run  func(ctx context.Context) error
}

type probeResult struct {
	name    string
	err     error
	elapsed time.Duration
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print effective configuration and probe every dependency",
	RunE: func(cmd *cobra.Command, args []string) error {
		printConfig(cfg)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		results := runProbes(ctx, buildProbes(cfg), checkTimeout)

		fmt.Println("\nProbes:")
		failed := 0
		for _, r := range results {
			status := "ok"
			if r.err != nil {
				status = "FAIL: " + r.err.Error()
				failed++
			}
			fmt.Printf("  %-12s %-8s %s\n", r.name, r.elapsed.Round(time.Millisecond), status)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d probes failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 10*time.Second, "Timeout per probe")
}

func buildProbes(cfg *config.Config) []probe {
	probes := []probe{{
		name: "database",
		run: func(ctx context.Context) error {
			dbCfg := *cfg
			if deadline, ok := ctx.Deadline(); ok {
				dbCfg.Database.ConnectTimeout = time.Until(deadline)
			}
			db, err := database.NewPostgresDB(ctx, &dbCfg)
			if err != nil {
				return err
			}
			return database.CloseDB(db)
		},
	}}

	if cfg.Redis.URL != "" {
		probes = append(probes, probe{
			name: "redis",
			run: func(ctx context.Context) error {
				client, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
				if err != nil {
					return err
				}
				return client.Close()
			},
		})
	}

	for _, p := range bootstrap.NewAnalyzers(cfg, logger).Probers() {
		probes = append(probes, probe{name: p.Name(), run: p.Ping})
	}
	return probes
}

// runProbes runs every probe concurrently. A failing probe does not cancel the others.
func runProbes(ctx context.Context, probes []probe, timeout time.Duration) []probeResult {
	results := make([]probeResult, len(probes))
	var g errgroup.Group
	for i, p := range probes {
		g.Go(func() error {
			pctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			start := time.Now()
			err := p.run(pctx)
			results[i] = probeResult{name: p.name, err: err, elapsed: time.Since(start)}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func printConfig(cfg *config.Config) {
	fmt.Println("Configuration:")
	fmt.Printf("  environment      %s\n", cfg.Server.Environment)
	fmt.Printf("  listen           %s:%s\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("  database         %s\n", databaseTarget(cfg))
	fmt.Printf("  redis            %s\n", orNotSet(cfg.Redis.URL != "", "configured"))
	fmt.Printf("  cache            enabled=%t ttl=%s\n", cfg.Cache.Enabled, cfg.Cache.TTL)
	fmt.Printf("  provider timeout %s\n", cfg.Providers.Timeout)
	fmt.Printf("  groq             key=%s enabled=%t model=%s\n", config.MaskSecret(cfg.Groq.APIKey), cfg.Groq.Active(), cfg.Groq.Model)
	fmt.Printf("  huggingface      key=%s key_points=%t sentiment=%t\n", config.MaskSecret(cfg.HuggingFace.APIKey), cfg.HuggingFace.KeyPointsActive(), cfg.HuggingFace.SentimentActive())
	fmt.Printf("  gemini           key=%s enabled=%t\n", config.MaskSecret(cfg.Gemini.APIKey), cfg.Gemini.Active())
	fmt.Printf("  openai           key=%s enabled=%t model=%s\n", config.MaskSecret(cfg.OpenAI.APIKey), cfg.OpenAI.Active(), cfg.OpenAI.Model)
	fmt.Printf("  anthropic        key=%s enabled=%t model=%s\n", config.MaskSecret(cfg.Anthropic.APIKey), cfg.Anthropic.Active(), cfg.Anthropic.Model)
	fmt.Printf("  admin secret     %s\n", config.MaskSecret(cfg.Admin.JWTSecret))
}

func databaseTarget(cfg *config.Config) string {
	if cfg.Database.URL != "" {
		return "DATABASE_URL (" + config.MaskSecret(cfg.Database.URL) + ")"
	}
	return fmt.Sprintf("%s@%s:%s/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
}

func orNotSet(set bool, value string) string {
	if !set {
		return "(not set)"
	}
	return value
}
