package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/review-analyzer/internal/bootstrap"
	"github.com/johnquangdev/review-analyzer/internal/usecase/keypoints"
	reviewUsecase "github.com/johnquangdev/review-analyzer/internal/usecase/review"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze review text without storing it (reads stdin when no text is given)",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := inputText(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		analyzers := bootstrap.NewAnalyzers(cfg, logger)
		svc := reviewUsecase.NewReviewService(nil, analyzers.Sentiment, analyzers.KeyPoints, reviewUsecase.WithLogger(logger))

		result, err := svc.Analyze(cmd.Context(), text)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if analyzeJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Fprintf(out, "Sentiment:  %s (%.4f)\n", result.Sentiment.Label, result.Sentiment.Score)
		if result.Trace.Overridden {
			fmt.Fprintf(out, "            base %s (%.4f), overridden by %s\n", result.Trace.BaseLabel, result.Trace.BaseScore, result.Trace.Rule)
		}
		fmt.Fprintf(out, "Classifier: %s\n", result.Trace.Classifier)
		fmt.Fprintf(out, "Source:     %s\n", result.KeyPointsSource)
		for _, a := range result.Trace.Attempts {
			line := fmt.Sprintf("  - %-12s %s", a.Provider, a.Reason)
			if a.Error != "" {
				line += ": " + a.Error
			}
			fmt.Fprintln(out, line)
		}
		fmt.Fprintf(out, "\nKey points:\n%s\n", result.KeyPoints)
		return nil
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Run the offline key point extractor only",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := inputText(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), keypoints.Extract(text))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full analysis as JSON")
}

// inputText joins args, or reads stdin when there are none
func inputText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if f, ok := stdin.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return "", fmt.Errorf("no review text given")
		}
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(b), nil
}
