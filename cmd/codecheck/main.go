// Package main provides the codecheck CLI: one-shot checklist evaluations
// against a definitions directory, and a serve command mirroring the server
// binary.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"codecheck/internal/app"
	"codecheck/internal/checklist"
	"codecheck/internal/definitions"
	"codecheck/internal/platform/config"
	"codecheck/internal/platform/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codecheck",
		Short: "Building-code self-check tool",
	}
	cmd.AddCommand(checkCmd())
	cmd.AddCommand(serveCmd())
	return cmd
}

// checkInput is the CLI input file: the evaluation context plus the value
// set, as JSON or YAML.
type checkInput struct {
	Context checklist.Context `json:"context" yaml:"context"`
	Values  checklist.Values  `json:"values" yaml:"values"`
}

func checkCmd() *cobra.Command {
	var (
		definitionsDir string
		inputPath      string
		outputJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run one checklist evaluation offline",
		Long: `Run one checklist evaluation against a definitions directory.

The input file holds the evaluation context and the value set:

  context:
    zoning: 제1종일반주거지역
    use: 단독주택
    floors: 3
  values:
    road_width_m: 4.5
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(inputPath)
			if err != nil {
				return err
			}

			store := definitions.NewFileStore(definitionsDir, logger.New(config.FromEnv().LogLevel))
			set, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}

			results, summary := checklist.Evaluate(set.Items, set.Rules, input.Context, input.Values)

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"summary": summary,
					"results": results,
				})
			}
			printReport(os.Stdout, summary, results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&definitionsDir, "definitions", "d", "./definitions", "definitions directory")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "context + values file (JSON or YAML)")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "output results as JSON")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the codecheck HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			log := logger.New(cfg.LogLevel)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx, cfg, log)
		},
	}
}

func readInput(path string) (*checkInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var input checkInput
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &input)
	default:
		err = json.Unmarshal(data, &input)
	}
	if err != nil {
		return nil, fmt.Errorf("parse input %s: %w", path, err)
	}
	return &input, nil
}

func printReport(w *os.File, summary checklist.Summary, results []checklist.JudgedItem) {
	fmt.Fprintf(w, "overall: %s (%d items)\n", summary.Status, summary.Total)
	fmt.Fprintf(w, "  allow=%d conditional=%d deny=%d need_input=%d unknown=%d\n",
		summary.Counts.Allow, summary.Counts.Conditional, summary.Counts.Deny,
		summary.Counts.NeedInput, summary.Counts.Unknown)
	if len(summary.MissingInputs) > 0 {
		fmt.Fprintf(w, "  missing inputs: %s\n", strings.Join(summary.MissingInputs, ", "))
	}
	fmt.Fprintln(w)
	for _, item := range results {
		fmt.Fprintf(w, "[%s] %s", item.Status, item.ID)
		if item.MatchedRuleID != "" {
			fmt.Fprintf(w, " (rule %s)", item.MatchedRuleID)
		}
		fmt.Fprintln(w)
		if item.Message != "" {
			fmt.Fprintf(w, "    %s\n", item.Message)
		}
		for _, mi := range item.MissingInputs {
			fmt.Fprintf(w, "    needs: %s (%s)\n", mi.Label, mi.Key)
		}
	}
}
