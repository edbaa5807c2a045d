// Package main provides the readability CLI: score a Dutch text from a file
// or stdin with the same engine the HTTP API uses.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/openanonymiser/openanonymiser-backend/internal/config"
	"github.com/openanonymiser/openanonymiser-backend/internal/service/readability"
	"github.com/openanonymiser/openanonymiser-backend/internal/service/readability/scoring"
)

type options struct {
	profile   string
	configDir string
	metrics   []string
	format    string
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "readability",
		Short:         "Dutch readability scoring (LIX, Flesch-Douma)",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&opts.profile, "profile", config.Profile(), "threshold profile (local|online)")
	rootCmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", os.Getenv("READABILITY_CONFIG_DIR"), "directory holding readability.<profile>.yaml")

	rootCmd.AddCommand(newAnalyzeCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

func newAnalyzeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Score a text read from file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, args)
		},
	}

	cmd.Flags().StringSliceVar(&opts.metrics, "metrics", nil, "metric groups: lix, stats, flesch_douma (default lix,stats)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json or yaml")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *options, args []string) error {
	if !isFormat(opts.format) {
		return fmt.Errorf("unknown format %q (want text, json or yaml)", opts.format)
	}

	cfg, err := config.LoadReadabilityFile(config.ReadabilityPathIn(opts.configDir, opts.profile))
	if err != nil {
		return err
	}

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
	svc := readability.NewService(logger, scoring.New(*cfg), nil)

	res, err := svc.Analyze(cmd.Context(), readability.AnalyzeInput{
		Text:    text,
		Metrics: opts.metrics,
	})
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), opts.format, newReport(res))
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(b), nil
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective readability configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.ReadabilityPathIn(opts.configDir, opts.profile)
			cfg, err := config.LoadReadabilityFile(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", path)

			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
}

func isFormat(f string) bool {
	switch strings.ToLower(f) {
	case formatText, formatJSON, formatYAML:
		return true
	}
	return false
}
