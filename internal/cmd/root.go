package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dpsmith/dpsmith/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "dpsmith",
	Short: "Design prescription plan compiler and workflow tracker",
	Long: `dpsmith compiles a set of declaratively described design prescriptions (DPs)
and their dependencies into a deterministic, leveled execution plan — the
Yadasmith — and tracks completion state against that plan over time.

It orders work; it never runs it. Levels label tasks that could logically
proceed in parallel once everything below them is done.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a caller-provided context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func configureLogging(cmd *cobra.Command) {
	cfg := log.DefaultConfig()

	if level, err := cmd.Flags().GetString("log-level"); err == nil {
		cfg.Level = log.ParseLevel(level)
	}
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		cfg.Level = log.LevelDebug
	}
	if quiet, err := cmd.Flags().GetBool("quiet"); err == nil && quiet {
		cfg.Level = log.LevelError
	}

	log.SetDefaultLogger(log.New(cfg))
}

func init() {
	rootCmd.PersistentFlags().String("root", ".", "Project root directory")
	rootCmd.PersistentFlags().String("format", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
