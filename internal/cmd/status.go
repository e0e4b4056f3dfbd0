package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dpsmith/dpsmith/internal/render"
	"github.com/dpsmith/dpsmith/internal/state"
	"github.com/dpsmith/dpsmith/internal/ux"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show workflow completion status",
	Long: `Display the completion status of the compiled plan: completed and pending
counts, the rounded percent complete, and the next task in execution order.

A project without a compiled plan reports a zeroed summary.

Examples:
  # Human-readable summary
  dpsmith status

  # Machine-readable output for scripting
  dpsmith status --format json`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	store := state.NewStore(cmdCtx.Root)
	sum, err := store.Status()
	if err != nil {
		return ux.FormatError(err, "reading workflow status")
	}

	if cmdCtx.Format == "json" || cmdCtx.Format == "yaml" {
		formatter, err := ux.NewFormatter(cmdCtx.Format, &ux.FormatterOptions{
			Writer:  cmd.OutOrStdout(),
			NoColor: cmdCtx.NoColor,
		})
		if err != nil {
			return err
		}
		return formatter.Format(sum)
	}

	render.New(cmd.OutOrStdout(), cmdCtx.NoColor).Summary(sum)
	return nil
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the compiled plan",
	Long:  `Print the compiled plan with its levels and per-entry status.`,
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	store := state.NewStore(cmdCtx.Root)
	p, err := store.Read()
	if err != nil {
		return ux.FormatError(err, "reading plan")
	}
	if p == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No compiled plan. Run 'dpsmith compile' first.")
		return nil
	}

	if cmdCtx.Format == "json" || cmdCtx.Format == "yaml" {
		formatter, err := ux.NewFormatter(cmdCtx.Format, &ux.FormatterOptions{
			Writer:  cmd.OutOrStdout(),
			NoColor: cmdCtx.NoColor,
		})
		if err != nil {
			return err
		}
		return formatter.Format(p)
	}

	render.New(cmd.OutOrStdout(), cmdCtx.NoColor).Plan(p)
	return nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(showCmd)
}
