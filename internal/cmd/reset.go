package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dpsmith/dpsmith/internal/state"
	"github.com/dpsmith/dpsmith/internal/ux"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset every completed task to pending",
	Long: `Revert every completed entry in the compiled plan back to pending.
Entries in other statuses are left unchanged. Resetting a project without
a compiled plan is a warning, not an error.`,
	RunE: runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	store := state.NewStore(cmdCtx.Root)
	warnings, err := store.ResetAll()
	if err != nil {
		return ux.FormatError(err, "resetting plan")
	}

	if len(warnings) > 0 {
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "⚠ %s\n", w)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ All completed tasks reset to pending")
	return nil
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
