package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dpsmith/dpsmith/internal/errors"
	"github.com/dpsmith/dpsmith/internal/state"
	"github.com/dpsmith/dpsmith/internal/ux"
)

var markCmd = &cobra.Command{
	Use:   "mark <task-id>",
	Short: "Mark a task completed",
	Long: `Mark a single task completed, leaving every other entry untouched.

With --through, resynchronize the whole plan to the given task instead:
every task up to and including it (in level order) is forced to completed,
and any completed task after it reverts to pending. The two behaviors are
deliberately distinct — plain mark is monotonic per task, --through moves
the completion frontier.`,
	Args: cobra.ExactArgs(1),
	RunE: runMark,
}

func runMark(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}
	id := args[0]
	through, err := cmd.Flags().GetBool("through")
	if err != nil {
		return err
	}

	store := state.NewStore(cmdCtx.Root)

	var result state.Result
	if through {
		result, err = store.MarkThrough(id)
	} else {
		result, err = store.MarkOne(id)
	}
	if err != nil {
		return ux.FormatError(err, "updating plan")
	}

	if !result.Valid {
		reportErrors(result.Errors)
		return errors.NewTaskNotFoundError(id)
	}

	if through {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Marked completed through %s\n", id)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Marked %s completed\n", id)
	}

	sum, err := store.Status()
	if err != nil {
		return ux.FormatError(err, "reading workflow status")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %d/%d complete (%d%%)\n", sum.Completed, sum.Total, sum.PercentComplete)
	return nil
}

func init() {
	rootCmd.AddCommand(markCmd)
	markCmd.Flags().Bool("through", false, "Mark every task up to and including this one")
}
