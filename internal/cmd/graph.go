package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dpsmith/dpsmith/internal/errors"
	"github.com/dpsmith/dpsmith/internal/graph"
	"github.com/dpsmith/dpsmith/internal/plan"
	"github.com/dpsmith/dpsmith/internal/render"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Inspect the dependency graph",
	Long: `Build the dependency graph from the prescription set and print its
leveling without persisting anything.

With --format mermaid, emit a Mermaid flowchart suitable for embedding in
documentation.`,
	RunE: runGraph,
}

func runGraph(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	records, parseErrs, err := loadPrescriptions(cmd, cmdCtx)
	if err != nil {
		return err
	}
	reportParseErrors(parseErrs)

	r := render.New(cmd.OutOrStdout(), cmdCtx.NoColor)
	if cmdCtx.Format == "mermaid" {
		r.Mermaid(records)
		return nil
	}

	g := graph.Build(records)
	if cr := graph.DetectCycles(g); !cr.Valid {
		reportErrors(cr.Errors)
		return errors.New(errors.ErrCodeGraphCyclicDep, cr.Errors[0]).
			WithSuggestion("Break the cycle by removing one of the listed dependencies")
	}

	r.Plan(plan.Compile(g, graph.AssignLevels(g)))
	return nil
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("dir", "d", "dps", "Prescription directory")
}
