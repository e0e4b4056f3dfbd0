package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dpsmith/dpsmith/internal/dp"
	"github.com/dpsmith/dpsmith/internal/errors"
	"github.com/dpsmith/dpsmith/internal/graph"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate prescriptions without compiling",
	Long: `Validate the prescription set for structural correctness.

Checks:
- Every dependency identifier resolves to an existing prescription
- No duplicate display names or subdp names
- No circular dependencies
- Advisory findings (naming convention, missing companion fields)

No plan is written.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	records, parseErrs, err := loadPrescriptions(cmd, cmdCtx)
	if err != nil {
		return err
	}
	reportParseErrors(parseErrs)

	vr := dp.Validate(records)
	reportWarnings(vr.Warnings)

	findings := append([]string{}, vr.Errors...)
	if cr := graph.DetectCycles(graph.Build(records)); !cr.Valid {
		findings = append(findings, cr.Errors...)
	}

	if len(findings) > 0 {
		reportErrors(findings)
		return errors.NewPrescriptionInvalidError(len(findings))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %d prescriptions are valid\n", len(records))
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringP("dir", "d", "dps", "Prescription directory")
}
