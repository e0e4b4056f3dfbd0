package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dpsmith/dpsmith/internal/dp"
	"github.com/dpsmith/dpsmith/internal/errors"
	"github.com/dpsmith/dpsmith/internal/log"
	"github.com/dpsmith/dpsmith/internal/plan"
	"github.com/dpsmith/dpsmith/internal/render"
	"github.com/dpsmith/dpsmith/internal/state"
	"github.com/dpsmith/dpsmith/internal/ux"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile prescriptions into a Yadasmith plan",
	Long: `Compile the design prescriptions under the prescription directory into a
leveled execution plan and persist it.

Compilation validates the prescription set (unresolvable dependencies,
duplicate names), rejects any circular dependency, assigns each prescription
an execution level, and orders each level by priority descending then
identifier ascending. Every entry starts at pending — compiling never
carries status over from a previous plan.`,
	RunE: runCompile,
}

func runCompile(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	records, parseErrs, err := loadPrescriptions(cmd, cmdCtx)
	if err != nil {
		return err
	}
	reportParseErrors(parseErrs)

	result := plan.Resolve(records)
	reportWarnings(result.Warnings)
	if !result.Valid() {
		reportErrors(result.Errors)
		return errors.NewPrescriptionInvalidError(len(result.Errors))
	}

	store := state.NewStore(cmdCtx.Root)
	if err := store.Write(result.Plan); err != nil {
		return ux.FormatError(err, "writing plan")
	}

	log.DefaultLogger().Debug("plan compiled",
		"prescriptions", len(records),
		"levels", len(result.Plan.Levels))

	r := render.New(cmd.OutOrStdout(), cmdCtx.NoColor)
	r.Plan(result.Plan)
	fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Compiled %d tasks into %d levels\n",
		result.Plan.TotalEntries(), len(result.Plan.Levels))
	fmt.Fprintln(cmd.OutOrStdout(), "\nNext steps:")
	fmt.Fprintln(cmd.OutOrStdout(), "  1. Check progress: dpsmith status")
	fmt.Fprintln(cmd.OutOrStdout(), "  2. Mark work done: dpsmith mark <id>")

	return nil
}

// loadPrescriptions resolves the prescription directory from flags and loads
// every record in it, shared by compile, validate and graph.
func loadPrescriptions(cmd *cobra.Command, cmdCtx *CommandContext) ([]dp.Prescription, []string, error) {
	defaults := ux.NewPathDefaults()
	dir := cmd.Flags().Lookup("dir").Value.String()
	if !cmd.Flags().Changed("dir") {
		dir = defaults.DPDir(cmdCtx.Root)
	}

	if err := ux.ValidateRequiredDir(dir, "Prescription directory",
		"Add prescription YAML files or point --dir at them"); err != nil {
		return nil, nil, ux.EnhanceError(err)
	}

	records, parseErrs, err := dp.Load(dir)
	if err != nil {
		return nil, nil, ux.FormatError(err, "loading prescriptions")
	}
	return records, parseErrs, nil
}

func reportParseErrors(parseErrs []string) {
	for _, msg := range parseErrs {
		fmt.Fprintf(os.Stderr, "⚠ parse: %s\n", msg)
	}
}

func reportWarnings(warnings []string) {
	for _, msg := range warnings {
		fmt.Fprintf(os.Stderr, "⚠ %s\n", msg)
	}
}

func reportErrors(errs []string) {
	for _, msg := range errs {
		fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
	}
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringP("dir", "d", "dps", "Prescription directory")
}
