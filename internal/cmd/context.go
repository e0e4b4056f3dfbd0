package cmd

import (
	"github.com/spf13/cobra"
)

// CommandContext holds all command-line flags and configuration shared by
// every command. Extracting it per invocation keeps commands free of global
// state and makes them testable.
type CommandContext struct {
	// Project location
	Root string

	// Output control
	Format  string
	NoColor bool
	Verbose bool
	Quiet   bool

	// Logging
	LogLevel string
}

// NewCommandContext extracts command context from cobra.Command flags.
// Commands should call this in their RunE function to get their
// configuration.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return nil, err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}

	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return nil, err
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, err
	}

	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Root:     root,
		Format:   format,
		NoColor:  noColor,
		Verbose:  verbose,
		Quiet:    quiet,
		LogLevel: logLevel,
	}, nil
}
