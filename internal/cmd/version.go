package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dpsmith/dpsmith/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return err
		}

		info := version.GetInfo()
		if short {
			fmt.Fprintln(cmd.OutOrStdout(), info.Short())
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("short", false, "Print only the version number")
}
