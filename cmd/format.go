package cmd

import (
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format [files...]",
	Short: "Format markdown files",
	Long: `Format markdown files and print the result to stdout, or rewrite
them in place with --in-place.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFormat(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().BoolVarP(&flagInPlace, "in-place", "i", false, "Rewrite files in place")
	formatCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write output to file (single input only)")
	formatCmd.Flags().BoolVar(&flagStdout, "stdout", false, "Force output to stdout")
	formatCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Show what would change without writing")
}
