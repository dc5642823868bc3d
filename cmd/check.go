package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check whether files are formatted",
	Long: `Check whether markdown files are already formatted. Exits with a
non-zero status and prints a diff for every file that would change.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		files, err := expandArgs(args)
		if err != nil {
			return err
		}
		return checkFiles(files, cfg, outputStyles())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
