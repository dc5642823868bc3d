package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdtidy [files...]",
	Short: "Format and beautify Markdown files",
	Long: `mdtidy rewrites Markdown into a consistent style: aligned tables,
normalized headings and lists, and repaired malformed constructs.
Code blocks are preserved byte-for-byte.

Examples:
  mdtidy README.md                  # formatted output to stdout
  mdtidy -i docs/*.md               # rewrite files in place
  mdtidy --check README.md          # exit 1 if formatting is needed
  mdtidy --dry-run README.md        # report issues without writing
  mdtidy -g 'docs/**/*.md' -i       # recursive glob, in place

  mdtidy config init                # write a default .mdtidy.toml`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runFormat(cmd, args)
	},
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

var (
	flagConfig  string
	flagInPlace bool
	flagOutput  string
	flagStdout  bool
	flagGlob    bool
	flagCheck   bool
	flagDryRun  bool
	flagVerbose bool
	flagNoColor bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "Configuration file path")
	pf.BoolVarP(&flagGlob, "glob", "g", false, "Treat file arguments as glob patterns (supports **)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	f := rootCmd.Flags()
	f.BoolVarP(&flagInPlace, "in-place", "i", false, "Modify files in place")
	f.StringVarP(&flagOutput, "output", "o", "", "Output file (single input only)")
	f.BoolVar(&flagStdout, "stdout", false, "Write to stdout (default when not --in-place)")
	f.BoolVar(&flagCheck, "check", false, "Exit with an error if files need formatting")
	f.BoolVar(&flagDryRun, "dry-run", false, "Report issues and show the diff without writing")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
