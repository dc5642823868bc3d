package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samsaffron/mdtidy/internal/config"
	"github.com/samsaffron/mdtidy/internal/markdown"
	"github.com/samsaffron/mdtidy/internal/ui"
	"github.com/spf13/cobra"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func outputStyles() *ui.Styles {
	styles := ui.NewStyles(os.Stderr)
	if flagNoColor {
		styles.NoColor()
	}
	return styles
}

// expandArgs resolves the file arguments, expanding doublestar patterns
// when --glob is set.
func expandArgs(args []string) ([]string, error) {
	if !flagGlob {
		return args, nil
	}
	var files []string
	for _, pattern := range args {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err == nil && info.Mode().IsRegular() {
				files = append(files, m)
			}
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files matched the specified pattern(s)")
	}
	sort.Strings(files)
	return files, nil
}

// formatFile reads and formats one file, returning the original and
// formatted content.
func formatFile(path string, cfg markdown.Config) (original string, res markdown.Result, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", markdown.Result{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	res, err = markdown.Format(string(data), cfg)
	if err != nil {
		return "", markdown.Result{}, fmt.Errorf("failed to format %s: %w", path, err)
	}
	return string(data), res, nil
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	files, err := expandArgs(args)
	if err != nil {
		return err
	}
	styles := outputStyles()

	if flagCheck {
		return checkFiles(files, cfg, styles)
	}
	if flagDryRun {
		return dryRunFiles(files, cfg, styles)
	}

	if flagOutput != "" && !flagStdout {
		if len(files) != 1 {
			return fmt.Errorf("cannot use --output with %d input files", len(files))
		}
		_, res, err := formatFile(files[0], cfg.Markdown())
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagOutput, []byte(res.Text), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", flagOutput, err)
		}
		reportVerbose(styles, files[0], res.Diagnostics)
		return nil
	}

	if flagInPlace && !flagStdout {
		changed := 0
		for _, path := range files {
			original, res, err := formatFile(path, cfg.Markdown())
			if err != nil {
				return err
			}
			if res.Text != original {
				if err := os.WriteFile(path, []byte(res.Text), 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				changed++
			}
			reportVerbose(styles, path, res.Diagnostics)
		}
		if flagVerbose {
			ui.PrintSummary(os.Stderr, styles, len(files)-changed, changed)
		}
		return nil
	}

	// Default: formatted output to stdout, diagnostics to stderr.
	for _, path := range files {
		_, res, err := formatFile(path, cfg.Markdown())
		if err != nil {
			return err
		}
		fmt.Print(res.Text)
		reportVerbose(styles, path, res.Diagnostics)
	}
	return nil
}

func reportVerbose(styles *ui.Styles, path string, diags []markdown.Diagnostic) {
	if flagVerbose {
		ui.PrintDiagnostics(os.Stderr, styles, path, diags)
	}
}

// checkFiles reports which files would change, without writing anything.
// Returns a non-nil error (and so exit code 1) when any file needs
// formatting.
func checkFiles(files []string, cfg *config.Config, styles *ui.Styles) error {
	var dirty []string
	for _, path := range files {
		original, res, err := formatFile(path, cfg.Markdown())
		if err != nil {
			return err
		}
		if res.Text != original {
			dirty = append(dirty, path)
			ui.PrintDiff(os.Stderr, styles, path, original, res.Text)
		}
	}

	if len(dirty) == 0 {
		fmt.Fprintln(os.Stderr, styles.Success.Render("All files are properly formatted"))
		return nil
	}
	fmt.Fprintln(os.Stderr, styles.Error.Render("The following files need formatting:"))
	for _, path := range dirty {
		fmt.Fprintf(os.Stderr, "  %s\n", path)
	}
	return fmt.Errorf("%d file(s) need formatting", len(dirty))
}

// dryRunFiles prints every file's diagnostics and diff without writing.
func dryRunFiles(files []string, cfg *config.Config, styles *ui.Styles) error {
	for _, path := range files {
		original, res, err := formatFile(path, cfg.Markdown())
		if err != nil {
			return err
		}
		ui.PrintDiagnostics(os.Stderr, styles, path, res.Diagnostics)
		ui.PrintDiff(os.Stderr, styles, path, original, res.Text)
	}
	return nil
}
