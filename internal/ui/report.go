package ui

import (
	"fmt"
	"io"

	"github.com/samsaffron/mdtidy/internal/markdown"
)

// PrintDiagnostics renders a diagnostic report for one file. Diagnostics
// arrive already ordered by the core; nothing is filtered or reordered
// here.
func PrintDiagnostics(w io.Writer, styles *Styles, path string, diags []markdown.Diagnostic) {
	if len(diags) == 0 {
		return
	}

	noun := "issues"
	if len(diags) == 1 {
		noun = "issue"
	}
	fmt.Fprintf(w, "%s: %s\n", styles.Path.Render(path),
		styles.Bold.Render(fmt.Sprintf("%d %s found", len(diags), noun)))

	for _, d := range diags {
		printDiagnostic(w, styles, d)
	}
}

func printDiagnostic(w io.Writer, styles *Styles, d markdown.Diagnostic) {
	sev := styles.Info.Render(string(d.Severity))
	if d.Severity == markdown.SeverityWarning {
		sev = styles.Warning.Render(string(d.Severity))
	}
	fmt.Fprintf(w, "  %s %s %s\n",
		styles.Muted.Render(fmt.Sprintf("line %d:", d.Line)), sev, d.Message)

	if d.Before != "" && d.After != "" {
		fmt.Fprintf(w, "    %s %s\n", styles.DiffRemove.Render("-"), styles.Muted.Render(d.Before))
		fmt.Fprintf(w, "    %s %s\n", styles.DiffAdd.Render("+"), styles.Muted.Render(d.After))
	} else if d.Before != "" {
		fmt.Fprintf(w, "    %s %s\n", styles.Muted.Render("|"), styles.Muted.Render(d.Before))
	}
}

// PrintSummary renders the per-run closing line.
func PrintSummary(w io.Writer, styles *Styles, clean, changed int) {
	switch {
	case changed == 0:
		fmt.Fprintf(w, "%s\n", styles.Success.Render(fmt.Sprintf("%d file(s) already formatted", clean)))
	default:
		fmt.Fprintf(w, "%s\n", styles.Bold.Render(fmt.Sprintf("%d file(s) formatted, %d unchanged", changed, clean)))
	}
}
