package ui

import (
	"fmt"
	"io"
	"strings"

	diff "github.com/shogoki/gotextdiff"
)

// PrintDiff writes a colorized unified diff between the original and the
// formatted content. Used by --check and --dry-run so the user can see
// exactly what would change.
func PrintDiff(w io.Writer, styles *Styles, path, oldContent, newContent string) {
	if oldContent == newContent {
		return
	}

	diffBytes := diff.Diff(path, []byte(oldContent), path, []byte(newContent))
	if len(diffBytes) == 0 {
		return
	}

	fmt.Fprintf(w, "%s\n", styles.Path.Render(path))

	for _, line := range strings.Split(string(diffBytes), "\n") {
		if strings.HasPrefix(line, "diff ") ||
			strings.HasPrefix(line, "--- ") ||
			strings.HasPrefix(line, "+++ ") {
			continue
		}
		if line == "" {
			continue
		}
		switch line[0] {
		case '@':
			fmt.Fprintln(w, styles.DiffHeader.Render(line))
		case '-':
			fmt.Fprintln(w, styles.DiffRemove.Render(line))
		case '+':
			fmt.Fprintln(w, styles.DiffAdd.Render(line))
		default:
			fmt.Fprintln(w, line)
		}
	}
}
