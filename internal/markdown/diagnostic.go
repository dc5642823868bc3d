package markdown

import "sort"

// Severity classifies a diagnostic.
type Severity string

const (
	// SeverityWarning marks an issue that was detected but not (or only
	// partially) repaired. Formatting always continues.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks a repair that was applied automatically.
	SeverityInfo Severity = "info"
)

// Diagnostic describes one issue found while formatting. Line numbers are
// 1-based and always refer to the original input, not the rewritten text.
type Diagnostic struct {
	Line     int      `json:"line"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Before   string   `json:"before,omitempty"`
	After    string   `json:"after,omitempty"`
}

// Diagnostics is an append-only collection. Stages return their own
// collection and the orchestrator merges them; there is no shared state.
type Diagnostics []Diagnostic

func (d *Diagnostics) warn(line int, message string) {
	*d = append(*d, Diagnostic{Line: line, Severity: SeverityWarning, Message: message})
}

func (d *Diagnostics) warnSnippet(line int, message, before string) {
	*d = append(*d, Diagnostic{Line: line, Severity: SeverityWarning, Message: message, Before: before})
}

func (d *Diagnostics) info(line int, message, before, after string) {
	*d = append(*d, Diagnostic{Line: line, Severity: SeverityInfo, Message: message, Before: before, After: after})
}

// sorted returns the diagnostics ordered by original line number. The sort
// is stable so diagnostics on the same line keep their emission order.
func (d Diagnostics) sorted() Diagnostics {
	out := make(Diagnostics, len(d))
	copy(out, d)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Line < out[j].Line
	})
	return out
}
