package markdown

import (
	"strconv"
	"strings"
)

// levelEntry pairs an original indentation width with the depth assigned
// to it. Source indentation is frequently irregular (3-, 4- or 5-space
// steps), so depth is inferred by matching against previously seen widths
// instead of dividing by a fixed unit.
type levelEntry struct {
	indent int
	depth  int
}

// formatLists rewrites every list block: indentation becomes
// indent_size x depth, bullets become the configured marker, and ordered
// runs are renumbered per depth when enabled. Task-list checkboxes live in
// the item body and pass through verbatim.
func formatLists(ls []classifiedLine, cfg ListConfig) ([]classifiedLine, Diagnostics) {
	var diags Diagnostics
	out := make([]classifiedLine, len(ls))

	var stack []levelEntry
	var counters []int // next ordinal per depth; 0 means no active run

	for i, cl := range ls {
		switch cl.kind {
		case lineListItem:
			depth, ambiguous := resolveDepth(&stack, cl.indentW)
			if ambiguous {
				diags.warnSnippet(cl.src, "ambiguous list indentation", cl.text)
			}

			for len(counters) <= depth {
				counters = append(counters, 0)
			}
			counters = counters[:depth+1] // returning to a shallower depth ends deeper runs

			cl.text = renderListItem(cl, depth, cfg, counters)
			out[i] = cl

		case lineBlank:
			// Blank lines separate loose items without ending the block.
			out[i] = cl

		default:
			stack = stack[:0]
			counters = counters[:0]
			out[i] = cl
		}
	}

	return out, diags
}

// resolveDepth matches the item's raw indentation against the stack of
// open levels: deeper indentation opens a new level, shallower pops back
// to the matching one. A width that matches no open level is ambiguous and
// snaps to the nearest shallower level's child.
func resolveDepth(stack *[]levelEntry, indentW int) (int, bool) {
	s := *stack
	for len(s) > 0 && s[len(s)-1].indent > indentW {
		s = s[:len(s)-1]
	}

	var depth int
	ambiguous := false
	switch {
	case len(s) == 0:
		depth = 0
		s = append(s, levelEntry{indent: indentW, depth: 0})
	case s[len(s)-1].indent == indentW:
		depth = s[len(s)-1].depth
	default:
		depth = s[len(s)-1].depth + 1
		ambiguous = len(*stack) > len(s)
		s = append(s, levelEntry{indent: indentW, depth: depth})
	}

	*stack = s
	return depth, ambiguous
}

func renderListItem(cl classifiedLine, depth int, cfg ListConfig, counters []int) string {
	indent := strings.Repeat(" ", depth*cfg.IndentSize)

	if cl.bullet != 0 {
		counters[depth] = 0
		marker := cfg.Marker
		if marker == "" {
			marker = "-"
		}
		return indent + marker + " " + cl.body
	}

	n := cl.ordinal
	if cfg.NormalizeNumbers {
		if counters[depth] != 0 {
			n = counters[depth]
		}
		counters[depth] = n + 1
	} else {
		counters[depth] = 0
	}
	return indent + strconv.Itoa(n) + ". " + cl.body
}
