package markdown

import "strings"

// formatHeadings adjusts the blank-line run around every heading to the
// configured counts. Runs are measured first and only changed when they
// differ; blindly appending would grow the document on every pass. A
// heading at the start of the document never gets a run inserted before
// it, but an over-long leading run is still collapsed.
func formatHeadings(ls []classifiedLine, cfg HeadingConfig) []classifiedLine {
	out := make([]classifiedLine, 0, len(ls))
	hasContent := false

	for i := 0; i < len(ls); i++ {
		cl := ls[i]
		if cl.kind != lineHeading {
			out = append(out, cl)
			if cl.kind != lineBlank {
				hasContent = true
			}
			continue
		}

		if hasContent {
			out = adjustTrailingBlanks(out, cfg.BlankLinesBefore)
		} else if have := trailingBlanks(out); have > cfg.BlankLinesBefore {
			out = out[:len(out)-(have-cfg.BlankLinesBefore)]
		}

		if cfg.SpaceAfterHash {
			cl.text = renderHeading(cl.level, cl.heading)
		}
		out = append(out, cl)
		hasContent = true

		// Replace the existing blank run after the heading.
		for i+1 < len(ls) && ls[i+1].kind == lineBlank {
			i++
		}
		for n := 0; n < cfg.BlankLinesAfter; n++ {
			out = append(out, classifiedLine{kind: lineBlank})
		}
	}

	return out
}

func renderHeading(level int, text string) string {
	hashes := strings.Repeat("#", level)
	if text == "" {
		return hashes
	}
	return hashes + " " + text
}

func trailingBlanks(out []classifiedLine) int {
	n := 0
	for i := len(out) - 1; i >= 0 && out[i].kind == lineBlank; i-- {
		n++
	}
	return n
}

func adjustTrailingBlanks(out []classifiedLine, want int) []classifiedLine {
	have := trailingBlanks(out)
	for have > want {
		out = out[:len(out)-1]
		have--
	}
	for have < want {
		out = append(out, classifiedLine{kind: lineBlank})
		have++
	}
	return out
}
