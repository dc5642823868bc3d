package markdown

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// formatTables rewrites every table block: a maximal run of consecutive
// table rows whose second row is the delimiter row. The delimiter fixes
// the column count for the whole block; short rows are padded with empty
// cells and long rows lose their excess with a warning. Cell text is never
// wrapped or truncated, only padded.
func formatTables(ls []classifiedLine, cfg TableConfig) ([]classifiedLine, Diagnostics) {
	var diags Diagnostics
	if !cfg.Align {
		return ls, diags
	}

	out := make([]classifiedLine, len(ls))
	copy(out, ls)

	for i := 0; i < len(out); {
		if out[i].kind != lineTableRow {
			i++
			continue
		}
		j := i
		for j < len(out) && out[j].kind == lineTableRow {
			j++
		}
		if j-i >= 2 && out[i+1].delim && !out[i].delim {
			formatTableBlock(out[i:j], cfg, &diags)
		}
		i = j
	}

	return out, diags
}

func formatTableBlock(rows []classifiedLine, cfg TableConfig, diags *Diagnostics) {
	delim := rows[1]
	ncols := len(delim.cells)

	aligns := make([]alignment, ncols)
	for c, cell := range delim.cells {
		aligns[c], _ = parseAlignment(cell)
	}

	// Normalize every row to the delimiter's column count.
	cells := make([][]string, len(rows))
	for r := range rows {
		if r == 1 {
			continue
		}
		row := rows[r].cells
		if len(row) > ncols {
			diags.warnSnippet(rows[r].src,
				fmt.Sprintf("table row has %d cells, expected %d; extra cells dropped", len(row), ncols),
				rows[r].text)
			row = row[:ncols]
		}
		for len(row) < ncols {
			row = append(row, "")
		}
		cells[r] = row
	}

	widths := make([]int, ncols)
	for c := 0; c < ncols; c++ {
		widths[c] = cfg.MinColumnWidth
		for r := range cells {
			if r == 1 {
				continue
			}
			if w := runewidth.StringWidth(cells[r][c]); w > widths[c] {
				widths[c] = w
			}
		}
	}

	pad := strings.Repeat(" ", cfg.Padding)
	for r := range rows {
		var b strings.Builder
		b.WriteByte('|')
		for c := 0; c < ncols; c++ {
			b.WriteString(pad)
			if r == 1 {
				b.WriteString(delimiterCell(widths[c], aligns[c]))
			} else {
				b.WriteString(justifyCell(cells[r][c], widths[c], aligns[c]))
			}
			b.WriteString(pad)
			b.WriteByte('|')
		}
		rows[r].text = b.String()
		if r != 1 {
			rows[r].cells = cells[r]
		}
	}
}

func justifyCell(cell string, width int, align alignment) string {
	gap := width - runewidth.StringWidth(cell)
	if gap <= 0 {
		return cell
	}
	switch align {
	case alignRight:
		return strings.Repeat(" ", gap) + cell
	case alignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", gap-left)
	default:
		return cell + strings.Repeat(" ", gap)
	}
}

func delimiterCell(width int, align alignment) string {
	dashes := func(n int) string {
		if n < 1 {
			n = 1
		}
		return strings.Repeat("-", n)
	}
	switch align {
	case alignLeft:
		return ":" + dashes(width-1)
	case alignRight:
		return dashes(width-1) + ":"
	case alignCenter:
		return ":" + dashes(width-2) + ":"
	default:
		return dashes(width)
	}
}
