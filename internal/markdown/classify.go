package markdown

import "strings"

type lineKind int

const (
	lineBlank lineKind = iota
	linePlaceholder
	lineHeading
	lineListItem
	lineTableRow
	lineBlockquote
	linePlain
)

// classifiedLine tags one line with its structural role. Lines are never
// mutated by the formatters; they replace entries with fresh values.
type classifiedLine struct {
	kind lineKind
	src  int    // original 1-based line number, 0 for synthetic lines
	text string // full rendered line

	// lineHeading
	level   int
	heading string

	// lineListItem
	indentW int  // raw indentation width in columns
	bullet  byte // '-', '*' or '+'; 0 for ordered items
	ordinal int
	body    string

	// lineTableRow
	cells []string
	delim bool

	// linePlaceholder
	blockID int
}

// classify tags every line of the preprocessed document. The closed set of
// kinds is the only interface the structural formatters consume; none of
// them re-scan raw text. Placeholder positions come from the protector;
// line content alone never makes a placeholder.
func classify(lines []string, src, ids []int) []classifiedLine {
	out := make([]classifiedLine, len(lines))
	for i, raw := range lines {
		out[i] = classifyLine(raw, src[i], ids[i])
	}
	return out
}

func classifyLine(raw string, srcLine, blockID int) classifiedLine {
	cl := classifiedLine{kind: linePlain, src: srcLine, text: raw}

	if blockID >= 0 {
		cl.kind = linePlaceholder
		cl.blockID = blockID
		return cl
	}

	trimmed := strings.TrimLeft(raw, " \t")
	if strings.TrimSpace(trimmed) == "" {
		cl.kind = lineBlank
		return cl
	}

	if strings.HasPrefix(trimmed, ">") {
		cl.kind = lineBlockquote
		return cl
	}

	if level, text, ok := parseHeading(trimmed); ok {
		cl.kind = lineHeading
		cl.level = level
		cl.heading = text
		return cl
	}

	if isThematicBreak(trimmed) {
		return cl
	}

	if item, ok := parseListItem(raw, trimmed); ok {
		cl.kind = lineListItem
		cl.indentW = item.indentW
		cl.bullet = item.bullet
		cl.ordinal = item.ordinal
		cl.body = item.body
		return cl
	}

	if strings.HasPrefix(trimmed, "|") {
		cells := splitCells(trimmed)
		if len(cells) > 0 {
			cl.kind = lineTableRow
			cl.cells = cells
			cl.delim = isDelimiterRow(cells)
			return cl
		}
	}

	return cl
}

func parseHeading(trimmed string) (int, string, bool) {
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	if level == len(trimmed) {
		return level, "", true
	}
	if trimmed[level] != ' ' && trimmed[level] != '\t' {
		return 0, "", false
	}
	return level, strings.TrimSpace(trimmed[level:]), true
}

type listItem struct {
	indentW int
	bullet  byte
	ordinal int
	body    string
}

func parseListItem(raw, trimmed string) (listItem, bool) {
	indentW := indentWidth(raw)

	c := trimmed[0]
	if c == '-' || c == '*' || c == '+' {
		if len(trimmed) < 2 || (trimmed[1] != ' ' && trimmed[1] != '\t') {
			return listItem{}, false
		}
		return listItem{
			indentW: indentW,
			bullet:  c,
			body:    strings.TrimLeft(trimmed[1:], " \t"),
		}, true
	}

	if c >= '0' && c <= '9' {
		dot := 0
		n := 0
		for dot < len(trimmed) && trimmed[dot] >= '0' && trimmed[dot] <= '9' {
			n = n*10 + int(trimmed[dot]-'0')
			dot++
		}
		if dot < len(trimmed) && trimmed[dot] == '.' &&
			dot+1 < len(trimmed) && (trimmed[dot+1] == ' ' || trimmed[dot+1] == '\t') {
			return listItem{
				indentW: indentW,
				ordinal: n,
				body:    strings.TrimLeft(trimmed[dot+1:], " \t"),
			}, true
		}
	}

	return listItem{}, false
}

// splitCells splits a table row on unescaped pipes and trims each cell.
// The boundary pipes contribute empty leading/trailing fields, which are
// dropped; interior empty cells are kept.
func splitCells(trimmed string) []string {
	var fields []string
	var cur strings.Builder
	escaped := false
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			escaped = false
		case c == '\\':
			cur.WriteByte(c)
			escaped = true
		case c == '|':
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))

	if len(fields) > 0 && fields[0] == "" {
		fields = fields[1:]
	}
	if len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// isDelimiterRow reports whether every cell is an alignment spec like
// `---`, `:--`, `--:` or `:-:`.
func isDelimiterRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if _, ok := parseAlignment(cell); !ok {
			return false
		}
	}
	return true
}

type alignment int

const (
	alignDefault alignment = iota
	alignLeft
	alignRight
	alignCenter
)

func parseAlignment(cell string) (alignment, bool) {
	if cell == "" {
		return alignDefault, false
	}
	left := strings.HasPrefix(cell, ":")
	right := strings.HasSuffix(cell, ":") && len(cell) > 1
	dashes := strings.Trim(cell, ":")
	if dashes == "" || strings.Trim(dashes, "-") != "" {
		return alignDefault, false
	}
	switch {
	case left && right:
		return alignCenter, true
	case left:
		return alignLeft, true
	case right:
		return alignRight, true
	default:
		return alignDefault, true
	}
}
