package markdown

import "strings"

// preprocess repairs malformed-but-recognizable constructs one line at a
// time. Rules never merge or split lines and never look at neighboring
// lines, so diagnostic line numbers stay stable. A rule that rewrites a
// line reports Info; a rule that can only flag reports Warning.
func preprocess(lines []string, src, ids []int, cfg Config) ([]string, Diagnostics) {
	var diags Diagnostics
	out := make([]string, len(lines))

	for i, line := range lines {
		if ids[i] >= 0 {
			out[i] = line
			continue
		}
		out[i] = repairLine(line, src[i], cfg, &diags)
	}

	return out, diags
}

func repairLine(line string, lineNo int, cfg Config, diags *Diagnostics) string {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return line
	}
	indent := line[:len(line)-len(trimmed)]

	if strings.HasPrefix(trimmed, "#") {
		return indent + repairHeading(trimmed, line, lineNo, cfg.Headings, diags)
	}
	if fixed, ok := repairListMarker(trimmed); ok {
		fixed = indent + fixed
		diags.info(lineNo, "inserted space after list marker", line, fixed)
		return fixed
	}
	if isHeadingLine(trimmed) || isListItemLine(trimmed) || isThematicBreak(trimmed) {
		return line
	}
	if fixed, ok := repairTablePipes(trimmed); ok {
		fixed = indent + fixed
		diags.info(lineNo, "added missing table pipes", line, fixed)
		return fixed
	}
	return line
}

// repairHeading inserts the missing space after a 1-6 hash run and strips
// a trailing hash run. Seven or more hashes never form a heading; the line
// is flagged and left alone.
func repairHeading(trimmed, whole string, lineNo int, cfg HeadingConfig, diags *Diagnostics) string {
	hashes := 0
	for hashes < len(trimmed) && trimmed[hashes] == '#' {
		hashes++
	}
	rest := trimmed[hashes:]
	if hashes > 6 {
		if strings.TrimSpace(rest) != "" {
			diags.warnSnippet(lineNo, "more than 6 '#' characters, not a heading", whole)
		}
		return trimmed
	}
	if rest == "" {
		return trimmed
	}

	fixed := trimmed
	if rest[0] != ' ' && rest[0] != '\t' {
		if !cfg.SpaceAfterHash {
			return trimmed
		}
		fixed = trimmed[:hashes] + " " + rest
	}

	// Strip a trailing closing run of hashes, but never the heading text
	// itself.
	text := strings.TrimSpace(fixed[hashes:])
	stripped := strings.TrimRight(strings.TrimRight(text, "#"), " \t")
	if stripped != "" && stripped != text {
		fixed = fixed[:hashes+1] + stripped
	}

	if fixed != trimmed {
		diags.info(lineNo, "normalized heading spacing", whole, fixed)
	}
	return fixed
}

// repairListMarker inserts the space missing after a bullet or ordered
// list marker. Emphasis takes precedence: a balanced `*...*` or `**...**`
// span at the start of the line is text, never a list marker. Runs of the
// marker character (thematic breaks, `--flag` styling) are also left
// alone.
func repairListMarker(trimmed string) (string, bool) {
	c := trimmed[0]
	if c == '-' || c == '*' || c == '+' {
		if len(trimmed) < 2 {
			return "", false
		}
		next := trimmed[1]
		if next == ' ' || next == '\t' || next == c {
			return "", false
		}
		if c == '*' && hasEmphasisLead(trimmed) {
			return "", false
		}
		return trimmed[:1] + " " + trimmed[1:], true
	}

	if c >= '0' && c <= '9' {
		dot := 0
		for dot < len(trimmed) && trimmed[dot] >= '0' && trimmed[dot] <= '9' {
			dot++
		}
		if dot < len(trimmed) && trimmed[dot] == '.' && dot+1 < len(trimmed) {
			next := trimmed[dot+1]
			if next != ' ' && next != '\t' {
				return trimmed[:dot+1] + " " + trimmed[dot+1:], true
			}
		}
	}
	return "", false
}

// hasEmphasisLead reports whether the line opens an emphasis span with a
// matching closer on the same line.
func hasEmphasisLead(trimmed string) bool {
	if strings.HasPrefix(trimmed, "**") {
		return strings.Contains(trimmed[2:], "**")
	}
	if strings.HasPrefix(trimmed, "*") {
		return strings.ContainsRune(trimmed[1:], '*')
	}
	return false
}

// repairTablePipes wraps a table-row candidate in leading and trailing
// pipes. Only lines carrying an unescaped interior pipe qualify;
// blockquotes are never touched.
func repairTablePipes(trimmed string) (string, bool) {
	if strings.HasPrefix(trimmed, ">") {
		return "", false
	}
	if !hasUnescapedPipe(trimmed) {
		return "", false
	}

	fixed := trimmed
	changed := false
	if !strings.HasPrefix(fixed, "|") {
		fixed = "|" + fixed
		changed = true
	}
	if !endsWithUnescapedPipe(fixed) {
		fixed += "|"
		changed = true
	}
	if !changed {
		return "", false
	}
	return fixed, true
}

func hasUnescapedPipe(s string) bool {
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == '|':
			return true
		}
	}
	return false
}

func endsWithUnescapedPipe(s string) bool {
	if !strings.HasSuffix(s, "|") {
		return false
	}
	backslashes := 0
	for i := len(s) - 2; i >= 0 && s[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 0
}

func isHeadingLine(trimmed string) bool {
	n := 0
	for n < len(trimmed) && trimmed[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return false
	}
	return len(trimmed) == n || trimmed[n] == ' ' || trimmed[n] == '\t'
}

func isListItemLine(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	c := trimmed[0]
	if (c == '-' || c == '*' || c == '+') && len(trimmed) > 1 && (trimmed[1] == ' ' || trimmed[1] == '\t') {
		return !isThematicBreak(trimmed)
	}
	if c >= '0' && c <= '9' {
		dot := 0
		for dot < len(trimmed) && trimmed[dot] >= '0' && trimmed[dot] <= '9' {
			dot++
		}
		return dot < len(trimmed) && trimmed[dot] == '.' &&
			(dot+1 == len(trimmed) || trimmed[dot+1] == ' ' || trimmed[dot+1] == '\t')
	}
	return false
}

// isThematicBreak matches `---`, `***` and `___` style rules, with
// optional interior spaces as in `- - -`.
func isThematicBreak(trimmed string) bool {
	var char byte
	count := 0
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if c == ' ' || c == '\t' {
			continue
		}
		if c != '-' && c != '*' && c != '_' {
			return false
		}
		if char == 0 {
			char = c
		} else if c != char {
			return false
		}
		count++
	}
	return count >= 3
}
