// Package markdown implements the formatting pipeline: code-region
// protection, heuristic pre-repair of malformed constructs, and the
// structural formatters for tables, headings and lists. The pipeline is a
// pure function of (text, config); formatting its own output again is a
// no-op.
package markdown

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned for input that is not valid UTF-8. No partial
// formatting is attempted on undecodable input.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Result carries the rewritten document and every issue found on the way.
type Result struct {
	Text        string
	Diagnostics []Diagnostic
}

// Format rewrites content according to cfg. Stage order is fixed:
// protect, preprocess, classify, headings, lists, tables, restore.
// Malformed constructs never abort; they degrade to a best-effort rewrite
// plus a diagnostic. cfg is assumed to be validated.
func Format(content string, cfg Config) (Result, error) {
	if !utf8.ValidString(content) {
		return Result{}, ErrInvalidUTF8
	}
	if content == "" {
		return Result{Diagnostics: []Diagnostic{}}, nil
	}

	prot, diags := protect(splitLines(content), cfg.Code)

	pre, d := preprocess(prot.lines, prot.src, prot.ids, cfg)
	diags = append(diags, d...)

	ls := classify(pre, prot.src, prot.ids)
	ls = formatHeadings(ls, cfg.Headings)

	ls, d = formatLists(ls, cfg.Lists)
	diags = append(diags, d...)

	ls, d = formatTables(ls, cfg.Tables)
	diags = append(diags, d...)

	text := joinLines(restore(ls, prot.arena, cfg.Code))

	return Result{Text: text, Diagnostics: diags.sorted()}, nil
}

// restore substitutes every placeholder back to its block's exact content,
// with delimiters rewritten to the configured fence style.
func restore(ls []classifiedLine, arena []*protectedBlock, cfg CodeConfig) []string {
	out := make([]string, 0, len(ls))
	for _, cl := range ls {
		if cl.kind != linePlaceholder {
			out = append(out, cl.text)
			continue
		}
		if cl.blockID < 0 || cl.blockID >= len(arena) {
			out = append(out, cl.text)
			continue
		}
		out = append(out, arena[cl.blockID].render(cfg)...)
	}
	return out
}

// splitLines splits on newlines, accepting CRLF input. Output always uses
// LF endings, which keeps the second pass byte-identical to the first.
func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// joinLines terminates the document with a single trailing newline.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
