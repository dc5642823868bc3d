package markdown

import (
	"fmt"
	"strings"
)

// protectedBlock is one fenced code block lifted out of the document. The
// content lines are restored byte-identical; only the delimiter lines may
// be rewritten, and only to the configured fence style.
type protectedBlock struct {
	id        int
	openLine  int    // original 1-based line number of the opening fence
	indent    string // leading whitespace of the opening fence
	char      byte   // '`' or '~'
	runLen    int
	info      string // language tag and anything else after the fence run
	openRaw   string
	closeRaw  string // empty when the block runs to end of document
	closed    bool
	content   []string
	addedLang string // language inferred for ensure_language_tag
}

// protected is the document with every code block replaced by a
// single-line placeholder. src maps each line back to its original
// 1-based line number so diagnostics stay stable downstream. ids carries
// the arena id of each placeholder line and -1 for document lines;
// placeholders are recognized only by position, so document text that
// happens to look like a token is never confused with one.
type protected struct {
	lines []string
	src   []int
	ids   []int
	arena []*protectedBlock
}

const placeholderPrefix = "\x00mdtidy:code:"

func placeholderToken(id int) string {
	return fmt.Sprintf("%s%d\x00", placeholderPrefix, id)
}

func isPlaceholder(line string) bool {
	return strings.HasPrefix(line, placeholderPrefix)
}

// fenceOpen reports whether line opens a fenced code block and returns its
// parts. A fence is a (possibly indented) run of at least three backticks
// or tildes; backtick fences cannot carry backticks in their info string.
func fenceOpen(line string) (indent string, char byte, runLen int, info string, ok bool) {
	rest := strings.TrimLeft(line, " \t")
	if len(rest) < 3 || (rest[0] != '`' && rest[0] != '~') {
		return "", 0, 0, "", false
	}
	char = rest[0]
	runLen = 0
	for runLen < len(rest) && rest[runLen] == char {
		runLen++
	}
	if runLen < 3 {
		return "", 0, 0, "", false
	}
	info = strings.TrimSpace(rest[runLen:])
	if char == '`' && strings.ContainsRune(info, '`') {
		return "", 0, 0, "", false
	}
	indent = line[:len(line)-len(rest)]
	return indent, char, runLen, info, true
}

// fenceClose reports whether line closes a block opened with the given
// character and run length at the given indentation.
func fenceClose(line string, openIndent string, char byte, runLen int) bool {
	rest := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(rest)]
	if indentWidth(indent) > indentWidth(openIndent) {
		return false
	}
	n := 0
	for n < len(rest) && rest[n] == char {
		n++
	}
	return n >= runLen && strings.TrimSpace(rest[n:]) == ""
}

// protect extracts every fenced code block into an arena, replacing each
// with a one-line placeholder. Runs strictly before any other stage so no
// formatter ever sees code content. An unclosed fence swallows the rest of
// the document and leaves a warning at the opening line.
func protect(lines []string, cfg CodeConfig) (protected, Diagnostics) {
	var diags Diagnostics
	out := protected{}

	for i := 0; i < len(lines); i++ {
		indent, char, runLen, info, ok := fenceOpen(lines[i])
		if !ok {
			out.lines = append(out.lines, lines[i])
			out.src = append(out.src, i+1)
			out.ids = append(out.ids, -1)
			continue
		}

		block := &protectedBlock{
			id:       len(out.arena),
			openLine: i + 1,
			indent:   indent,
			char:     char,
			runLen:   runLen,
			info:     info,
			openRaw:  lines[i],
		}

		j := i + 1
		for ; j < len(lines); j++ {
			if fenceClose(lines[j], indent, char, runLen) {
				block.closed = true
				block.closeRaw = lines[j]
				break
			}
			block.content = append(block.content, lines[j])
		}
		if !block.closed {
			diags.warn(block.openLine, "unclosed code fence, block extends to end of document")
			j = len(lines) - 1
		}

		if cfg.EnsureLanguageTag && block.info == "" && len(block.content) > 0 {
			if lang := detectLanguage(strings.Join(block.content, "\n")); lang != "" {
				block.addedLang = lang
				diags.info(block.openLine, "added language tag to code fence", block.openRaw, block.openRaw+lang)
			}
		}

		out.arena = append(out.arena, block)
		out.lines = append(out.lines, placeholderToken(block.id))
		out.src = append(out.src, block.openLine)
		out.ids = append(out.ids, block.id)
		i = j
	}

	return out, diags
}

// render produces the block's final lines. Content is byte-identical to
// the source; the delimiters are rewritten to the configured style. When
// the style changes, the delimiter run is lengthened past any run of the
// new character inside the content so a second pass reads the same block.
func (b *protectedBlock) render(cfg CodeConfig) []string {
	style := cfg.FenceStyle
	if style == "" {
		style = "```"
	}
	char := style[0]
	if char == '`' && strings.ContainsRune(b.info, '`') {
		// A backtick fence cannot carry backticks in its info string;
		// such a block stays tilde-fenced.
		char = b.char
	}

	if char == b.char && b.addedLang == "" {
		out := make([]string, 0, len(b.content)+2)
		out = append(out, b.openRaw)
		out = append(out, b.content...)
		if b.closed {
			out = append(out, b.closeRaw)
		}
		return out
	}

	runLen := b.runLen
	if char != b.char {
		for _, line := range b.content {
			if !fenceClose(line, b.indent, char, runLen) {
				continue
			}
			rest := strings.TrimLeft(line, " \t")
			n := 0
			for n < len(rest) && rest[n] == char {
				n++
			}
			if n >= runLen {
				runLen = n + 1
			}
		}
	}

	info := b.info
	if info == "" {
		info = b.addedLang
	}
	run := strings.Repeat(string(char), runLen)

	out := make([]string, 0, len(b.content)+2)
	out = append(out, b.indent+run+info)
	out = append(out, b.content...)
	if b.closed {
		closeIndent := b.closeRaw[:len(b.closeRaw)-len(strings.TrimLeft(b.closeRaw, " \t"))]
		out = append(out, closeIndent+run)
	}
	return out
}

// indentWidth measures leading whitespace in columns, tabs counting as 4.
func indentWidth(s string) int {
	w := 0
	for _, r := range s {
		switch r {
		case '\t':
			w += 4
		case ' ':
			w++
		default:
			return w
		}
	}
	return w
}
