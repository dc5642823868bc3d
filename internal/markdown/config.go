package markdown

// Config controls every stage of the pipeline. It is treated as immutable
// for the duration of a Format call. Validation (marker and fence style
// values, positive indent size) is the caller's responsibility; see the
// config package.
type Config struct {
	Tables   TableConfig
	Headings HeadingConfig
	Lists    ListConfig
	Code     CodeConfig
}

// TableConfig controls table reflow.
type TableConfig struct {
	Align          bool // reflow tables at all; false leaves them untouched
	MinColumnWidth int
	Padding        int // spaces on each side of a cell
}

// HeadingConfig controls heading spacing.
type HeadingConfig struct {
	BlankLinesBefore int
	BlankLinesAfter  int
	SpaceAfterHash   bool
}

// ListConfig controls list indentation and markers.
type ListConfig struct {
	IndentSize       int
	Marker           string // "-", "*" or "+"
	NormalizeNumbers bool
}

// CodeConfig controls fence rewriting.
type CodeConfig struct {
	EnsureLanguageTag bool
	FenceStyle        string // "```" or "~~~"
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Tables: TableConfig{
			Align:          true,
			MinColumnWidth: 3,
			Padding:        1,
		},
		Headings: HeadingConfig{
			BlankLinesBefore: 2,
			BlankLinesAfter:  1,
			SpaceAfterHash:   true,
		},
		Lists: ListConfig{
			IndentSize:       2,
			Marker:           "-",
			NormalizeNumbers: true,
		},
		Code: CodeConfig{
			EnsureLanguageTag: false,
			FenceStyle:        "```",
		},
	}
}
