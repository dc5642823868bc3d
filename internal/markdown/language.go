package markdown

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// detectLanguage guesses a fence language tag from code content. Returns
// "" when no lexer claims the content, in which case the fence is left
// untagged.
func detectLanguage(content string) string {
	lexer := lexers.Analyse(content)
	if lexer == nil {
		return ""
	}
	cfg := lexer.Config()
	if cfg == nil {
		return ""
	}
	if len(cfg.Aliases) > 0 {
		return cfg.Aliases[0]
	}
	return strings.ToLower(cfg.Name)
}
