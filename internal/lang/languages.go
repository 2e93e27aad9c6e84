// Package lang binds the ruler engine to real tree-sitter grammars: language
// detection, parsing through the grammar bindings, and whole-file
// reindentation for the CLI.
package lang

import (
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"

	"github.com/jward/ruler"
)

// extToLanguage maps file extensions to canonical language names.
var extToLanguage = map[string]string{
	".py": "python",
	".rb": "ruby",
}

// langToGrammar maps language names to tree-sitter Language objects.
// Lazily initialized on first call via sync.Once.
var (
	langToGrammar map[string]*sitter.Language
	grammarsOnce  sync.Once
)

func initGrammars() {
	grammarsOnce.Do(func() {
		langToGrammar = map[string]*sitter.Language{
			"python": python.GetLanguage(),
			"ruby":   ruby.GetLanguage(),
		}
	})
}

// LanguageForFile returns the canonical language name for a file path based
// on its extension. Returns ("", false) if the extension is not recognized.
func LanguageForFile(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	lang, ok := extToLanguage[ext]
	return lang, ok
}

// GrammarFor returns the tree-sitter Language for a canonical language name.
// Returns (nil, false) if the language is not supported.
func GrammarFor(lang string) (*sitter.Language, bool) {
	initGrammars()
	l, ok := langToGrammar[lang]
	return l, ok
}

// RulesFor builds the indent rule table for a language under the given
// configuration. Returns (nil, false) for languages without a table.
func RulesFor(lang string, cfg ruler.Config) (ruler.Table, bool) {
	switch lang {
	case "python":
		return ruler.PythonRules(cfg), true
	case "ruby":
		return ruler.RubyRules(cfg), true
	}
	return nil, false
}
