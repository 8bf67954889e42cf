// Package vlex is a minimal demonstration of an external tokenizer built on
// top of vlang: it consumes StripComments, IsKeyword, and IsCompilerDirective
// to guide lexing. It is not a Verilog parser — a streaming tokenizer/parser
// and macro preprocessor are out of scope for this repository — it exists
// only to prove the core library's interfaces are usable by a real consumer.
package vlex

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/vlang/pkg/vlang"
)

// wordLexer splits a comment-stripped line into directive, word, and
// punctuation tokens.
var wordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Directive", Pattern: "`[A-Za-z_][A-Za-z0-9_]*"},
	{Name: "Word", Pattern: `[A-Za-z_][A-Za-z0-9_$]*`},
	{Name: "Other", Pattern: `.`},
})

// Classification is one token's classification result.
type Classification struct {
	Text        string
	Keyword     string // introducing standard, if Text is a keyword
	IsKeyword   bool
	Directive   string // introducing standard, if Text is a compiler directive
	IsDirective bool
}

// ClassifyLine strips comments from line, tokenizes it into words and
// directives, and classifies each one: words against the active language
// standard, directives against the standard-independent directive table.
// Punctuation and whitespace tokens are dropped.
func ClassifyLine(line string) []Classification {
	stripped := vlang.StripComments(line)

	def := wordLexer
	names := make(map[lexer.TokenType]string, len(def.Symbols()))
	for name, tt := range def.Symbols() {
		names[tt] = name
	}

	lx, err := def.Lex("", strings.NewReader(stripped))
	if err != nil {
		return nil
	}

	var out []Classification
	for {
		tok, err := lx.Next()
		if err != nil || tok.EOF() {
			break
		}
		switch names[tok.Type] {
		case "Word":
			c := Classification{Text: tok.Value}
			if std, ok := vlang.IsKeyword(tok.Value); ok {
				c.Keyword, c.IsKeyword = std, true
			}
			out = append(out, c)
		case "Directive":
			c := Classification{Text: tok.Value}
			if std, ok := vlang.IsCompilerDirective(tok.Value); ok {
				c.Directive, c.IsDirective = std, true
			}
			out = append(out, c)
		}
	}
	return out
}
