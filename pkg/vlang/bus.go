package vlang

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// busLexer tokenizes the full bus grammar: brackets, colons, commas, and
// everything else as plain text.
var busLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Text", Pattern: `[^][:,]+`},
})

// busLexerNoComma tokenizes the simple bus grammar, where a comma has no
// special meaning and is just ordinary text.
var busLexerNoComma = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Text", Pattern: `[^][:]+`},
})

// bracketState names the parse position within a bracketed segment.
type bracketState int

const (
	stateOutside bracketState = iota
	stateExpectBegin
	stateExpectEnd
	stateExpectStride
)

// BracketGroup is one bracketed segment's preceding text plus its fully
// expanded list of bracketed index references, e.g. Pretext "foo" and
// Indices []string{"[5]", "[4]"} for "foo[5:4]".
type BracketGroup struct {
	Pretext string
	Indices []string
}

func tokenNames(def lexer.Definition) map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string)
	for name, tt := range def.Symbols() {
		names[tt] = name
	}
	return names
}

// splitBusCore walks the token stream from either busLexer or
// busLexerNoComma, building one BracketGroup per bracketed segment and then
// expanding each group's range independently before zipping the groups back
// together. Two or more bracketed groups in the same expression produce a
// zipped cartesian product: each output index combines the i-th entry of
// every group, with shorter groups wrapping around via modulo.
func splitBusCore(def lexer.Definition, input string) []string {
	lx, err := def.Lex("", strings.NewReader(input))
	if err != nil {
		return []string{input}
	}
	names := tokenNames(def)

	state := stateOutside
	groups := []BracketGroup{}
	pretext := ""
	var begin, end, step strings.Builder

	flushSegment := func() {
		if len(groups) == 0 {
			return
		}
		g := &groups[len(groups)-1]
		g.Indices = append(g.Indices, expandSegment(state, begin.String(), end.String(), step.String())...)
		begin.Reset()
		end.Reset()
		step.Reset()
	}

	for {
		tok, err := lx.Next()
		if err != nil {
			break
		}
		if tok.EOF() {
			break
		}
		switch names[tok.Type] {
		case "LBracket":
			groups = append(groups, BracketGroup{Pretext: pretext})
			pretext = ""
			state = stateExpectBegin
		case "Colon":
			if state == stateExpectBegin {
				state = stateExpectEnd
			} else if state == stateExpectEnd {
				state = stateExpectStride
			}
		case "Comma":
			flushSegment()
			state = stateExpectBegin
		case "RBracket":
			flushSegment()
			state = stateOutside
		default: // Text
			switch state {
			case stateOutside:
				pretext += tok.Value
			case stateExpectBegin:
				begin.WriteString(tok.Value)
			case stateExpectEnd:
				end.WriteString(tok.Value)
			case stateExpectStride:
				step.WriteString(tok.Value)
			}
		}
	}
	// Best-effort: an unterminated bracket still flushes its last segment.
	if state != stateOutside {
		flushSegment()
	}

	if len(groups) == 0 {
		return []string{pretext}
	}

	maxSize := 0
	for i := range groups {
		if len(groups[i].Indices) == 0 {
			groups[i].Indices = []string{""}
		}
		if len(groups[i].Indices) > maxSize {
			maxSize = len(groups[i].Indices)
		}
	}

	out := make([]string, maxSize)
	for i := 0; i < maxSize; i++ {
		var b strings.Builder
		for _, g := range groups {
			b.WriteString(g.Pretext)
			b.WriteString(g.Indices[i%len(g.Indices)])
		}
		b.WriteString(pretext)
		out[i] = b.String()
	}
	return out
}

// expandSegment turns one comma-separated range segment into its ordered
// "[idx]" entries. state tells us how many colons were seen: ExpectBegin
// means a bare "a" reference, ExpectEnd means "a:b", ExpectStride means
// "a:b:s".
func expandSegment(state bracketState, begin, end, step string) []string {
	if state == stateExpectBegin {
		return []string{"[" + begin + "]"}
	}

	a, aok := NumberValue(begin)
	b, bok := NumberValue(end)
	if !aok || !bok {
		raw := begin + ":" + end
		if state == stateExpectStride {
			raw += ":" + step
		}
		return []string{"[" + raw + "]"}
	}

	stride := int64(1)
	if state == stateExpectStride {
		if s, ok := NumberValue(step); ok && s != 0 {
			stride = s
		}
	}
	if stride < 0 {
		stride = -stride
	}

	var out []string
	if a <= b {
		for i := a; i <= b; i += stride {
			out = append(out, "["+strconv.FormatInt(i, 10)+"]")
		}
	} else {
		for i := a; i >= b; i -= stride {
			out = append(out, "["+strconv.FormatInt(i, 10)+"]")
		}
	}
	return out
}

// SplitBus expands a bus expression containing one or more bracketed,
// comma-separated, colon-ranged groups into the ordered list of scalar
// reference strings it denotes. A bus with no brackets is returned unchanged
// as a single-element list.
func SplitBus(bus string) []string {
	return splitBusCore(busLexer, bus)
}

// SplitBusNoComma expands the simple bus form "prefix[a:b]suffix" (no
// commas, no stride). A bus with no brackets is returned unchanged.
func SplitBusNoComma(bus string) []string {
	return splitBusCore(busLexerNoComma, bus)
}
