package vlang

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Standard identifies a Verilog/SystemVerilog/Verilog-AMS revision. It is an
// enum with an explicit predecessor chain rather than a bare string so that
// keyword visibility can be computed by walking ancestors instead of
// comparing version strings.
type Standard int

const (
	Standard1364_1995 Standard = iota
	Standard1364_2001
	Standard1364_2005
	Standard1800_2005
	Standard1800_2009
	Standard1800_2012
	Standard1800_2017
	StandardVAMS
)

// canonicalNames is the authoritative string form of each Standard, used for
// both parsing and rendering.
var canonicalNames = map[Standard]string{
	Standard1364_1995: "1364-1995",
	Standard1364_2001: "1364-2001",
	Standard1364_2005: "1364-2005",
	Standard1800_2005: "1800-2005",
	Standard1800_2009: "1800-2009",
	Standard1800_2012: "1800-2012",
	Standard1800_2017: "1800-2017",
	StandardVAMS:      "VAMS",
}

// predecessor records each standard's single immediate superset parent:
// 1800-NNNN supersedes the prior 1800 release (or the latest 1364 for
// 1800-2005), and VAMS supersedes 1364-2005. Standards with no entry have no
// predecessor.
var predecessor = map[Standard]Standard{
	Standard1364_2001: Standard1364_1995,
	Standard1364_2005: Standard1364_2001,
	Standard1800_2005: Standard1364_2005,
	Standard1800_2009: Standard1800_2005,
	Standard1800_2012: Standard1800_2009,
	Standard1800_2017: Standard1800_2012,
	StandardVAMS:      Standard1364_2005,
}

// StandardMaximum is the numerically greatest IEEE 1800 standard supported.
const StandardMaximum = Standard1800_2017

func (s Standard) String() string {
	if name, ok := canonicalNames[s]; ok {
		return name
	}
	return "unknown"
}

// ancestors returns s plus every standard it transitively supersedes.
func (s Standard) ancestors() []Standard {
	out := []Standard{s}
	for cur, ok := predecessor[s]; ok; cur, ok = predecessor[cur] {
		out = append(out, cur)
	}
	return out
}

var vamsAliasPattern = regexp.MustCompile(`(?i)^v?ams$`)

// parseStandard normalizes an input standard name or one of its aliases.
func parseStandard(name string) (Standard, bool) {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "1995":
		return Standard1364_1995, true
	case trimmed == "2001", trimmed == "1364-2001-noconfig":
		return Standard1364_2001, true
	case strings.EqualFold(trimmed, "sv31"):
		return Standard1800_2005, true
	case strings.EqualFold(trimmed, "latest"):
		return StandardMaximum, true
	case vamsAliasPattern.MatchString(trimmed):
		return StandardVAMS, true
	}
	for std, canon := range canonicalNames {
		if strings.EqualFold(trimmed, canon) {
			return std, true
		}
	}
	return 0, false
}

// BadStandardError is returned by LanguageStandard when the supplied name
// matches neither a canonical standard nor a known alias.
type BadStandardError struct {
	Input string
}

func (e *BadStandardError) Error() string {
	return fmt.Sprintf("vlang: bad standard %q", e.Input)
}

// Language holds one caller's active-standard state and the flattened
// keyword set derived from it. The package-level functions in language.go
// wrap a single default Language for callers who don't need re-entrancy.
type Language struct {
	mu        sync.RWMutex
	active    Standard
	flattened map[string]Standard
}

// NewLanguage returns a Language with the given standard active.
func NewLanguage(std Standard) *Language {
	l := &Language{}
	l.setLocked(std)
	return l
}

func (l *Language) setLocked(std Standard) {
	l.active = std
	flat := make(map[string]Standard)
	for _, anc := range std.ancestors() {
		table := keywordTables[anc]
		for sym, introduced := range table {
			if existing, ok := flat[sym]; !ok || introduced < existing {
				flat[sym] = introduced
			}
		}
	}
	l.flattened = flat
}

// SetStandard validates and sets the active standard, rebuilding the cached
// flattened keyword set, and returns the new active standard's canonical
// name. Process-global state (for callers using the package-level default
// Language) is left unchanged on error.
func (l *Language) SetStandard(name string) (string, error) {
	std, ok := parseStandard(name)
	if !ok {
		return "", &BadStandardError{Input: name}
	}
	l.mu.Lock()
	l.setLocked(std)
	result := l.active.String()
	l.mu.Unlock()
	return result, nil
}

// StandardName returns the active standard's canonical name without
// changing it.
func (l *Language) StandardName() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active.String()
}

// ActiveStandard returns the active Standard value.
func (l *Language) ActiveStandard() Standard {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// IsKeyword classifies sym against the flattened set for the active
// standard, returning the earliest introducing standard's canonical name.
func (l *Language) IsKeyword(sym string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	std, ok := l.flattened[sym]
	if !ok {
		return "", false
	}
	return std.String(), true
}

// LanguageKeywords returns a copy of the flattened sym->standard-name
// mapping for the given standard, or the active standard if none is given.
func (l *Language) LanguageKeywords(std ...Standard) map[string]string {
	var target Standard
	if len(std) > 0 {
		target = std[0]
	} else {
		target = l.ActiveStandard()
	}
	flat := make(map[string]Standard)
	for _, anc := range target.ancestors() {
		table := keywordTables[anc]
		for sym, introduced := range table {
			if existing, ok := flat[sym]; !ok || introduced < existing {
				flat[sym] = introduced
			}
		}
	}
	out := make(map[string]string, len(flat))
	for sym, introduced := range flat {
		out[sym] = introduced.String()
	}
	return out
}
