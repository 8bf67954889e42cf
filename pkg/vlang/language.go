package vlang

// defaultLanguage is the process-wide active-standard state backing the
// package-level convenience functions below. Callers that need re-entrancy
// across goroutines mutating the standard concurrently should construct
// their own *Language instead.
var defaultLanguage = NewLanguage(Standard1800_2017)

// LanguageStandard gets or sets the process-wide active standard. With no
// argument it returns the current standard's canonical name unchanged. With
// one argument it validates and sets the new standard, rebuilds the cached
// flattened keyword set, and returns the normalized canonical name.
func LanguageStandard(name ...string) (string, error) {
	if len(name) == 0 {
		return defaultLanguage.StandardName(), nil
	}
	return defaultLanguage.SetStandard(name[0])
}

// LanguageMaximum returns the canonical name of the numerically greatest
// IEEE 1800 standard supported.
func LanguageMaximum() string {
	return StandardMaximum.String()
}

// IsKeyword classifies sym against the flattened keyword set for the
// process-wide active standard.
func IsKeyword(sym string) (string, bool) {
	return defaultLanguage.IsKeyword(sym)
}

// LanguageKeywords returns the flattened sym->standard-name mapping for the
// given standard name, or the active standard if none is given.
func LanguageKeywords(name ...string) (map[string]string, error) {
	if len(name) == 0 {
		return defaultLanguage.LanguageKeywords(), nil
	}
	std, ok := parseStandard(name[0])
	if !ok {
		return nil, &BadStandardError{Input: name[0]}
	}
	return defaultLanguage.LanguageKeywords(std), nil
}
