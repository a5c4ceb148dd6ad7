// Package filter narrows an assembled token list. Two independent filters
// compose in a fixed order: shell-style wildcard first, then regular
// expression. Both preserve token order and never add tokens.
package filter

import (
	"fmt"
	"path"
	"regexp"
)

// Wildcard keeps tokens whose full text matches a shell-style glob.
// Matching is case-sensitive. A malformed pattern is the caller's input
// error and is returned even when there are no tokens to test.
func Wildcard(tokens []string, pattern string) ([]string, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("wildcard pattern %q: %w", pattern, err)
	}
	var kept []string
	for _, tok := range tokens {
		if ok, _ := path.Match(pattern, tok); ok {
			kept = append(kept, tok)
		}
	}
	return kept, nil
}

// Regexp keeps tokens containing a match for expr, compiled once per
// call. The match is a search, not anchored.
func Regexp(tokens []string, expr string) ([]string, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("regex filter: %w", err)
	}
	var kept []string
	for _, tok := range tokens {
		if re.MatchString(tok) {
			kept = append(kept, tok)
		}
	}
	return kept, nil
}
