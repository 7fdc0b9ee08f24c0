// Package pattern matches process names against whitelist/blacklist entries.
package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchesAny reports whether name matches any entry. An entry matches on
// exact string equality first, then as a regular expression matched
// anywhere in the name. Entries that fail to compile never match and are
// not reported; validation happens when patterns are added, not here.
func MatchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if p == name {
			return true
		}
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Compile validates expr as a regular expression, surfacing the failure to
// the caller. Used on the add path so bad patterns are rejected loudly.
func Compile(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %v", err)
	}
	return re, nil
}

// LooksLikeRegex reports whether the pattern contains regex metacharacters.
// A dot does not count, plain executable names like "firefox.exe" are not
// regexes. Display-only: pattern listings annotate such entries.
func LooksLikeRegex(p string) bool {
	return strings.ContainsAny(p, `*+?[]()|^$\{}`)
}
