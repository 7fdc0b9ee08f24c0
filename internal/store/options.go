package store

import (
	"fmt"
	"strings"
)

// Mode selects how tracked processes are filtered before display.
type Mode string

// Stored capitalized so existing store files keep their meaning.
const (
	ModeWhitelist Mode = "Whitelist"
	ModeBlacklist Mode = "Blacklist"
	ModeDefault   Mode = "Default"
)

// ParseMode maps user input onto a Mode, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "whitelist":
		return ModeWhitelist, nil
	case "blacklist":
		return ModeBlacklist, nil
	case "default":
		return ModeDefault, nil
	}
	return "", fmt.Errorf("no match found for mode: '%s'", s)
}

// Label returns the lowercase form used in info messages.
func (m Mode) Label() string {
	return strings.ToLower(string(m))
}

// ListKind names one of the two pattern lists.
type ListKind string

const (
	KindWhitelist ListKind = "whitelist"
	KindBlacklist ListKind = "blacklist"
)

// Title returns the capitalized form used in report headers.
func (k ListKind) Title() string {
	switch k {
	case KindWhitelist:
		return "Whitelist"
	case KindBlacklist:
		return "Blacklist"
	}
	return string(k)
}

// ListOptions holds the display filter configuration. A nil pattern list
// means the list was never configured, which filters differently from an
// explicitly empty one.
type ListOptions struct {
	Mode      Mode     `json:"mode"`
	Whitelist []string `json:"whitelist"`
	Blacklist []string `json:"blacklist"`
	Tags      []string `json:"tags"`
}

// Patterns returns the pattern list of the given kind.
func (o *ListOptions) Patterns(kind ListKind) []string {
	if kind == KindWhitelist {
		return o.Whitelist
	}
	return o.Blacklist
}

func (o *ListOptions) setPatterns(kind ListKind, patterns []string) {
	if kind == KindWhitelist {
		o.Whitelist = patterns
	} else {
		o.Blacklist = patterns
	}
}

// AddPattern appends pattern to the list unless already present. Reports
// whether it was added.
func (o *ListOptions) AddPattern(kind ListKind, pattern string) bool {
	patterns := o.Patterns(kind)
	for _, p := range patterns {
		if p == pattern {
			return false
		}
	}
	o.setPatterns(kind, append(patterns, pattern))
	return true
}

// RemovePattern removes an exact pattern. An emptied list collapses back to
// unconfigured. The error distinguishes a missing pattern from a list that
// was never configured.
func (o *ListOptions) RemovePattern(kind ListKind, pattern string) error {
	patterns := o.Patterns(kind)
	if patterns == nil {
		return fmt.Errorf("%s is empty", kind)
	}
	for i, p := range patterns {
		if p == pattern {
			patterns = append(patterns[:i], patterns[i+1:]...)
			if len(patterns) == 0 {
				patterns = nil
			}
			o.setPatterns(kind, patterns)
			return nil
		}
	}
	return fmt.Errorf("'%s' not found in %s", pattern, kind)
}

// ClearPatterns drops the whole list, returning how many patterns it held.
func (o *ListOptions) ClearPatterns(kind ListKind) int {
	n := len(o.Patterns(kind))
	o.setPatterns(kind, nil)
	return n
}

func (o *ListOptions) normalize() {
	switch o.Mode {
	case ModeWhitelist, ModeBlacklist, ModeDefault:
	default:
		o.Mode = ModeDefault
	}
}
