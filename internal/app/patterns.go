package app

import (
	"fmt"

	"github.com/ibra/lachesis/internal/pattern"
	"github.com/ibra/lachesis/internal/store"
)

// PatternParams identifies one whitelist or blacklist mutation.
type PatternParams struct {
	Kind    store.ListKind
	Pattern string
}

// AddPattern appends the pattern to the list. Reports false without error
// when it was already present.
func (a *App) AddPattern(params PatternParams) (bool, error) {
	dir, s, _, err := a.load()
	if err != nil {
		return false, err
	}
	if !s.Options.AddPattern(params.Kind, params.Pattern) {
		return false, nil
	}
	if err := s.Save(dir); err != nil {
		return false, fmt.Errorf("save store: %w", err)
	}
	return true, nil
}

// RemovePattern removes an exact pattern from the list.
func (a *App) RemovePattern(params PatternParams) error {
	dir, s, _, err := a.load()
	if err != nil {
		return err
	}
	if err := s.Options.RemovePattern(params.Kind, params.Pattern); err != nil {
		return err
	}
	if err := s.Save(dir); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	return nil
}

// Patterns returns the configured list. Nil means never configured.
func (a *App) Patterns(kind store.ListKind) ([]string, error) {
	_, s, _, err := a.load()
	if err != nil {
		return nil, err
	}
	return append([]string(nil), s.Options.Patterns(kind)...), nil
}

// ClearPatterns drops the whole list, returning how many patterns it held.
func (a *App) ClearPatterns(kind store.ListKind) (int, error) {
	dir, s, _, err := a.load()
	if err != nil {
		return 0, err
	}
	n := s.Options.ClearPatterns(kind)
	if n == 0 {
		return 0, nil
	}
	if err := s.Save(dir); err != nil {
		return 0, fmt.Errorf("save store: %w", err)
	}
	return n, nil
}

// PatternPreview compiles expr and returns the currently tracked titles on
// this machine it would match. A malformed expression is an error.
func (a *App) PatternPreview(expr string) ([]string, error) {
	re, err := pattern.Compile(expr)
	if err != nil {
		return nil, err
	}
	_, s, machine, err := a.load()
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, proc := range s.MachineProcesses(machine) {
		if re.MatchString(proc.Title) {
			matches = append(matches, proc.Title)
		}
	}
	return matches, nil
}
