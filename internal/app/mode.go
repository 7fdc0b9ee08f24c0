package app

import (
	"fmt"

	"github.com/ibra/lachesis/internal/store"
)

// SetMode parses the input and persists the new filter mode.
func (a *App) SetMode(input string) (store.Mode, error) {
	mode, err := store.ParseMode(input)
	if err != nil {
		return "", err
	}

	dir, s, _, err := a.load()
	if err != nil {
		return "", err
	}
	s.Options.Mode = mode
	if err := s.Save(dir); err != nil {
		return "", fmt.Errorf("save store: %w", err)
	}
	return mode, nil
}
