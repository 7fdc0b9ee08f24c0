package app

import (
	"fmt"

	"github.com/ibra/lachesis/internal/store"
)

// Reset wipes the store file and recreates it with defaults. Confirmation
// is the caller's job.
func (a *App) Reset() error {
	dir, err := a.Dir()
	if err != nil {
		return err
	}
	if _, err := store.Reset(dir); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	return nil
}
