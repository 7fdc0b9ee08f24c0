// Package app exposes the high-level operations shared by the laches CLI
// and the TUI. Every operation loads the store fresh from disk, and only
// mutating operations write it back, so a read never clobbers concurrent
// poller writes.
package app

import (
	"fmt"

	"github.com/ibra/lachesis/internal/config"
	"github.com/ibra/lachesis/internal/store"
)

// App is the controller. Zero-configured it works against the default
// store directory.
type App struct {
	dir string
}

// Options configures the controller.
type Options struct {
	// Dir overrides the store directory. Empty means the laches default.
	Dir string
}

// New returns a controller for the given options.
func New(opts Options) *App {
	return &App{dir: opts.Dir}
}

// Dir resolves the store directory this controller works against.
func (a *App) Dir() (string, error) {
	if a.dir != "" {
		return a.dir, nil
	}
	return config.Dir()
}

// load resolves the directory, reads the store, and derives the machine
// identity. Most operations start here.
func (a *App) load() (string, *store.Store, string, error) {
	dir, err := a.Dir()
	if err != nil {
		return "", nil, "", err
	}
	s, err := store.Load(dir)
	if err != nil {
		return "", nil, "", fmt.Errorf("load store: %w", err)
	}
	machine, err := store.MachineID(dir)
	if err != nil {
		return "", nil, "", fmt.Errorf("derive machine id: %w", err)
	}
	return dir, s, machine, nil
}
