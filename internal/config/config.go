// Package config resolves where laches keeps its on-disk state.
package config

import (
	"errors"
	"os"
	"path/filepath"
)

// EnvDir overrides the store directory when set. Used by tests and by
// anyone who wants the store somewhere other than the user config dir.
const EnvDir = "LACHES_DIR"

const appDirName = "lachesis"

// Dir returns the directory holding the store file and the machine id.
// Precedence: LACHES_DIR, then <user config dir>/lachesis.
func Dir() (string, error) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.New("failed to get configuration directory")
	}
	return filepath.Join(base, appDirName), nil
}

// EnsureDir resolves the store directory and creates it if missing.
func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
