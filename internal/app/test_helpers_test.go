package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ibra/lachesis/internal/store"
)

const testMachine = "testhost_0000"

// newTestApp returns a controller rooted in a temp store directory with a
// pinned machine identity.
func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "machine_id"), []byte(testMachine+"\n"), 0o600); err != nil {
		t.Fatalf("write machine id: %v", err)
	}
	return New(Options{Dir: dir}), dir
}

// seed loads the store, applies mutate, and saves it back.
func seed(t *testing.T, dir string, mutate func(*store.Store)) {
	t.Helper()
	s, err := store.Load(dir)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	mutate(s)
	if err := s.Save(dir); err != nil {
		t.Fatalf("save store: %v", err)
	}
}

// reload reads the store back for assertions.
func reload(t *testing.T, dir string) *store.Store {
	t.Helper()
	s, err := store.Load(dir)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return s
}

// stubMonitor replaces the process-control seams for one test.
func stubMonitor(t *testing.T, alive bool, spawnPID int, spawnErr error) *monitorStub {
	t.Helper()
	stub := &monitorStub{}
	processAlive = func(pid int) bool { return alive }
	terminateProcess = func(pid int) error {
		stub.terminated = append(stub.terminated, pid)
		return nil
	}
	spawnMonitor = func(path, dir string) (int, error) {
		stub.spawned = append(stub.spawned, path)
		return spawnPID, spawnErr
	}
	t.Cleanup(resetMonitorSeams)
	return stub
}

type monitorStub struct {
	spawned    []string
	terminated []int
}

// stubExecutable points currentExecutable at a fake laches binary with a
// fake laches-mon sibling, and returns the sibling's path.
func stubExecutable(t *testing.T) string {
	t.Helper()
	binDir := t.TempDir()
	exe := filepath.Join(binDir, "laches")
	mon := filepath.Join(binDir, monitorName)
	for _, path := range []string{exe, mon} {
		if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	currentExecutable = func() (string, error) { return exe, nil }
	t.Cleanup(resetMonitorSeams)
	return mon
}
