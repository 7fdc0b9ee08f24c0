package app

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestSetAutostartWritesAndRemovesArtifact(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("exercises the XDG autostart path")
	}
	a, dir := newTestApp(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	mon := stubExecutable(t)

	changed, err := a.SetAutostart(true)
	if err != nil {
		t.Fatalf("SetAutostart(true): %v", err)
	}
	if !changed {
		t.Fatal("enabling from scratch should report a change")
	}

	artifact, err := autostartArtifact()
	if err != nil {
		t.Fatalf("autostartArtifact: %v", err)
	}
	data, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	entry := string(data)
	if !strings.Contains(entry, "Exec="+mon+" -store "+dir) {
		t.Fatalf("artifact does not launch the poller against the store:\n%s", entry)
	}
	if !reload(t, dir).Autostart {
		t.Fatal("store autostart flag should be true")
	}

	changed, err = a.SetAutostart(true)
	if err != nil {
		t.Fatalf("SetAutostart(true) again: %v", err)
	}
	if changed {
		t.Fatal("enabling twice should be a no-op")
	}

	changed, err = a.SetAutostart(false)
	if err != nil {
		t.Fatalf("SetAutostart(false): %v", err)
	}
	if !changed {
		t.Fatal("disabling should report a change")
	}
	if _, err := os.Stat(artifact); !os.IsNotExist(err) {
		t.Fatal("artifact should be removed")
	}
	if reload(t, dir).Autostart {
		t.Fatal("store autostart flag should be false")
	}
}

func TestSetAutostartRequiresMonitorBinary(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("exercises the XDG autostart path")
	}
	a, _ := newTestApp(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	exe := filepath.Join(t.TempDir(), "laches")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}
	currentExecutable = func() (string, error) { return exe, nil }
	t.Cleanup(resetMonitorSeams)

	_, err := a.SetAutostart(true)
	if err == nil || !strings.HasPrefix(err.Error(), "laches-mon executable not found at: ") {
		t.Fatalf("unexpected error: %v", err)
	}
}
