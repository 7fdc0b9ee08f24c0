package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/ibra/lachesis/internal/store"
)

// monitorName is the poller binary, expected beside the laches executable.
const monitorName = "laches-mon"

// monitorLogName is the file the spawned poller's output is appended to,
// inside the store directory.
const monitorLogName = "laches-mon.log"

// Seams for tests: process control is stubbed out in _test files.
var (
	currentExecutable = os.Executable
	processAlive      = defaultProcessAlive
	terminateProcess  = defaultTerminateProcess
	spawnMonitor      = defaultSpawnMonitor
)

func resetMonitorSeams() {
	currentExecutable = os.Executable
	processAlive = defaultProcessAlive
	terminateProcess = defaultTerminateProcess
	spawnMonitor = defaultSpawnMonitor
}

func defaultProcessAlive(pid int) bool {
	ok, err := process.PidExists(int32(pid))
	return err == nil && ok
}

func defaultTerminateProcess(pid int) error {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return err
	}
	return p.Terminate()
}

// defaultSpawnMonitor starts the poller detached, its output appended to
// the log file in the store directory.
func defaultSpawnMonitor(path, dir string) (int, error) {
	logFile, err := os.OpenFile(filepath.Join(dir, monitorLogName),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return 0, err
	}
	defer logFile.Close()

	cmd := exec.Command(path, "-store", dir)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return pid, err
	}
	return pid, nil
}

// MonitorStatus reports the recorded poller state.
type MonitorStatus struct {
	Running bool
	PID     int
}

// StartResult reports a StartMonitor outcome.
type StartResult struct {
	PID int
	// Already is set when a live poller was found and nothing was spawned.
	Already bool
}

// monitorExecutable locates the poller binary next to the running one.
func monitorExecutable() (string, error) {
	exe, err := currentExecutable()
	if err != nil {
		return "", err
	}
	name := monitorName
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	path := filepath.Join(filepath.Dir(exe), name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("laches-mon executable not found at: %s", path)
	}
	return path, nil
}

// StartMonitor spawns the poller detached and records its pid in the
// store. A live recorded pid short-circuits into Already.
func (a *App) StartMonitor() (StartResult, error) {
	var res StartResult

	dir, s, _, err := a.load()
	if err != nil {
		return res, err
	}

	if s.DaemonPID > 0 && processAlive(s.DaemonPID) {
		return StartResult{PID: s.DaemonPID, Already: true}, nil
	}

	path, err := monitorExecutable()
	if err != nil {
		return res, err
	}
	pid, err := spawnMonitor(path, dir)
	if err != nil {
		return res, fmt.Errorf("start laches-mon: %w", err)
	}

	s.DaemonPID = pid
	if err := s.Save(dir); err != nil {
		return res, fmt.Errorf("save store: %w", err)
	}
	return StartResult{PID: pid}, nil
}

// StopMonitor terminates the recorded poller and zeroes the pid. Returns
// the pid that was stopped.
func (a *App) StopMonitor() (int, error) {
	dir, s, _, err := a.load()
	if err != nil {
		return 0, err
	}

	pid := s.DaemonPID
	if pid <= 0 || !processAlive(pid) {
		return 0, errors.New("laches-mon is not running")
	}
	if err := terminateProcess(pid); err != nil {
		return 0, fmt.Errorf("stop laches-mon: %w", err)
	}

	s.DaemonPID = 0
	if err := s.Save(dir); err != nil {
		return 0, fmt.Errorf("save store: %w", err)
	}
	return pid, nil
}

// Monitor reports whether the recorded poller pid is alive right now. A
// recorded pid whose process is gone reads as not running.
func (a *App) Monitor() (MonitorStatus, error) {
	_, s, _, err := a.load()
	if err != nil {
		return MonitorStatus{}, err
	}
	if s.DaemonPID > 0 && processAlive(s.DaemonPID) {
		return MonitorStatus{Running: true, PID: s.DaemonPID}, nil
	}
	return MonitorStatus{}, nil
}
