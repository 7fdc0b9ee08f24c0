// Package store owns the laches data model: one JSON document holding
// per-machine, per-process, per-day usage plus daemon and filter state.
// The CLI and the poller share it through the filesystem with no locking;
// whole-file atomic rewrites keep readers from ever seeing a torn write.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// StoreName is the store document's file name inside the config directory.
const StoreName = "store.json"

// DefaultInterval is the poller sampling interval in seconds.
const DefaultInterval = 5

// Store is the whole persisted document.
type Store struct {
	DaemonPID      int                  `json:"daemon_pid"`
	Autostart      bool                 `json:"autostart"`
	UpdateInterval uint64               `json:"update_interval"`
	MachineData    map[string][]Process `json:"machine_data"`
	Options        ListOptions          `json:"process_list_options"`
}

// Default returns a fresh store with no recorded usage.
func Default() *Store {
	return &Store{
		Autostart:      true,
		UpdateInterval: DefaultInterval,
		MachineData:    make(map[string][]Process),
		Options:        ListOptions{Mode: ModeDefault},
	}
}

// Load reads the store document from dir, creating it with defaults on
// first use. A file that exists but cannot be parsed is an error, never
// silently replaced.
func Load(dir string) (*Store, error) {
	path := filepath.Join(dir, StoreName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s := Default()
			if err := s.Save(dir); err != nil {
				return nil, err
			}
			return s, nil
		}
		return nil, err
	}

	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	s.normalize()
	return &s, nil
}

// Save writes the document to dir atomically: marshal, write a sibling
// temp file, rename over the real one.
func (s *Store) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	path := filepath.Join(dir, StoreName)
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Reset deletes the store document and recreates it with defaults.
func Reset(dir string) (*Store, error) {
	path := filepath.Join(dir, StoreName)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return Load(dir)
}

// normalize repairs gaps left by older or hand-edited documents so the
// rest of the code never sees nil maps or unknown modes.
func (s *Store) normalize() {
	if s.UpdateInterval == 0 {
		s.UpdateInterval = DefaultInterval
	}
	if s.MachineData == nil {
		s.MachineData = make(map[string][]Process)
	}
	for _, procs := range s.MachineData {
		for i := range procs {
			if procs[i].DailyUsage == nil {
				procs[i].DailyUsage = make(map[string]uint64)
			}
			if procs[i].Tags == nil {
				procs[i].Tags = []string{}
			}
			if procs[i].LastSeen == "" {
				procs[i].LastSeen = Today()
			}
		}
	}
	s.Options.normalize()
}

// Machines returns the known machine ids in sorted order.
func (s *Store) Machines() []string {
	ids := make([]string, 0, len(s.MachineData))
	for id := range s.MachineData {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MachineProcesses returns the given machine's process list. The slice is
// shared with the store; callers that mutate entries must Save after.
func (s *Store) MachineProcesses(machine string) []Process {
	return s.MachineData[machine]
}

// AllProcesses concatenates every machine's processes in sorted machine
// order. Processes tracked on several machines appear once per machine.
func (s *Store) AllProcesses() []Process {
	var all []Process
	for _, id := range s.Machines() {
		all = append(all, s.MachineData[id]...)
	}
	return all
}

// FindProcess returns a pointer into the machine's list for the process
// with the given title, or nil if absent.
func (s *Store) FindProcess(machine, title string) *Process {
	procs := s.MachineData[machine]
	for i := range procs {
		if procs[i].Title == title {
			return &procs[i]
		}
	}
	return nil
}

// EnsureProcess finds the process by title on the machine, creating it if
// missing. The returned pointer is valid until the list next grows.
func (s *Store) EnsureProcess(machine, title string) *Process {
	if p := s.FindProcess(machine, title); p != nil {
		return p
	}
	if s.MachineData == nil {
		s.MachineData = make(map[string][]Process)
	}
	s.MachineData[machine] = append(s.MachineData[machine], NewProcess(title))
	procs := s.MachineData[machine]
	return &procs[len(procs)-1]
}
