package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ibra/lachesis/internal/store"
)

// ParseDuration parses the "<days>d" retention syntax shared by delete and
// export, e.g. "7d" or "30d".
func ParseDuration(s string) (int64, error) {
	if !strings.HasSuffix(s, "d") {
		return 0, errors.New("duration must be in format like '7d', '30d', etc.")
	}
	days, err := strconv.ParseInt(strings.TrimSuffix(s, "d"), 10, 64)
	if err != nil {
		return 0, errors.New("invalid duration value")
	}
	if days <= 0 {
		return 0, errors.New("duration must be a positive number")
	}
	return days, nil
}

// DeleteAll clears every daily ledger on the current machine. Process
// identities and tags survive. Returns how many processes were touched.
func (a *App) DeleteAll() (int, error) {
	dir, s, machine, err := a.load()
	if err != nil {
		return 0, err
	}

	procs := s.MachineData[machine]
	for i := range procs {
		procs[i].DailyUsage = make(map[string]uint64)
	}

	if err := s.Save(dir); err != nil {
		return 0, fmt.Errorf("save store: %w", err)
	}
	return len(procs), nil
}

// DeleteOlderThan drops daily entries on the current machine dated
// strictly before the cutoff `days` days ago. Returns the dropped-entry
// count.
func (a *App) DeleteOlderThan(days int64) (int, error) {
	dir, s, machine, err := a.load()
	if err != nil {
		return 0, err
	}

	cutoff := store.CutoffDate(days)
	dropped := 0
	procs := s.MachineData[machine]
	for i := range procs {
		dropped += procs[i].DropBefore(cutoff)
	}

	if err := s.Save(dir); err != nil {
		return 0, fmt.Errorf("save store: %w", err)
	}
	return dropped, nil
}
