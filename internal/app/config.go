package app

import (
	"github.com/ibra/lachesis/internal/store"
)

// MachineSummary is one machine's line in config output.
type MachineSummary struct {
	ID        string
	Processes int
	Total     uint64
}

// ConfigInfo aggregates everything `laches config show` renders.
type ConfigInfo struct {
	Dir       string
	MachineID string
	Autostart bool
	Interval  uint64
	Mode      store.Mode
	Machines  []MachineSummary
}

// ConfigShow collects the current configuration and per-machine totals.
func (a *App) ConfigShow() (ConfigInfo, error) {
	var info ConfigInfo

	dir, s, machine, err := a.load()
	if err != nil {
		return info, err
	}

	info.Dir = dir
	info.MachineID = machine
	info.Autostart = s.Autostart
	info.Interval = s.UpdateInterval
	info.Mode = s.Options.Mode

	for _, id := range s.Machines() {
		sum := MachineSummary{ID: id}
		for _, proc := range s.MachineData[id] {
			sum.Processes++
			sum.Total += proc.TotalUsage()
		}
		info.Machines = append(info.Machines, sum)
	}
	return info, nil
}
