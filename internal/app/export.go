package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/ibra/lachesis/internal/store"
)

// ExportParams configures a snapshot export.
type ExportParams struct {
	// Output is the destination file path.
	Output string
	// Days limits the export to the last N days; 0 means all time.
	Days int64
	// AllMachines exports every machine's ledgers, not just this one's.
	AllMachines bool
}

// ExportResult summarizes what was written.
type ExportResult struct {
	Processes int
	Machines  int
	Total     uint64
}

// Export writes a pretty-printed JSON snapshot of the selected ledgers,
// ranked by total usage descending. Processes with no usage inside the
// window are left out.
func (a *App) Export(params ExportParams) (ExportResult, error) {
	var res ExportResult

	_, s, machine, err := a.load()
	if err != nil {
		return res, err
	}

	source := s.MachineProcesses(machine)
	if params.AllMachines {
		source = s.AllProcesses()
		res.Machines = len(s.MachineData)
	}

	var cutoff string
	if params.Days > 0 {
		cutoff = store.CutoffDate(params.Days)
	}

	exported := make([]store.Process, 0, len(source))
	for _, proc := range source {
		out := proc.Clone()
		if cutoff != "" {
			out.DropBefore(cutoff)
		}
		total := out.TotalUsage()
		if total == 0 {
			continue
		}
		exported = append(exported, out)
		res.Total += total
	}
	sort.SliceStable(exported, func(i, j int) bool {
		return exported[i].TotalUsage() > exported[j].TotalUsage()
	})

	data, err := json.MarshalIndent(exported, "", "  ")
	if err != nil {
		return res, err
	}
	if err := os.WriteFile(params.Output, data, 0o644); err != nil {
		return res, fmt.Errorf("write export: %w", err)
	}

	res.Processes = len(exported)
	return res, nil
}
