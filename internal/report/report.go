// Package report turns raw store contents into the ranked usage view the
// list command and the TUI render.
package report

import (
	"sort"

	"github.com/ibra/lachesis/internal/pattern"
	"github.com/ibra/lachesis/internal/store"
)

// Params selects the slice of the ledger to report on. When Date is set it
// wins over Today; callers validate that both are not requested together.
type Params struct {
	Tag         string
	Today       bool
	Date        string
	AllMachines bool
}

// Row is one process line, with its usage under the selected view.
type Row struct {
	Title    string
	Usage    uint64
	Tags     []string
	LastSeen string
}

// Report is the finished view: filtered, zero-usage dropped, ranked by
// usage descending.
type Report struct {
	Rows []Row
	// MaxUsage is the largest row usage, never below 1 so bar scaling and
	// percentages stay well-defined.
	MaxUsage uint64
	// Total sums every row's usage.
	Total uint64
}

// Build assembles the report for one machine, or for every machine when
// params.AllMachines is set.
func Build(s *store.Store, machine string, params Params) Report {
	procs := s.MachineProcesses(machine)
	if params.AllMachines {
		procs = s.AllProcesses()
	}

	rows := make([]Row, 0, len(procs))
	for _, p := range procs {
		if !visible(p.Title, &s.Options) {
			continue
		}
		if params.Tag != "" && !p.HasTag(params.Tag) {
			continue
		}
		usage := displayUsage(&p, params)
		if usage == 0 {
			continue
		}
		rows = append(rows, Row{
			Title:    p.Title,
			Usage:    usage,
			Tags:     append([]string(nil), p.Tags...),
			LastSeen: p.LastSeen,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Usage > rows[j].Usage
	})

	rep := Report{Rows: rows, MaxUsage: 1}
	for _, row := range rows {
		rep.Total += row.Usage
		if row.Usage > rep.MaxUsage {
			rep.MaxUsage = row.Usage
		}
	}
	return rep
}

// visible applies the store's filter mode. Whitelist mode with no patterns
// configured hides everything; blacklist mode with none hides nothing.
func visible(title string, opts *store.ListOptions) bool {
	switch opts.Mode {
	case store.ModeWhitelist:
		return pattern.MatchesAny(title, opts.Whitelist)
	case store.ModeBlacklist:
		return !pattern.MatchesAny(title, opts.Blacklist)
	}
	return true
}

// displayUsage picks the usage figure for the requested view. Date wins
// over Today, otherwise the all-time total is shown.
func displayUsage(p *store.Process, params Params) uint64 {
	switch {
	case params.Date != "":
		return p.UsageOn(params.Date)
	case params.Today:
		return p.TodayUsage()
	default:
		return p.TotalUsage()
	}
}
