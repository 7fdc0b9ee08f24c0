package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/ibra/lachesis/internal/report"
	"github.com/ibra/lachesis/internal/store"
)

// ListParams mirrors the list command's flags.
type ListParams struct {
	Tag         string
	Today       bool
	Date        string
	AllMachines bool
}

// ListResult carries everything the list renderer needs.
type ListResult struct {
	Mode     store.Mode
	Machines int
	Report   report.Report
}

// List builds the usage report. Requesting both a date and today is
// rejected here rather than silently resolved.
func (a *App) List(params ListParams) (ListResult, error) {
	var res ListResult

	if params.Date != "" && params.Today {
		return res, errors.New("cannot specify both --date and --today")
	}
	if params.Date != "" {
		if _, err := time.Parse(store.DateLayout, params.Date); err != nil {
			return res, fmt.Errorf("invalid date '%s' (expected YYYY-MM-DD)", params.Date)
		}
	}

	_, s, machine, err := a.load()
	if err != nil {
		return res, err
	}

	res.Mode = s.Options.Mode
	res.Machines = len(s.MachineData)
	res.Report = report.Build(s, machine, report.Params{
		Tag:         params.Tag,
		Today:       params.Today,
		Date:        params.Date,
		AllMachines: params.AllMachines,
	})
	return res, nil
}
