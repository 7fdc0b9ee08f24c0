package app

import (
	"fmt"

	"github.com/ibra/lachesis/internal/store"
)

// TagParams mirrors the tag command's flags. Add and Remove take
// comma-separated tag lists; List wins over both.
type TagParams struct {
	Process string
	Add     string
	Remove  string
	List    bool
}

// TagResult reports the mutations that actually happened plus the final
// tag set.
type TagResult struct {
	Tags    []string
	Added   []string
	Removed []string
}

// Tag inspects or edits one process's tags on the current machine.
func (a *App) Tag(params TagParams) (TagResult, error) {
	var res TagResult

	dir, s, machine, err := a.load()
	if err != nil {
		return res, err
	}

	proc := s.FindProcess(machine, params.Process)
	if proc == nil {
		return res, fmt.Errorf("process '%s' not found", params.Process)
	}

	if params.List {
		res.Tags = append([]string(nil), proc.Tags...)
		return res, nil
	}

	for _, tag := range store.SplitTags(params.Add) {
		if proc.AddTag(tag) {
			res.Added = append(res.Added, tag)
		}
	}
	for _, tag := range store.SplitTags(params.Remove) {
		if proc.RemoveTag(tag) {
			res.Removed = append(res.Removed, tag)
		}
	}
	res.Tags = append([]string(nil), proc.Tags...)

	if err := s.Save(dir); err != nil {
		return res, fmt.Errorf("save store: %w", err)
	}
	return res, nil
}
