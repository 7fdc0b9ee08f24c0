// Package procs enumerates the names of currently running processes.
package procs

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Names returns the de-duplicated names of every running process, in
// first-seen order. Processes whose name is blank or cannot be read (it
// may have exited mid-scan, or belong to another user) are skipped.
func Names(ctx context.Context) ([]string, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(procs))
	seen := make(map[string]struct{}, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}
