// Package poller implements the sampling loop behind laches-mon: every
// interval it reloads the store, credits each live process with the
// interval, and writes the store back.
package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ibra/lachesis/internal/store"
)

// Poller accumulates live process time into the shared store file.
type Poller struct {
	Dir      string
	Machine  string
	Interval time.Duration
	// Names enumerates currently running process names.
	Names func(context.Context) ([]string, error)
}

// Run ticks until ctx is cancelled. The store is reloaded on every tick,
// so CLI edits land between samples; a tick failure stops the loop.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := p.Tick(ctx)
			if err != nil {
				return err
			}
			log.Debug().Msgf("tick: credited %d processes", n)
		}
	}
}

// Tick runs one read-sample-write cycle and reports how many processes
// were credited.
func (p *Poller) Tick(ctx context.Context) (int, error) {
	s, err := store.Load(p.Dir)
	if err != nil {
		return 0, fmt.Errorf("load store: %w", err)
	}

	names, err := p.Names(ctx)
	if err != nil {
		return 0, fmt.Errorf("enumerate processes: %w", err)
	}

	seconds := uint64(p.Interval / time.Second)
	for _, name := range names {
		s.EnsureProcess(p.Machine, name).AddTime(seconds)
	}

	if err := s.Save(p.Dir); err != nil {
		return 0, fmt.Errorf("save store: %w", err)
	}
	return len(names), nil
}
