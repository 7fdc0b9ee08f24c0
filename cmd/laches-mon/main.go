package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ibra/lachesis/internal/config"
	"github.com/ibra/lachesis/internal/poller"
	"github.com/ibra/lachesis/internal/procs"
	"github.com/ibra/lachesis/internal/store"
)

func main() {
	storeDir := flag.String("store", "", "Store directory (default: the laches config directory)")
	interval := flag.Uint64("interval", 0, "Sampling interval in seconds (default: the store's update_interval)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	dir := *storeDir
	if dir == "" {
		var err error
		dir, err = config.EnsureDir()
		if err != nil {
			log.Fatal().Err(err).Msg("resolve store directory")
		}
	}

	s, err := store.Load(dir)
	if err != nil {
		log.Fatal().Err(err).Msg("load store")
	}
	machine, err := store.MachineID(dir)
	if err != nil {
		log.Fatal().Err(err).Msg("derive machine id")
	}

	seconds := *interval
	if seconds == 0 {
		seconds = s.UpdateInterval
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := &poller.Poller{
		Dir:      dir,
		Machine:  machine,
		Interval: time.Duration(seconds) * time.Second,
		Names:    procs.Names,
	}

	log.Info().Msgf("laches-mon started (pid %d, machine %s, interval %ds, store %s)",
		os.Getpid(), machine, seconds, dir)

	if err := p.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("poll loop failed")
	}
	log.Info().Msg("laches-mon stopped")
}
