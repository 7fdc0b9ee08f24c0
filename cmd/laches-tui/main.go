package main

import (
	"flag"
	"log"

	"github.com/ibra/lachesis/internal/app"
	"github.com/ibra/lachesis/internal/tui"
)

func main() {
	storeDir := flag.String("store", "", "Path to the store directory")
	flag.Parse()

	controller := app.New(app.Options{Dir: *storeDir})
	dir, err := controller.Dir()
	if err != nil {
		log.Fatalf("tui exited with error: %v", err)
	}
	if err := tui.Run(controller, dir); err != nil {
		log.Fatalf("tui exited with error: %v", err)
	}
}
