package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibra/lachesis/internal/app"
)

var rootCmd = &cobra.Command{
	Use:           "laches [command]",
	Short:         "laches: personal desktop activity tracker",
	Long:          `laches reports how long each process has been active on this machine, using the data laches-mon records in the background.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// controller builds the app facade; a var so command tests can redirect
// it at a temp store.
var controller = func() *app.App {
	return app.New(app.Options{})
}

// confirmInput is where confirmation prompts read from.
var confirmInput io.Reader = os.Stdin

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
