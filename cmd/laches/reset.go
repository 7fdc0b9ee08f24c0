package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibra/lachesis/internal/output"
)

func init() {
	rootCmd.AddCommand(cmdReset)
}

var cmdReset = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the store and start from defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !output.Confirm(confirmInput, os.Stdout, "are you sure you want to wipe the current store? [y/N]") {
			fmt.Fprintln(os.Stdout, "info: aborted reset operation")
			return nil
		}
		if err := controller().Reset(); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "info: created default configuration file")
		return nil
	},
}
