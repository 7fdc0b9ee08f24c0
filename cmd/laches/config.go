package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibra/lachesis/internal/store"
)

func init() {
	rootCmd.AddCommand(cmdConfig)
	cmdConfig.AddCommand(cmdConfigShow)
}

var cmdConfig = &cobra.Command{
	Use:   "config",
	Short: "Inspect laches configuration",
}

var cmdConfigShow = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration and per-machine totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := controller().ConfigShow()
		if err != nil {
			return err
		}

		mode := info.Mode.Label()
		if info.Mode == store.ModeDefault {
			mode = "none"
		}

		fmt.Fprintln(os.Stdout, "Configuration:")
		fmt.Fprintf(os.Stdout, "  Store path: %s\n", info.Dir)
		fmt.Fprintf(os.Stdout, "  Machine ID: %s\n", info.MachineID)
		fmt.Fprintf(os.Stdout, "  Autostart: %t\n", info.Autostart)
		fmt.Fprintf(os.Stdout, "  Update interval: %ds\n", info.Interval)
		fmt.Fprintf(os.Stdout, "  Filter mode: %s\n", mode)

		if len(info.Machines) > 0 {
			fmt.Fprintln(os.Stdout, "\nSynced machines:")
			for _, m := range info.Machines {
				fmt.Fprintf(os.Stdout, "  - %s (%d processes, %dh %dm tracked)\n",
					m.ID, m.Processes, m.Total/3600, (m.Total%3600)/60)
			}
		}
		return nil
	},
}
