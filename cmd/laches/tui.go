package main

import (
	"github.com/spf13/cobra"

	"github.com/ibra/lachesis/internal/tui"
)

func init() {
	rootCmd.AddCommand(cmdTui)
}

var cmdTui = &cobra.Command{
	Use:   "tui",
	Short: "Open the live usage dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		dir, err := ctrl.Dir()
		if err != nil {
			return err
		}
		return tui.Run(ctrl, dir)
	},
}
