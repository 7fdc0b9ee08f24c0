package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdMode)
}

var cmdMode = &cobra.Command{
	Use:   "mode <whitelist|blacklist|default>",
	Short: "Set the display filter mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := controller().SetMode(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "info: mode set to: %s\n", mode.Label())
		return nil
	},
}
