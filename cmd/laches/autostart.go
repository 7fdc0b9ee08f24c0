package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdAutostart)
}

var cmdAutostart = &cobra.Command{
	Use:   "autostart <yes|no>",
	Short: "Run laches-mon automatically at login",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("invalid option for autostart. Use 'yes' or 'no'.")
		}

		var enable bool
		switch args[0] {
		case "yes":
			enable = true
		case "no":
			enable = false
		default:
			return errors.New("invalid option for autostart. Use 'yes' or 'no'.")
		}

		changed, err := controller().SetAutostart(enable)
		if err != nil {
			return err
		}

		switch {
		case enable && changed:
			fmt.Fprintln(os.Stdout, "info: enabled laches-mon to run at startup.")
		case enable && !changed:
			fmt.Fprintln(os.Stdout, "info: autostart is already enabled.")
		case !enable && changed:
			fmt.Fprintln(os.Stdout, "info: disabled laches-mon from running at startup.")
		default:
			fmt.Fprintln(os.Stdout, "info: autostart is already disabled.")
		}
		return nil
	},
}
