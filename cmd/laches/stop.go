package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibra/lachesis/internal/output"
)

func init() {
	rootCmd.AddCommand(cmdStop)
}

var cmdStop = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running laches-mon poller",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		status, err := ctrl.Monitor()
		if err != nil {
			return err
		}
		if !status.Running {
			return errors.New("laches-mon is not running")
		}

		if !output.Confirm(confirmInput, os.Stdout, "are you sure you want to stop laches-mon? [y/N]") {
			fmt.Fprintln(os.Stdout, "info: aborted stop operation")
			return nil
		}

		pid, err := ctrl.StopMonitor()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "info: stopped laches-mon (pid %d)\n", pid)
		return nil
	},
}
