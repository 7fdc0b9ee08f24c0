package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdStart)
}

var cmdStart = &cobra.Command{
	Use:   "start",
	Short: "Start the laches-mon poller in the background",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		res, err := ctrl.StartMonitor()
		if err != nil {
			return err
		}
		if res.Already {
			fmt.Fprintf(os.Stdout, "info: laches-mon is already running (pid %d)\n", res.PID)
			return nil
		}

		// Give the poller a moment to crash on startup before reporting
		// success.
		spin := spinner.New(spinner.CharSets[21], 120*time.Millisecond, spinner.WithWriter(os.Stdout))
		spin.Suffix = " starting laches-mon..."
		spin.Start()
		time.Sleep(time.Second)
		status, err := ctrl.Monitor()
		spin.Stop()
		if err != nil {
			return err
		}
		if !status.Running {
			return errors.New("laches-mon exited right after start, see laches-mon.log in the store directory")
		}

		fmt.Fprintf(os.Stdout, "info: started laches-mon (pid %d)\n", res.PID)
		return nil
	},
}
