package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibra/lachesis/internal/app"
	"github.com/ibra/lachesis/internal/output"
	"github.com/ibra/lachesis/internal/store"
)

var (
	deleteAll      bool
	deleteDuration string
)

func init() {
	rootCmd.AddCommand(cmdDelete)
	cmdDelete.Flags().BoolVar(&deleteAll, "all", false, "Delete all recorded time on this machine")
	cmdDelete.Flags().StringVar(&deleteDuration, "duration", "", "Delete records older than this, e.g. '30d'")
}

var cmdDelete = &cobra.Command{
	Use:   "delete",
	Short: "Delete recorded usage data",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case !deleteAll && deleteDuration == "":
			return errors.New("must specify either --all or --duration")
		case deleteAll && deleteDuration != "":
			return errors.New("cannot specify both --all and --duration")
		case deleteAll:
			return runDeleteAll()
		default:
			return runDeleteOlder(deleteDuration)
		}
	},
}

func runDeleteAll() error {
	if !output.Confirm(confirmInput, os.Stdout, "are you sure you want to delete all recorded time? [y/N]") {
		fmt.Fprintln(os.Stdout, "info: aborted delete operation")
		return nil
	}
	n, err := controller().DeleteAll()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "info: deleted all recorded time from %d process(es)\n", n)
	return nil
}

func runDeleteOlder(duration string) error {
	days, err := app.ParseDuration(duration)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("are you sure you want to delete data older than %d days (before %s)? [y/N]",
		days, store.CutoffDate(days))
	if !output.Confirm(confirmInput, os.Stdout, prompt) {
		fmt.Fprintln(os.Stdout, "info: aborted delete operation")
		return nil
	}

	dropped, err := controller().DeleteOlderThan(days)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "info: deleted %d daily record(s) older than %d days\n", dropped, days)
	return nil
}
