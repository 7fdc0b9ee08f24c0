package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibra/lachesis/internal/app"
	"github.com/ibra/lachesis/internal/output"
)

var (
	exportDuration    string
	exportAllMachines bool
)

func init() {
	rootCmd.AddCommand(cmdExport)
	cmdExport.Flags().StringVar(&exportDuration, "duration", "", "Only export records from this window, e.g. '7d'")
	cmdExport.Flags().BoolVar(&exportAllMachines, "all-machines", false, "Export every machine's data")
}

var cmdExport = &cobra.Command{
	Use:   "export <file>",
	Short: "Export usage data as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var days int64
		if exportDuration != "" {
			var err error
			days, err = app.ParseDuration(exportDuration)
			if err != nil {
				return err
			}
		}

		res, err := controller().Export(app.ExportParams{
			Output:      args[0],
			Days:        days,
			AllMachines: exportAllMachines,
		})
		if err != nil {
			return err
		}

		window := " (all time)"
		if exportDuration != "" {
			window = fmt.Sprintf(" (past %s)", exportDuration)
		}
		machines := ""
		if exportAllMachines {
			machines = fmt.Sprintf(" from %d machine(s)", res.Machines)
		}
		fmt.Fprintln(os.Stdout, output.OK.Render(fmt.Sprintf("✓ Exported %d process(es)%s%s to '%s'",
			res.Processes, window, machines, args[0])))
		fmt.Fprintln(os.Stdout, output.Dim.Render("  Total tracked time: "+output.Uptime(res.Total)))
		return nil
	},
}
