package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ibra/lachesis/internal/app"
	"github.com/ibra/lachesis/internal/output"
	"github.com/ibra/lachesis/internal/store"
)

var (
	listTag         string
	listToday       bool
	listDate        string
	listAllMachines bool
)

func init() {
	rootCmd.AddCommand(cmdList)
	cmdList.Flags().StringVarP(&listTag, "tag", "t", "", "Only show processes carrying this tag")
	cmdList.Flags().BoolVarP(&listToday, "today", "d", false, "Show today's usage instead of the all-time total")
	cmdList.Flags().StringVar(&listDate, "date", "", "Show usage for one date (YYYY-MM-DD)")
	cmdList.Flags().BoolVar(&listAllMachines, "all-machines", false, "Include every machine in the store")
}

var cmdList = &cobra.Command{
	Use:   "list",
	Short: "Show tracked process usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := app.ListParams{
			Tag:         listTag,
			Today:       listToday,
			Date:        listDate,
			AllMachines: listAllMachines,
		}
		res, err := controller().List(params)
		if err != nil {
			return err
		}

		renderList(os.Stdout, res, params)
		return nil
	},
}

func renderList(w io.Writer, res app.ListResult, params app.ListParams) {
	view := "Total Usage"
	switch {
	case params.Date != "":
		view = "Usage for " + params.Date
	case params.Today:
		view = fmt.Sprintf("Today's Usage (%s)", store.Today())
	}
	machines := ""
	if params.AllMachines {
		machines = fmt.Sprintf(" - All Machines (%d total)", res.Machines)
	}
	tagPart := ""
	if params.Tag != "" {
		tagPart = fmt.Sprintf(" - Tag: %s", params.Tag)
	}
	header := fmt.Sprintf("Tracked Window Usage%s (%s Mode, %s%s)", tagPart, res.Mode, view, machines)
	fmt.Fprintln(w, output.Header.Render(header))
	fmt.Fprintln(w)

	if len(res.Report.Rows) == 0 {
		fmt.Fprintln(w, output.Warn.Render("warning: no monitored windows"))
		return
	}

	for _, row := range res.Report.Rows {
		pct := float64(row.Usage) / float64(res.Report.MaxUsage) * 100
		tags := ""
		if len(row.Tags) > 0 {
			tags = " " + output.Tag.Render("["+strings.Join(row.Tags, ", ")+"]")
		}
		fmt.Fprintf(w, "%s %s %s %6.1f%%%s\n",
			output.Title.Render(fmt.Sprintf("%-40s", row.Title)),
			output.Bar(row.Usage, res.Report.MaxUsage),
			output.Time.Render(fmt.Sprintf("%12s", output.Uptime(row.Usage))),
			pct,
			tags,
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, output.Dim.Render(fmt.Sprintf("Total processes: %d", len(res.Report.Rows))))
}
