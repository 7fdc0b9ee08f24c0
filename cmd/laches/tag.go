package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ibra/lachesis/internal/app"
)

var (
	tagAdd    string
	tagRemove string
	tagList   bool
)

func init() {
	rootCmd.AddCommand(cmdTag)
	cmdTag.Flags().StringVarP(&tagAdd, "add", "a", "", "Comma-separated tags to add")
	cmdTag.Flags().StringVarP(&tagRemove, "remove", "r", "", "Comma-separated tags to remove")
	cmdTag.Flags().BoolVarP(&tagList, "list", "l", false, "List the process's tags")
}

var cmdTag = &cobra.Command{
	Use:   "tag <process>",
	Short: "Inspect or edit a tracked process's tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		process := args[0]
		res, err := controller().Tag(app.TagParams{
			Process: process,
			Add:     tagAdd,
			Remove:  tagRemove,
			List:    tagList,
		})
		if err != nil {
			return err
		}

		if tagList {
			if len(res.Tags) == 0 {
				fmt.Fprintf(os.Stdout, "Process '%s' has no tags\n", process)
			} else {
				fmt.Fprintf(os.Stdout, "Tags for '%s': %s\n", process, strings.Join(res.Tags, ", "))
			}
			return nil
		}

		for _, tag := range res.Added {
			fmt.Fprintf(os.Stdout, "Added tag '%s' to '%s'\n", tag, process)
		}
		for _, tag := range res.Removed {
			fmt.Fprintf(os.Stdout, "Removed tag '%s' from '%s'\n", tag, process)
		}
		return nil
	},
}
