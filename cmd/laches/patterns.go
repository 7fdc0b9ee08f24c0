package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibra/lachesis/internal/app"
	"github.com/ibra/lachesis/internal/output"
	"github.com/ibra/lachesis/internal/pattern"
	"github.com/ibra/lachesis/internal/store"
)

// previewCap limits how many matching titles a regex preview prints.
const previewCap = 10

func init() {
	rootCmd.AddCommand(newPatternCommand(store.KindWhitelist))
	rootCmd.AddCommand(newPatternCommand(store.KindBlacklist))
}

// newPatternCommand builds the whitelist/blacklist command tree. The two
// lists share every behavior except their name.
func newPatternCommand(kind store.ListKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(kind),
		Short: fmt.Sprintf("Manage the %s patterns", kind),
	}

	var addRegex bool
	add := &cobra.Command{
		Use:   "add <pattern>",
		Short: fmt.Sprintf("Add a process or pattern to the %s", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatternAdd(kind, args[0], addRegex)
		},
	}
	add.Flags().BoolVarP(&addRegex, "regex", "r", false, "Treat the pattern as a regular expression")

	remove := &cobra.Command{
		Use:   "remove <pattern>",
		Short: fmt.Sprintf("Remove an entry from the %s", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := controller().RemovePattern(app.PatternParams{Kind: kind, Pattern: args[0]}); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, output.OK.Render(fmt.Sprintf("✓ Removed '%s' from %s", args[0], kind)))
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("Show the %s patterns", kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatternList(kind)
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: fmt.Sprintf("Remove every pattern from the %s", kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatternClear(kind)
		},
	}

	cmd.AddCommand(add, remove, list, clear)
	return cmd
}

func runPatternAdd(kind store.ListKind, pat string, isRegex bool) error {
	ctrl := controller()

	if isRegex {
		matches, err := ctrl.PatternPreview(pat)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, output.Header.Render(fmt.Sprintf("Regex pattern '%s' will match:", pat)))
		if len(matches) == 0 {
			fmt.Fprintln(os.Stdout, output.Dim.Render("  → No currently tracked processes"))
			fmt.Fprintln(os.Stdout, output.Dim.Render("    (pattern will apply to future processes)"))
		} else {
			shown := matches
			if len(shown) > previewCap {
				shown = shown[:previewCap]
			}
			for _, title := range shown {
				fmt.Fprintf(os.Stdout, "  %s %s\n", output.OK.Render("→"), output.Title.Render(title))
			}
			if rest := len(matches) - previewCap; rest > 0 {
				fmt.Fprintln(os.Stdout, output.Dim.Render(fmt.Sprintf("    ... and %d more", rest)))
			}
		}
		fmt.Fprintln(os.Stdout)
		if !output.Confirm(confirmInput, os.Stdout, fmt.Sprintf("add this regex pattern to the %s? [y/N]", kind)) {
			fmt.Fprintln(os.Stdout, "info: aborted operation")
			return nil
		}
	}

	added, err := ctrl.AddPattern(app.PatternParams{Kind: kind, Pattern: pat})
	if err != nil {
		return err
	}
	if !added {
		fmt.Fprintln(os.Stdout, output.Warn.Render(fmt.Sprintf("info: '%s' is already in the %s", pat, kind)))
		return nil
	}

	what := "process"
	if isRegex {
		what = "regex pattern"
	}
	fmt.Fprintln(os.Stdout, output.OK.Render(fmt.Sprintf("✓ Added %s '%s' to %s", what, pat, kind)))
	return nil
}

func runPatternList(kind store.ListKind) error {
	patterns, err := controller().Patterns(kind)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, output.Header.Render(fmt.Sprintf("%s Patterns:", kind.Title())))
	fmt.Fprintln(os.Stdout)
	if len(patterns) == 0 {
		fmt.Fprintln(os.Stdout, output.Dim.Render(fmt.Sprintf("  No patterns in %s", kind)))
		return nil
	}

	for i, p := range patterns {
		annotation := ""
		if pattern.LooksLikeRegex(p) {
			annotation = " " + output.Warn.Render("[regex]")
		}
		fmt.Fprintf(os.Stdout, "  %d. %s%s\n", i+1, p, annotation)
	}
	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, output.Dim.Render(fmt.Sprintf("  Total: %d pattern(s)", len(patterns))))
	return nil
}

func runPatternClear(kind store.ListKind) error {
	ctrl := controller()
	patterns, err := ctrl.Patterns(kind)
	if err != nil {
		return err
	}
	if len(patterns) == 0 {
		fmt.Fprintln(os.Stdout, output.Warn.Render(fmt.Sprintf("info: %s is already empty", kind)))
		return nil
	}

	prompt := fmt.Sprintf("are you sure you want to clear all %d pattern(s) from the %s? [y/N]", len(patterns), kind)
	if !output.Confirm(confirmInput, os.Stdout, prompt) {
		fmt.Fprintln(os.Stdout, "info: aborted operation")
		return nil
	}

	n, err := ctrl.ClearPatterns(kind)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, output.OK.Render(fmt.Sprintf("✓ Cleared %d pattern(s) from %s", n, kind)))
	return nil
}
