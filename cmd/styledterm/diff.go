package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styledterm/internal/theme"
	"github.com/alexisbeaulieu97/styledterm/pkg/diff"
)

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <theme> <theme> [screen]",
		Short: "Show how a screen's visible text changes between two themes",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, rootFlags, args)
		},
	}

	return cmd
}

func runDiff(cmd *cobra.Command, rootFlags *rootFlags, args []string) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}
	defer app.close()

	screen, err := app.screen(cmd, args[2:])
	if err != nil {
		return err
	}

	views := make([]string, 0, 2)
	for _, ref := range args[:2] {
		def, err := theme.Load(ref)
		if err != nil {
			return newCommandError("diff", "loading theme "+ref, err, "Run 'styledterm themes' to list the built-in themes.")
		}
		views = append(views, app.frame(def).Render(cmd.Context(), screen))
	}

	out := diff.Views(views[0], views[1], args[0]+"/"+screen.Name, args[1]+"/"+screen.Name)
	if out == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "No visible differences between %s and %s on %s.\n", args[0], args[1], screen.Name)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
