package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styledterm/internal/gallery"
)

type renderOptions struct {
	all bool
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [screen]",
		Short: "Render a gallery screen under the configured theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "Render every screen")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions, args []string) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}
	defer app.close()

	screens := gallery.Screens()
	if !opts.all {
		screen, err := app.screen(cmd, args)
		if err != nil {
			return err
		}
		screens = []gallery.Screen{screen}
	}

	frame := app.frame(app.theme)
	for i, screen := range screens {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprintln(cmd.OutOrStdout(), frame.Render(cmd.Context(), screen))
	}
	return nil
}
