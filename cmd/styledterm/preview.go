package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styledterm/internal/theme"
	"github.com/alexisbeaulieu97/styledterm/internal/tui"
)

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the gallery interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rootFlags)
		},
	}

	return cmd
}

func runPreview(cmd *cobra.Command, rootFlags *rootFlags) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}
	defer app.close()

	model, err := tui.NewModel(tui.Options{
		Themes:    previewThemes(app.theme),
		Screen:    app.settings.Screen,
		Debug:     app.settings.DebugStyles,
		Inspector: app.inspector,
	})
	if err != nil {
		return newCommandError("preview", "starting preview", err, "Check the configured screen name.")
	}

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		return newCommandError("preview", "running preview", err, "Run the preview in an interactive terminal.")
	}
	return nil
}

// previewThemes puts the configured theme first, followed by the other presets.
func previewThemes(first theme.Definition) []theme.Definition {
	others := lo.FilterMap(theme.Names(), func(name string, _ int) (theme.Definition, bool) {
		if name == first.Name {
			return theme.Definition{}, false
		}
		return theme.Preset(name)
	})
	return append([]theme.Definition{first}, others...)
}
