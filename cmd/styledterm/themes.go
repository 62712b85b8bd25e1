package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/styledterm/internal/theme"
)

func newThemesCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tPRIMARY\tTEXT\tBACKGROUND")
			for _, name := range theme.Names() {
				def, _ := theme.Preset(name)
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", name,
					def.Theme.String("primary"), def.Theme.String("text"), def.Theme.String("background"))
			}
			return writer.Flush()
		},
	}

	cmd.AddCommand(newThemeShowCmd(rootFlags))

	return cmd
}

// themeDocument is the YAML shape printed by "themes show".
type themeDocument struct {
	Name   string         `yaml:"name"`
	Tokens map[string]any `yaml:"tokens"`
	Ctx    map[string]any `yaml:"ctx,omitempty"`
	Root   map[string]any `yaml:"root,omitempty"`
}

func newThemeShowCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show [theme]",
		Short: "Print the resolved tokens of a theme as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			def := app.theme
			if len(args) == 1 {
				if def, err = theme.Load(args[0]); err != nil {
					return newCommandError("show theme", "loading theme "+args[0], err, "Run 'styledterm themes' to list the built-in themes.")
				}
			}

			out, err := yaml.Marshal(themeDocument{
				Name:   def.Name,
				Tokens: def.Theme,
				Ctx:    def.Ctx,
				Root:   def.Root,
			})
			if err != nil {
				return newCommandError("show theme", "encoding theme", err, "Report this theme as a bug.")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
