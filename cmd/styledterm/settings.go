package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styledterm/internal/config"
)

func newSettingsCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Show every setting with its environment variable and current value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			if used := app.viper.ConfigFileUsed(); used != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Settings file: %s\n\n", used)
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "KEY\tENV\tVALUE\tDESCRIPTION")
			for _, field := range config.Fields {
				fmt.Fprintf(writer, "%s\t%s\t%v\t%s\n", field.Key, field.Env(), app.viper.Get(field.Key), field.Description)
			}
			return writer.Flush()
		},
	}
}
