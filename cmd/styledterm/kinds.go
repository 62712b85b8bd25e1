package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styledterm/internal/styled"
	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the component kinds that can be styled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "KIND\tCOMPONENT")
			for _, kind := range styled.Kinds() {
				base, _ := styled.BaseFor(kind)
				fmt.Fprintf(writer, "%s\t%s\n", kind, components.NameOf(base))
			}
			return writer.Flush()
		},
	}
}

func newPropsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "props",
		Short: "List the style properties the renderer understands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "PROPERTY\tVALUE")
			for _, name := range components.KnownProperties() {
				kind, _ := components.PropertyKindOf(name)
				fmt.Fprintf(writer, "%s\t%s\n", name, kind)
			}
			return writer.Flush()
		},
	}
}
