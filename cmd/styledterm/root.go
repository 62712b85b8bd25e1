package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styledterm/internal/config"
)

type rootFlags struct {
	configFile string
}

// settingFlags maps command-line flags to setting keys.
var settingFlags = map[string]string{
	"theme":        config.KeyTheme,
	"debug-styles": config.KeyDebugStyles,
	"log-level":    config.KeyLogLevel,
	"log-human":    config.KeyLogHuman,
	"width":        config.KeyWidth,
	"screen":       config.KeyScreen,
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "styledterm",
		Short:         "Theme-driven styled components for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configFile, "config", "c", "", "Settings file (default: ./styledterm.yaml or the user config directory)")
	pf.StringP("theme", "t", "", "Theme name or path to a theme file")
	pf.Bool("debug-styles", false, "Log the style stack of every styled component")
	pf.String("log-level", "", "Log level: trace, debug, info, warn, error or disabled")
	pf.Bool("log-human", true, "Write logs for humans instead of JSON")
	pf.Int("width", 0, "Render width in cells (0 uses the terminal width)")
	pf.StringP("screen", "s", "", "Gallery screen")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newKindsCmd())
	cmd.AddCommand(newPropsCmd())
	cmd.AddCommand(newSettingsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
