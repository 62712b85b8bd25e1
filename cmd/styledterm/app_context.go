package main

import (
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/styledterm/internal/config"
	"github.com/alexisbeaulieu97/styledterm/internal/gallery"
	"github.com/alexisbeaulieu97/styledterm/internal/inspect"
	"github.com/alexisbeaulieu97/styledterm/internal/logger"
	"github.com/alexisbeaulieu97/styledterm/internal/theme"
)

const defaultWidth = 80

// appContext bundles the services a command needs, built from the settings.
type appContext struct {
	viper     *viper.Viper
	settings  *config.Settings
	log       *logger.Logger
	inspector *inspect.Inspector
	theme     theme.Definition
	width     int
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	v := config.New(flags.configFile)
	for name, key := range settingFlags {
		if f := cmd.Flags().Lookup(name); f != nil {
			lo.Must0(v.BindPFlag(key, f))
		}
	}

	settings, err := config.Load(v)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading settings", err, "Check the settings file and STYLEDTERM_* environment variables.")
	}

	log, err := logger.New(logger.Options{
		Level:         settings.LogLevel,
		HumanReadable: settings.LogHuman,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Use one of trace, debug, info, warn, error or disabled.")
	}

	def, err := theme.Load(settings.Theme)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading theme", err, "Run 'styledterm themes' to list the built-in themes.")
	}

	width := settings.Width
	if width == 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	log.WithFields(map[string]any{"theme": def.Name, "width": width}).Debug("settings loaded")

	return &appContext{
		viper:     v,
		settings:  settings,
		log:       log,
		inspector: inspect.New(log),
		theme:     def,
		width:     width,
	}, nil
}

// frame returns a gallery frame for def with the configured width and
// debug styles.
func (a *appContext) frame(def theme.Definition) gallery.Frame {
	return gallery.Frame{
		Theme:     def,
		Inspector: a.inspector,
		Width:     a.width,
		Debug:     a.settings.DebugStyles,
	}
}

// screen resolves a screen argument, falling back to the configured screen.
func (a *appContext) screen(cmd *cobra.Command, args []string) (gallery.Screen, error) {
	name := a.settings.Screen
	if len(args) > 0 {
		name = args[0]
	}
	screen, err := gallery.Lookup(name)
	if err != nil {
		return gallery.Screen{}, newCommandError(cmd.Name(), "finding screen", err, "Run 'styledterm render --all' to see every screen.")
	}
	return screen, nil
}

// close logs what the inspector saw during the command.
func (a *appContext) close() {
	stats := a.inspector.Stats()
	a.log.WithFields(map[string]any{"stacks": stats.Stacks, "issues": stats.Issues}).Debug("style inspection finished")
}

func terminalWidth(out io.Writer) int {
	file, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
