package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/cdown/internal/config"
	"github.com/hammamikhairi/cdown/internal/display"
)

type rootFlags struct {
	configPath string
	listColors bool
	noSound    bool
	verbose    bool
	quiet      bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "cdown [DURATION]",
		Short: "Simple TUI countdown timer",
		Long: `Simple TUI countdown timer.

DURATION accepts values like 90, 45s, 3min, "1h 30m" or 2days.
When omitted, defaults.duration from the config file is used (3min).

Hotkeys:
` + display.KeyHelp(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.listColors {
				printColors(cmd.OutOrStdout())
				return nil
			}

			cfg, err := config.Load(f.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			if f.noSound {
				cfg.Sound.Enabled = false
			}
			if f.verbose {
				cfg.Log.Level = "verbose"
			}
			if f.quiet {
				cfg.Log.Level = "off"
			}

			input := cfg.Defaults.Duration
			if len(args) == 1 {
				input = args[0]
			}
			return run(cmd.Context(), input, cfg)
		},
	}

	fl := cmd.Flags()
	fl.BoolP("border", "b", false, "display a box border around the timer")
	fl.StringP("color", "c", display.DefaultColor, "set the foreground color")
	fl.BoolP("progress", "p", false, "show an elapsed-time progress bar")
	fl.String("sound-file", "", "WAV file to play on completion instead of the beeps")
	fl.String("log-file", "", "file to write logs to (\"stderr\" for console)")
	fl.BoolVarP(&f.listColors, "list-colors", "l", false, "print the list of available colors")
	fl.BoolVar(&f.noSound, "no-sound", false, "do not play a sound on completion")
	fl.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/cdown/config.yaml)")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose/debug logging")
	fl.BoolVarP(&f.quiet, "quiet", "q", false, "disable all logging")

	return cmd
}

func printColors(w io.Writer) {
	fmt.Fprintln(w, "Available colors are:")
	for _, name := range display.ColorNames() {
		fmt.Fprintf(w, "  - %s\n", name)
	}
	fmt.Fprintf(w, "Hex values such as %s are accepted too.\n", color.CyanString("#ff8800"))
}
