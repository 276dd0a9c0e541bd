package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/transitwatch/grtschedule/internal/app"
	"github.com/transitwatch/grtschedule/internal/screens/mainmenu"
)

const sourceURL = "github.com/transitwatch/grtschedule"

// runApp launches the TUI with the resolved configuration.
func runApp(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("grtschedule needs an interactive terminal; use `grtschedule stop <id>` for plain output")
	}

	return app.Run(app.Options{
		About: mainmenu.About{
			Version: version,
			Source:  sourceURL,
		},
		Width:  runtimeCfg.Width,
		Height: runtimeCfg.Height,
	})
}
