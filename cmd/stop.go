package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/transitwatch/grtschedule/internal/screens/stopdetails"
)

const (
	defaultStopWidth = 32
	maxStopID        = 9999
)

var stopCmd = &cobra.Command{
	Use:   "stop <id>",
	Short: "Print the details screen for a stop without starting the UI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseStopID(args[0])
		if err != nil {
			return err
		}

		width := runtimeCfg.Width
		if width == 0 {
			width = defaultStopWidth
		}

		details := stopdetails.New(id)
		details.Window().Load()
		defer details.Destroy()

		_, err = lipgloss.Fprintln(cmd.OutOrStdout(), details.View(width, runtimeCfg.Height))
		return err
	},
}

// parseStopID accepts decimal stop numbers in [0, 9999].
func parseStopID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid stop id %q: %w", s, err)
	}
	if id < 0 || id > maxStopID {
		return 0, fmt.Errorf("stop id %d out of range 0-%d", id, maxStopID)
	}
	return id, nil
}
