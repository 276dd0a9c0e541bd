package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/transitwatch/grtschedule/internal/config"
	"github.com/transitwatch/grtschedule/internal/logging"
)

// runtimeCfg is resolved before any command runs.
var runtimeCfg config.Config

var rootCmd = &cobra.Command{
	Use:   "grtschedule",
	Short: "GRT bus stop schedule on a watch-sized terminal UI",
	Long:  "grtschedule: pick a GRT stop number with a four-digit spinner and see the next buses for it.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("configuration: %w", err)
		}
		level, _ := logging.ParseLevel(cfg.LogLevel)
		if err := logging.Configure(cfg.LogFile, level); err != nil {
			return err
		}
		runtimeCfg = cfg
		logging.Info("starting", "command", cmd.Name(), "version", version)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig layers explicitly set flags over the environment and
// defaults, then validates the result.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Config{}, err
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
