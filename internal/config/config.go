package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/transitwatch/grtschedule/internal/logging"
)

const (
	EnvLogFile  = "GRT_LOG_FILE"
	EnvLogLevel = "GRT_LOG_LEVEL"
	EnvWidth    = "GRT_WIDTH"
	EnvHeight   = "GRT_HEIGHT"
)

// Keys shared by viper, the cobra flags and (upper-cased, GRT_ prefixed) the
// environment.
const (
	KeyLogFile  = "log-file"
	KeyLogLevel = "log-level"
	KeyWidth    = "width"
	KeyHeight   = "height"

	keyStateHome = "state-home"
)

// Config captures runtime configuration for the application.
type Config struct {
	LogFile  string
	LogLevel string

	// Width and Height pin the watch face size in cells. Zero follows the
	// terminal size.
	Width  int
	Height int
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyLogFile, "", "Path to the log file (overrides "+EnvLogFile+")")
	fs.String(KeyLogLevel, "", "Log level: debug, info, warn, error (overrides "+EnvLogLevel+")")
	fs.Int(KeyWidth, 0, "Watch face width in cells (0 follows the terminal)")
	fs.Int(KeyHeight, 0, "Watch face height in cells (0 follows the terminal)")
}

// Load resolves configuration with flags set on the command line taking
// precedence over GRT_ environment variables, which take precedence over
// defaults. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyWidth, 0)
	v.SetDefault(KeyHeight, 0)

	v.SetEnvPrefix("GRT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(keyStateHome, "XDG_STATE_HOME"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	if fs != nil {
		for _, key := range []string{KeyLogFile, KeyLogLevel, KeyWidth, KeyHeight} {
			f := fs.Lookup(key)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", key, err)
			}
		}
	}

	width, err := cast.ToIntE(v.Get(KeyWidth))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyWidth, err)
	}
	height, err := cast.ToIntE(v.Get(KeyHeight))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyHeight, err)
	}

	logFile := v.GetString(KeyLogFile)
	if strings.TrimSpace(logFile) == "" {
		p, err := DefaultLogPath(v.GetString(keyStateHome))
		if err != nil {
			return Config{}, err
		}
		logFile = p
	}

	return Config{
		LogFile:  logFile,
		LogLevel: v.GetString(KeyLogLevel),
		Width:    width,
		Height:   height,
	}, nil
}

// Validate rejects values the program cannot run with.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.LogFile) == "" {
		return fmt.Errorf("log file must be set")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.Width)
	}
	if cfg.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.Height)
	}
	return nil
}

// DefaultLogPath resolves the log file path in priority order:
// 1. <stateHome>/grtschedule/grtschedule.log
// 2. ~/.local/state/grtschedule/grtschedule.log
func DefaultLogPath(stateHome string) (string, error) {
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "grtschedule", "grtschedule.log"), nil
}
