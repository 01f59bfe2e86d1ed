// Package cli implements the gef-cpt CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/gef-cpt/internal/config"
	"github.com/rcliao/gef-cpt/internal/cpt"
	"github.com/rcliao/gef-cpt/internal/logging"
	"github.com/rcliao/gef-cpt/internal/model"
	"github.com/rcliao/gef-cpt/internal/source"
)

var (
	formatFlag   string
	logLevelFlag string
	workersFlag  int

	settings *config.Config
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:               "gef-cpt",
	Short:             "Read GEF cone penetration test files",
	Long:              "Parse GEF CPT soundings into depth profiles of cone resistance, sleeve friction, friction ratio and pore pressure.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: json, yaml or text (default: $GEFCPT_OUTPUT_FORMAT or json)")
	RootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error (default: $GEFCPT_LOG_LEVEL or info)")
	RootCmd.PersistentFlags().IntVarP(&workersFlag, "workers", "w", 0, "Concurrent parses in batch mode (default: $GEFCPT_WORKERS or 4)")
}

// loadSettings merges environment configuration with flags and sets up
// logging.
func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.OutputFormat = formatFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}
	if flags.Changed("workers") {
		cfg.Workers = workersFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	settings = cfg
	return nil
}

// readProfile loads and parses one named file.
func readProfile(path string) (model.Profile, error) {
	data, err := source.ReadFile(path, settings.MaxFileSize)
	if err != nil {
		return model.Profile{}, fmt.Errorf("read file: %w", err)
	}
	return cpt.ParseFile(path, data)
}
