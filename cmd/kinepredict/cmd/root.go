package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kinepredict/kinepredict/internal/config"
	"github.com/kinepredict/kinepredict/internal/demo"
	"github.com/kinepredict/kinepredict/internal/logger"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:           "kinepredict",
	Short:         "Demo driver for the kinepredict data structures",
	Long:          "Runs keyword lookup, duplicate detection and ranking scenarios over marketing copy.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Error("kinepredict failed", "err", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(trieCmd)
	rootCmd.AddCommand(bloomCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(pipelineCmd)
	rootCmd.AddCommand(allCmd)
}

// newRunner loads the configuration and builds a demo runner logging at the
// configured level, or debug when --debug is set.
func newRunner(prefix string) (*demo.Runner, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	level := logger.ParseLevel(cfg.Log.Level)
	if debug {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	return demo.NewRunner(cfg, logger.New(prefix)), nil
}
