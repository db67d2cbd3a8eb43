package cmd

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/CongL3/MobileDependecyManager/config"
)

var (
	// Global flags
	configPath string
	tokenFlag  string
	outputFlag string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "depcheck",
	Short: "Dependency version checker for GitHub-hosted packages",
	Long: `A CLI tool that checks whether pinned dependencies are current relative
to their GitHub repositories and writes a structured JSON report.

Two sources of pins are supported:
- a static dependency list declared in the config file ("check")
- a Swift Package Manager Package.resolved lockfile fetched from a
  project repository ("resolved")

Each dependency is resolved against the latest release, falling back to
the most recent tag, or against a branch head for branch-tracking pins.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetLevel(logger.DebugLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "GitHub token (overrides config and GITHUB_TOKEN)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Report file path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig resolves the config file, loads it, and applies flag and
// environment overrides. Environment reads stay here at the CLI
// boundary; the engine only ever sees explicit values.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no config file: %w", err)
		}
		path = found
	}
	logger.Debugf("using config file %q", path)

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if tokenFlag != "" {
		cfg.Token = tokenFlag
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv("GITHUB_TOKEN")
	}
	if cfg.Token == "" {
		logger.Warn("No GitHub token configured; rate limits will be low")
	}
	if outputFlag != "" {
		cfg.Output = outputFlag
	}

	return cfg, nil
}
