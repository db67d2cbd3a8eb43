package cmd

import (
	"context"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/CongL3/MobileDependecyManager/application"
	"github.com/CongL3/MobileDependecyManager/config"
	"github.com/CongL3/MobileDependecyManager/domain"
	"github.com/CongL3/MobileDependecyManager/infrastructure/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the statically declared dependency list",
	Long: `Checks every dependency declared under "dependencies" in the config
file against GitHub and writes the report to the configured output path.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if validateErr := cfg.ValidateStatic(); validateErr != nil {
			return validateErr
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		service := injectCheckService(cfg)
		result, err := service.Run(ctx, toRefs(cfg.Dependencies), application.ProjectMeta{})
		if err != nil {
			return err
		}

		return emit(cfg, result)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// toRefs maps static config entries onto engine inputs, preserving order.
func toRefs(deps []config.DependencyConfig) []domain.DependencyRef {
	refs := make([]domain.DependencyRef, 0, len(deps))
	for _, dep := range deps {
		refs = append(refs, domain.DependencyRef{
			Name:        dep.Name,
			SourceURL:   dep.URL,
			DeclaredPin: dep.Current,
		})
	}
	return refs
}

// emit writes the report file and logs the summary.
func emit(cfg *config.Config, result *domain.Report) error {
	if err := report.Write(cfg.Output, result); err != nil {
		return err
	}
	logger.Infof("Results written to %s", cfg.Output)

	logger.Info("Summary:")
	for _, line := range report.SummaryLines(result) {
		logger.Infof("  %s", line)
	}

	if result.Summarize().Errors > 0 {
		logger.Warn("Some dependencies encountered errors; review the notes in the report")
	}
	return nil
}
