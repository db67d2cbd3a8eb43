package cmd

import (
	"context"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/CongL3/MobileDependecyManager/application"
)

var (
	projectURLFlag string
	projectRefFlag string
)

var resolvedCmd = &cobra.Command{
	Use:   "resolved",
	Short: "Check the pins of a project's Package.resolved lockfile",
	Long: `Fetches the Package.resolved file from the configured project
repository, normalizes its pins (both the v1 and v2 lockfile schemas),
and checks each one against GitHub.

A failure to fetch or parse the lockfile aborts the whole run; failures
for individual dependencies are contained to their report entries.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if projectURLFlag != "" {
			cfg.Project.URL = projectURLFlag
		}
		if projectRefFlag != "" {
			cfg.Project.Ref = projectRefFlag
		}
		if validateErr := cfg.ValidateProject(); validateErr != nil {
			return validateErr
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		meta := application.ProjectMeta{
			URL:          cfg.Project.URL,
			Ref:          cfg.Project.Ref,
			LockfilePath: cfg.Project.ResolvedPath,
		}

		service := injectCheckService(cfg)
		deps, err := service.LoadProjectDependencies(ctx, meta)
		if err != nil {
			return err
		}
		if len(deps) == 0 {
			logger.Info("No dependencies found in the lockfile")
		}

		result, err := service.Run(ctx, deps, meta)
		if err != nil {
			return err
		}

		return emit(cfg, result)
	},
}

func init() {
	resolvedCmd.Flags().StringVar(&projectURLFlag, "project-url", "", "Project repository URL (overrides config)")
	resolvedCmd.Flags().StringVar(&projectRefFlag, "project-ref", "", "Project ref to fetch the lockfile at (overrides config)")
	rootCmd.AddCommand(resolvedCmd)
}
