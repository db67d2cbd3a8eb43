package cmd

import (
	"time"

	"go.uber.org/dig"

	"github.com/CongL3/MobileDependecyManager/application"
	"github.com/CongL3/MobileDependecyManager/config"
	"github.com/CongL3/MobileDependecyManager/domain"
	"github.com/CongL3/MobileDependecyManager/infrastructure/remote"
)

// injectCheckService wires the check service and its collaborators
// through a DIG container.
func injectCheckService(cfg *config.Config) *application.CheckService {
	container := dig.New()

	if err := container.Provide(func() *config.Config { return cfg }); err != nil {
		panic(err)
	}
	if err := container.Provide(newRemoteLookup); err != nil {
		panic(err)
	}
	if err := container.Provide(newCheckService); err != nil {
		panic(err)
	}

	var service *application.CheckService
	if err := container.Invoke(func(s *application.CheckService) {
		service = s
	}); err != nil {
		panic(err)
	}

	return service
}

func newRemoteLookup(cfg *config.Config) domain.RemoteLookup {
	return remote.NewClient(cfg.Token, time.Duration(cfg.TimeoutSeconds)*time.Second)
}

func newCheckService(lookup domain.RemoteLookup, cfg *config.Config) *application.CheckService {
	return application.NewCheckService(lookup, cfg.Concurrency)
}
