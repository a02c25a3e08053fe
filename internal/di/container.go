// Package di provides dependency injection configuration for the ForeSky CLI.
package di

import (
	"github.com/samber/do/v2"

	"github.com/foreskyapp/foresky-cli/internal/config"
	"github.com/foreskyapp/foresky-cli/internal/di/providers"
	"github.com/foreskyapp/foresky-cli/internal/gateway"
	"github.com/foreskyapp/foresky-cli/internal/logger"
	"github.com/foreskyapp/foresky-cli/internal/service"
	"github.com/foreskyapp/foresky-cli/internal/session"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer(ov config.Overrides) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig(ov))
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideSlogLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Local state
	do.Provide(injector, providers.ProvideStateStore)
	do.Provide(injector, providers.ProvideSessionManager)

	// Remote gateway
	do.Provide(injector, providers.ProvideGateway)

	// Caches
	do.Provide(injector, providers.ProvideTagRegistry)
	do.Provide(injector, providers.ProvideNoteStore)
	do.Provide(injector, providers.ProvideDraftEditor)

	// Business services
	do.Provide(injector, providers.ProvideAuthService)
	do.Provide(injector, providers.ProvideTagService)
	do.Provide(injector, providers.ProvideNoteService)
	do.Provide(injector, providers.ProvideStatsService)

	// Workers
	do.Provide(injector, providers.ProvideKeepAlive)

	return injector
}

// Bootstrap triggers lazy initialization of the core services so that
// configuration or state-store problems surface before any command runs.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*session.Manager](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*gateway.Client](injector); err != nil {
		return err
	}

	// Business services
	_ = do.MustInvoke[*service.AuthService](injector)
	_ = do.MustInvoke[*service.TagService](injector)
	_ = do.MustInvoke[*service.NoteService](injector)
	_ = do.MustInvoke[*service.StatsService](injector)

	// Workers
	_ = do.MustInvoke[*providers.KeepAliveHandle](injector)

	return nil
}
