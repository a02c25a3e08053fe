// Package providers contains dependency injection providers for the ForeSky CLI.
package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/foreskyapp/foresky-cli/internal/config"
	"github.com/foreskyapp/foresky-cli/internal/logger"
	"github.com/foreskyapp/foresky-cli/internal/validation"
)

// ProvideConfig builds the configuration provider with the given
// command-line overrides baked in.
func ProvideConfig(ov config.Overrides) func(do.Injector) (*config.Config, error) {
	return func(i do.Injector) (*config.Config, error) {
		return config.Load(ov)
	}
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Debug("starting ForeSky CLI",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"api_url", cfg.API.BaseURL,
	)

	return log, nil
}

// ProvideSlogLogger provides access to the underlying slog.Logger for packages that need it.
func ProvideSlogLogger(i do.Injector) (*slog.Logger, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return log.Logger, nil
}

// ProvideValidator provides the input validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}
