package providers

import (
	"github.com/samber/do/v2"

	"github.com/foreskyapp/foresky-cli/internal/config"
	"github.com/foreskyapp/foresky-cli/internal/gateway"
	"github.com/foreskyapp/foresky-cli/internal/logger"
	"github.com/foreskyapp/foresky-cli/internal/service"
)

// KeepAliveHandle wraps the keep-alive worker for lifecycle management.
// The worker only runs while a command is executing; Shutdown stops it.
type KeepAliveHandle struct {
	*service.KeepAlive
	started bool
}

// Shutdown implements do.Shutdownable.
func (h *KeepAliveHandle) Shutdown() error {
	if !h.started {
		return nil
	}
	return h.KeepAlive.Shutdown()
}

// ProvideKeepAlive provides the keep-alive worker, started when enabled.
func ProvideKeepAlive(i do.Injector) (*KeepAliveHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	gw := do.MustInvoke[*gateway.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	ka := service.NewKeepAlive(gw, cfg.KeepAlive.Interval, log.Logger)
	handle := &KeepAliveHandle{KeepAlive: ka}

	if cfg.KeepAlive.Enabled {
		ka.Start()
		handle.started = true
		log.Debug("keepalive started", "interval", cfg.KeepAlive.Interval)
	}

	return handle, nil
}
