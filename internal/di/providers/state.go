package providers

import (
	"github.com/samber/do/v2"

	"github.com/foreskyapp/foresky-cli/internal/config"
	"github.com/foreskyapp/foresky-cli/internal/logger"
	"github.com/foreskyapp/foresky-cli/internal/session"
	"github.com/foreskyapp/foresky-cli/internal/state"
)

// StoreHandle wraps the state store with shutdown capability.
type StoreHandle struct {
	*state.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStateStore provides the persistent local state store.
func ProvideStateStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	db, err := state.Open(cfg.StatePath(), log.Logger)
	if err != nil {
		return nil, err
	}

	log.Debug("state store opened", "path", cfg.StatePath())
	return &StoreHandle{Store: db}, nil
}

// ProvideSessionManager provides the session manager, seeded from the
// persisted token.
func ProvideSessionManager(i do.Injector) (*session.Manager, error) {
	store := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return session.NewManager(store.Store, log.Logger), nil
}
