package providers

import (
	"github.com/samber/do/v2"

	"github.com/foreskyapp/foresky-cli/internal/config"
	"github.com/foreskyapp/foresky-cli/internal/gateway"
	"github.com/foreskyapp/foresky-cli/internal/logger"
	"github.com/foreskyapp/foresky-cli/internal/session"
)

// ProvideGateway provides the remote API client, wired so that an
// expired-token failure on any call tears the session down.
func ProvideGateway(i do.Injector) (*gateway.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	store := do.MustInvoke[*StoreHandle](i)
	sess := do.MustInvoke[*session.Manager](i)

	clientID, err := store.ClientID()
	if err != nil {
		return nil, err
	}

	client, err := gateway.New(gateway.Config{
		BaseURL:  cfg.API.BaseURL,
		Timeout:  cfg.API.Timeout,
		RPS:      cfg.API.RPS,
		Burst:    cfg.API.Burst,
		ClientID: clientID,
	}, sess, log.Logger)
	if err != nil {
		return nil, err
	}

	client.SetAuthFailureHook(sess.HandleAuthFailure)
	return client, nil
}
