package service

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// KeepAlive pings the API at a fixed interval to keep the hosted
// backend from spinning down while the client is in use. The ping is
// fire-and-forget: the data model never changes and failures are never
// surfaced to the user.
type KeepAlive struct {
	gw       Gateway
	interval time.Duration
	logger   *slog.Logger

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// NewKeepAlive creates a keep-alive worker.
func NewKeepAlive(gw Gateway, interval time.Duration, logger *slog.Logger) *KeepAlive {
	return &KeepAlive{
		gw:       gw,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start launches the ticker loop. Calling Start more than once is a
// programming error.
func (k *KeepAlive) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	k.cancel = cancel

	go func() {
		defer close(k.done)
		ticker := time.NewTicker(k.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := k.gw.Ping(ctx); err != nil {
					k.logger.Debug("keepalive ping failed", "error", err)
				}
			}
		}
	}()
}

// Stop halts the ticker loop and waits for it to exit.
func (k *KeepAlive) Stop() {
	k.stopOnce.Do(func() {
		if k.cancel == nil {
			close(k.done)
			return
		}
		k.cancel()
		<-k.done
	})
}

// Shutdown implements the container's shutdown contract.
func (k *KeepAlive) Shutdown() error {
	k.Stop()
	return nil
}
