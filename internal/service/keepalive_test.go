package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeepAlivePingsOnInterval(t *testing.T) {
	var pings atomic.Int32
	gw := &fakeGateway{
		pingFn: func() error {
			pings.Add(1)
			return nil
		},
	}

	ka := NewKeepAlive(gw, 5*time.Millisecond, discardLogger())
	ka.Start()

	assert.Eventually(t, func() bool {
		return pings.Load() >= 2
	}, time.Second, time.Millisecond)

	ka.Stop()
	settled := pings.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, pings.Load(), "no pings after Stop")
}

func TestKeepAliveStopIsIdempotent(t *testing.T) {
	ka := NewKeepAlive(&fakeGateway{}, time.Hour, discardLogger())
	ka.Start()

	ka.Stop()
	ka.Stop()
	assert.NoError(t, ka.Shutdown())
}

func TestKeepAliveStopWithoutStart(t *testing.T) {
	ka := NewKeepAlive(&fakeGateway{}, time.Hour, discardLogger())
	ka.Stop()
}
