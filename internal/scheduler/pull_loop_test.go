package scheduler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/meta-sync-agent/internal/config"
)

func testPullLoop() *PullLoop {
	store := config.NewStoreWith(&config.Config{
		Poll: config.Poll{
			PullInitialSeconds: 5,
			PullMaxSeconds:     300,
		},
	})

	return NewPullLoop(store, "teste", func() error { return nil })
}

func TestNextDelayDoublesOnConsecutiveFailures(t *testing.T) {
	loop := testPullLoop()
	pullErr := errors.New("crm indisponível")

	assert.Equal(t, 10*time.Second, loop.nextDelay(pullErr))
	assert.Equal(t, 20*time.Second, loop.nextDelay(pullErr))
	assert.Equal(t, 40*time.Second, loop.nextDelay(pullErr))
}

func TestNextDelaySaturatesAtMax(t *testing.T) {
	loop := testPullLoop()
	pullErr := errors.New("crm indisponível")

	var delay time.Duration
	for i := 0; i < 20; i++ {
		delay = loop.nextDelay(pullErr)
		assert.LessOrEqual(t, delay, 300*time.Second)
	}

	assert.Equal(t, 300*time.Second, delay)
	assert.Equal(t, 300*time.Second, loop.nextDelay(pullErr))
}

func TestNextDelayResetsOnSuccess(t *testing.T) {
	loop := testPullLoop()
	pullErr := errors.New("crm indisponível")

	loop.nextDelay(pullErr)
	loop.nextDelay(pullErr)
	loop.nextDelay(pullErr)

	assert.Equal(t, 5*time.Second, loop.nextDelay(nil))

	// A escala de falhas recomeça do dobro do intervalo inicial
	assert.Equal(t, 10*time.Second, loop.nextDelay(pullErr))
}
