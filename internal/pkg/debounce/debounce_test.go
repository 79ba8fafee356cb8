package debounce_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokedex-api/internal/pkg/debounce"
)

func TestOnlyLastTriggerRuns(t *testing.T) {
	d := debounce.New(30 * time.Millisecond)

	var last atomic.Int64
	var runs atomic.Int64
	done := make(chan struct{}, 1)

	for i := int64(1); i <= 5; i++ {
		i := i
		d.Trigger(func() {
			last.Store(i)
			runs.Add(1)
			done <- struct{}{}
		})
		time.Sleep(2 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "debounced call never ran")
	}

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int64(5), last.Load())
	assert.Equal(t, int64(1), runs.Load())
}

func TestStopCancelsPending(t *testing.T) {
	d := debounce.New(20 * time.Millisecond)

	var ran atomic.Bool
	d.Trigger(func() { ran.Store(true) })

	assert.True(t, d.Stop())
	d.Trigger(func() { ran.Store(true) })

	time.Sleep(50 * time.Millisecond)
	assert.False(t, ran.Load())
	assert.False(t, d.Stop())
}

func TestZeroDelayRunsImmediately(t *testing.T) {
	d := debounce.New(0)
	done := make(chan struct{})

	d.Trigger(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("zero delay trigger did not run")
	}
}
