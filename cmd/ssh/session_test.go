package main

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeTrackerUpdates(t *testing.T) {
	s := newSizeTracker(80, 24)

	w, h, err := s.getSize()
	assert.NoError(t, err)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.update(100+n, 30)
			_, _, _ = s.getSize()
		}(i)
	}
	wg.Wait()

	s.update(120, 40)
	w, h, _ = s.getSize()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}

func TestShutdownWithoutSessions(t *testing.T) {
	h := &gameHandler{}
	h.shutdown()
	assert.Error(t, h.baseContext().Err())
}

func TestShutdownWaitsForGamesAndRejectsNewOnes(t *testing.T) {
	h := &gameHandler{}
	require.True(t, h.track())

	done := make(chan struct{})
	go func() {
		h.shutdown()
		close(done)
	}()

	// The running game sees its context cancelled and returns.
	<-h.baseContext().Done()
	assert.Eventually(t, func() bool { return !h.track() }, time.Second, time.Millisecond)

	select {
	case <-done:
		t.Fatal("shutdown returned while a game was still running")
	default:
	}

	h.wg.Done()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("shutdown did not return")
	}
}
