package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_DuplicateIsRejected(t *testing.T) {
	var g gate
	started := make(chan struct{})
	release := make(chan struct{})
	writes := 0

	first := make(chan error, 1)
	go func() {
		first <- g.do(func() error {
			writes++
			close(started)
			<-release
			return nil
		}, "join", "e1", "u1")
	}()
	<-started

	second := make(chan error, 1)
	go func() {
		second <- g.do(func() error {
			writes++
			return nil
		}, "join", "e1", "u1")
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)

	require.NoError(t, <-first)
	assert.ErrorIs(t, <-second, domain.ErrActionInFlight)
	assert.Equal(t, 1, writes)
}

func TestGate_DifferentKeysRunIndependently(t *testing.T) {
	var g gate

	require.NoError(t, g.do(func() error { return nil }, "join", "e1", "u1"))
	require.NoError(t, g.do(func() error { return nil }, "join", "e1", "u2"))

	boom := errors.New("boom")
	assert.ErrorIs(t, g.do(func() error { return boom }, "join", "e1", "u1"), boom)
}
