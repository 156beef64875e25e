package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_Resyncs(t *testing.T) {
	feed := mocks.NewMockResyncer(t)
	log := newTestLogger(t)

	s := New(feed, 50*time.Millisecond, log)

	feed.EXPECT().Resync(mock.Anything).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(feed.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	feed := mocks.NewMockResyncer(t)
	log := newTestLogger(t)

	s := New(feed, 50*time.Millisecond, log)

	feed.EXPECT().Resync(mock.Anything).Return(errors.New("ping listener: connection refused"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(feed.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	feed := mocks.NewMockResyncer(t)
	log := newTestLogger(t)

	s := New(feed, time.Second, log)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	feed := mocks.NewMockResyncer(t)
	log := newTestLogger(t)

	s := New(feed, 30*time.Millisecond, log)

	feed.EXPECT().Resync(mock.Anything).Return(nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(feed.Calls), 3)
}
