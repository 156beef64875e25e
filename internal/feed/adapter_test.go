package feed

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type update struct {
	scope string
	items []string
}

// store is an in-memory remote collection keyed by scope.
type store struct {
	mu   sync.Mutex
	data map[string][]string
}

func (s *store) set(scope string, items ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[scope] = items
}

func (s *store) load(_ context.Context, scope string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.data[scope]...), nil
}

func newAdapter(t *testing.T, b *Broker, load Loader[string]) (*Adapter[string], chan update) {
	t.Helper()
	updates := make(chan update, 16)
	a := NewAdapter(CollectionGuestlist, b, load, newTestLogger(t),
		WithOnChange(func(scope string, items []string) {
			updates <- update{scope: scope, items: items}
		}),
		WithStrategy[string](retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}),
	)
	t.Cleanup(a.Close)
	return a, updates
}

func next(t *testing.T, updates chan update) update {
	t.Helper()
	select {
	case u := <-updates:
		return u
	case <-time.After(time.Second):
		t.Fatal("no snapshot applied")
		return update{}
	}
}

func TestAdapter_InitialSnapshotReplacesState(t *testing.T) {
	b := NewBroker()
	s := &store{data: map[string][]string{"e1": {"alice", "bob"}}}
	a, updates := newAdapter(t, b, s.load)

	require.NoError(t, a.Subscribe("e1"))

	u := next(t, updates)
	assert.Equal(t, "e1", u.scope)
	assert.Equal(t, []string{"alice", "bob"}, u.items)

	scope, items := a.State()
	assert.Equal(t, "e1", scope)
	assert.Equal(t, []string{"alice", "bob"}, items)
}

func TestAdapter_ChangeRematerializes(t *testing.T) {
	b := NewBroker()
	s := &store{data: map[string][]string{"e1": {"alice"}}}
	a, updates := newAdapter(t, b, s.load)

	require.NoError(t, a.Subscribe("e1"))
	next(t, updates)

	s.set("e1", "carol")
	b.Publish(Change{Collection: CollectionGuestlist, Scope: "e1"})

	u := next(t, updates)
	assert.Equal(t, []string{"carol"}, u.items)
}

func TestAdapter_EmptySnapshotIsApplied(t *testing.T) {
	b := NewBroker()
	s := &store{data: map[string][]string{}}
	a, updates := newAdapter(t, b, s.load)

	require.NoError(t, a.Subscribe("e9"))

	u := next(t, updates)
	assert.Equal(t, "e9", u.scope)
	assert.NotNil(t, u.items)
	assert.Empty(t, u.items)
}

func TestAdapter_ResubscribeLeavesNoStaleEntries(t *testing.T) {
	b := NewBroker()
	s := &store{data: map[string][]string{
		"e1": {"alice", "bob"},
		"e2": {"zoe"},
	}}
	a, updates := newAdapter(t, b, s.load)

	require.NoError(t, a.Subscribe("e1"))
	next(t, updates)

	require.NoError(t, a.Subscribe("e2"))
	u := next(t, updates)

	assert.Equal(t, "e2", u.scope)
	scope, items := a.State()
	assert.Equal(t, "e2", scope)
	assert.Equal(t, []string{"zoe"}, items)

	// The old scope is no longer subscribed.
	assert.Equal(t, 0, b.Subscribers(Change{Collection: CollectionGuestlist, Scope: "e1"}))
	assert.Equal(t, 1, b.Subscribers(Change{Collection: CollectionGuestlist, Scope: "e2"}))

	s.set("e1", "mallory")
	b.Publish(Change{Collection: CollectionGuestlist, Scope: "e1"})
	select {
	case u := <-updates:
		t.Fatalf("unexpected snapshot for %s", u.scope)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAdapter_SlowSnapshotOfOldScopeIsDropped(t *testing.T) {
	b := NewBroker()
	release := make(chan struct{})
	load := func(ctx context.Context, scope string) ([]string, error) {
		if scope == "slow" {
			<-release
			return []string{"stale"}, nil
		}
		return []string{"fresh"}, nil
	}
	a, updates := newAdapter(t, b, load)

	require.NoError(t, a.Subscribe("slow"))
	require.NoError(t, a.Subscribe("fast"))

	u := next(t, updates)
	assert.Equal(t, "fast", u.scope)

	close(release)
	time.Sleep(50 * time.Millisecond)

	scope, items := a.State()
	assert.Equal(t, "fast", scope)
	assert.Equal(t, []string{"fresh"}, items)
}

func TestAdapter_LoadRetriesWithBackoff(t *testing.T) {
	b := NewBroker()
	var calls atomic.Int32
	load := func(ctx context.Context, scope string) ([]string, error) {
		if calls.Add(1) < 3 {
			return nil, errors.New("unavailable")
		}
		return []string{"ok"}, nil
	}
	a, updates := newAdapter(t, b, load)

	require.NoError(t, a.Subscribe("e1"))

	u := next(t, updates)
	assert.Equal(t, []string{"ok"}, u.items)
	assert.Equal(t, int32(3), calls.Load())
}

func TestAdapter_CloseInterruptsBackoff(t *testing.T) {
	b := NewBroker()
	var calls atomic.Int32
	load := func(ctx context.Context, scope string) ([]string, error) {
		calls.Add(1)
		return nil, errors.New("unavailable")
	}
	a := NewAdapter(CollectionGuestlist, b, load, newTestLogger(t),
		WithStrategy[string](retry.Strategy{Attempts: 5, Delay: time.Hour, Backoff: 2}),
	)

	require.NoError(t, a.Subscribe("e1"))
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		a.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close did not interrupt the backoff wait")
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestAdapter_LoadFailureKeepsState(t *testing.T) {
	b := NewBroker()
	var fail atomic.Bool
	load := func(ctx context.Context, scope string) ([]string, error) {
		if fail.Load() {
			return nil, errors.New("permission denied")
		}
		return []string{"alice"}, nil
	}
	a, updates := newAdapter(t, b, load)

	require.NoError(t, a.Subscribe("e1"))
	next(t, updates)

	fail.Store(true)
	b.Publish(Change{Collection: CollectionGuestlist, Scope: "e1"})
	time.Sleep(50 * time.Millisecond)

	_, items := a.State()
	assert.Equal(t, []string{"alice"}, items)
}

func TestAdapter_CloseReleasesSubscription(t *testing.T) {
	b := NewBroker()
	s := &store{data: map[string][]string{"e1": {"alice"}}}
	a, updates := newAdapter(t, b, s.load)

	require.NoError(t, a.Subscribe("e1"))
	next(t, updates)

	a.Close()

	assert.Equal(t, 0, b.Subscribers(Change{Collection: CollectionGuestlist, Scope: "e1"}))
	assert.ErrorIs(t, a.Subscribe("e2"), ErrAdapterClosed)
}
