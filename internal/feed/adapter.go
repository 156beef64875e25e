package feed

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/metrics"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

var ErrAdapterClosed = errors.New("adapter is closed")

// Loader reads the full current content of a collection instance.
type Loader[T any] func(ctx context.Context, scope string) ([]T, error)

// Adapter keeps one local copy of one collection instance in sync. Only one
// scope is subscribed at a time; Subscribe to a new scope tears the previous
// subscription down first. All writes to local state go through the reducer
// goroutine, which drops snapshots from a superseded scope.
type Adapter[T any] struct {
	collection Collection
	source     Source
	load       Loader[T]
	strategy   retry.Strategy
	logger     logger.Logger
	onChange   func(scope string, items []T)

	ctx    context.Context
	cancel context.CancelFunc
	inbox  chan message[T]
	wg     sync.WaitGroup

	mu          sync.Mutex
	gen         uint64
	stopCurrent func()
	closed      bool

	stateMu sync.RWMutex
	scope   string
	items   []T
}

type message[T any] struct {
	gen   uint64
	scope string
	items []T
	reset bool
}

type Option[T any] func(*Adapter[T])

// WithOnChange registers fn to be called by the reducer after every applied
// snapshot. fn must not call back into Subscribe.
func WithOnChange[T any](fn func(scope string, items []T)) Option[T] {
	return func(a *Adapter[T]) { a.onChange = fn }
}

// WithStrategy sets the backoff used when a load fails.
func WithStrategy[T any](s retry.Strategy) Option[T] {
	return func(a *Adapter[T]) { a.strategy = s }
}

func NewAdapter[T any](
	collection Collection,
	source Source,
	load Loader[T],
	logger logger.Logger,
	opts ...Option[T],
) *Adapter[T] {
	ctx, cancel := context.WithCancel(context.Background())
	a := &Adapter[T]{
		collection: collection,
		source:     source,
		load:       load,
		logger:     logger,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		ctx:    ctx,
		cancel: cancel,
		inbox:  make(chan message[T], 16),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.wg.Add(1)
	go a.reduce()

	return a
}

// Subscribe switches the adapter to scope. Local state is cleared at once and
// replaced by the first snapshot of the new scope.
func (a *Adapter[T]) Subscribe(scope string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrAdapterClosed
	}

	if a.stopCurrent != nil {
		a.stopCurrent()
		a.stopCurrent = nil
	}

	a.gen++
	gen := a.gen

	select {
	case a.inbox <- message[T]{gen: gen, scope: scope, reset: true}:
	case <-a.ctx.Done():
		return ErrAdapterClosed
	}

	signals, unsubscribe := a.source.Subscribe(Change{Collection: a.collection, Scope: scope})
	runCtx, cancel := context.WithCancel(a.ctx)
	a.stopCurrent = func() {
		cancel()
		unsubscribe()
	}

	a.wg.Add(1)
	go a.run(runCtx, gen, scope, signals)

	return nil
}

// State returns the current scope and a copy of the local collection.
func (a *Adapter[T]) State() (string, []T) {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()

	out := make([]T, len(a.items))
	copy(out, a.items)
	return a.scope, out
}

// Close releases the subscription and stops the reducer.
func (a *Adapter[T]) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	if a.stopCurrent != nil {
		a.stopCurrent()
		a.stopCurrent = nil
	}
	a.mu.Unlock()

	a.cancel()
	a.wg.Wait()
}

func (a *Adapter[T]) run(ctx context.Context, gen uint64, scope string, signals <-chan struct{}) {
	defer a.wg.Done()

	a.refresh(ctx, gen, scope)
	for {
		select {
		case <-ctx.Done():
			return
		case <-signals:
			a.refresh(ctx, gen, scope)
		}
	}
}

func (a *Adapter[T]) refresh(ctx context.Context, gen uint64, scope string) {
	items, err := a.loadWithBackoff(ctx, scope)
	if err != nil {
		if ctx.Err() == nil {
			metrics.SyncErrors.WithLabelValues(string(a.collection), "load").Inc()
			a.logger.Error("snapshot load failed, waiting for next change",
				logger.String("collection", string(a.collection)),
				logger.String("scope", scope),
				logger.String("error", err.Error()),
			)
		}
		return
	}

	select {
	case a.inbox <- message[T]{gen: gen, scope: scope, items: items}:
	case <-ctx.Done():
	}
}

func (a *Adapter[T]) loadWithBackoff(ctx context.Context, scope string) ([]T, error) {
	var (
		items   []T
		attempt int
	)
	err := retry.DoContext(ctx, a.strategy, func() error {
		attempt++
		var err error
		if items, err = a.load(ctx, scope); err != nil {
			a.logger.Warn("snapshot load failed",
				logger.String("collection", string(a.collection)),
				logger.String("scope", scope),
				logger.Int("attempt", attempt),
				logger.String("error", err.Error()),
			)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (a *Adapter[T]) reduce() {
	defer a.wg.Done()

	var current uint64
	for {
		select {
		case <-a.ctx.Done():
			return
		case msg := <-a.inbox:
			if msg.reset {
				current = msg.gen
				a.apply(msg.scope, nil, false)
				continue
			}
			if msg.gen != current {
				a.logger.Debug("stale snapshot dropped",
					logger.String("collection", string(a.collection)),
					logger.String("scope", msg.scope),
				)
				continue
			}
			if msg.items == nil {
				msg.items = []T{}
			}
			metrics.SyncSnapshots.WithLabelValues(string(a.collection)).Inc()
			a.apply(msg.scope, msg.items, true)
		}
	}
}

func (a *Adapter[T]) apply(scope string, items []T, notify bool) {
	a.stateMu.Lock()
	a.scope = scope
	a.items = items
	a.stateMu.Unlock()

	if notify && a.onChange != nil {
		out := make([]T, len(items))
		copy(out, items)
		a.onChange(scope, out)
	}
}
