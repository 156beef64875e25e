// Package feed mirrors remote collections into local state. A Source delivers
// change signals for a (collection, scope) key; an Adapter re-materializes the
// whole collection on every signal and hands it to a single reducer.
package feed

import (
	"sync"

	"github.com/Peytose/mixer-app-sub003/internal/metrics"
)

type Collection string

const (
	CollectionGuestlist Collection = "guestlist"
	CollectionRequests  Collection = "requests"
	CollectionFavorites Collection = "favorites"
	CollectionMembers   Collection = "member-list"
)

// Change identifies a collection instance that was modified.
type Change struct {
	Collection Collection `json:"collection"`
	Scope      string     `json:"scope"`
}

// Source hands out change signals. The returned func releases the subscription.
type Source interface {
	Subscribe(key Change) (<-chan struct{}, func())
}

// Broker fans change signals out to subscribers. Signals are coalesced: a
// subscriber that has not consumed the previous signal does not get a second
// one, which is enough because subscribers reload the full collection.
type Broker struct {
	mu   sync.Mutex
	subs map[Change]map[uint64]chan struct{}
	next uint64
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[Change]map[uint64]chan struct{})}
}

func (b *Broker) Subscribe(key Change) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	b.mu.Lock()
	b.next++
	id := b.next
	if b.subs[key] == nil {
		b.subs[key] = make(map[uint64]chan struct{})
	}
	b.subs[key][id] = ch
	b.mu.Unlock()

	metrics.SyncSubscriptions.WithLabelValues(string(key.Collection)).Inc()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[key], id)
			if len(b.subs[key]) == 0 {
				delete(b.subs, key)
			}
			b.mu.Unlock()
			metrics.SyncSubscriptions.WithLabelValues(string(key.Collection)).Dec()
		})
	}
}

// Publish signals every subscriber of key.
func (b *Broker) Publish(key Change) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs[key] {
		signal(ch)
	}
}

// Broadcast signals every subscriber, used after a reconnect or on resync.
func (b *Broker) Broadcast() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, subs := range b.subs {
		for _, ch := range subs {
			signal(ch)
		}
	}
}

// Subscribers returns the number of subscribers of key.
func (b *Broker) Subscribers(key Change) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[key])
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
