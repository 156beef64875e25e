package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroker_PublishSignalsOnlyMatchingKey(t *testing.T) {
	b := NewBroker()
	e1 := Change{Collection: CollectionGuestlist, Scope: "e1"}
	e2 := Change{Collection: CollectionGuestlist, Scope: "e2"}

	ch1, stop1 := b.Subscribe(e1)
	defer stop1()
	ch2, stop2 := b.Subscribe(e2)
	defer stop2()

	b.Publish(e1)

	assert.Len(t, ch1, 1)
	assert.Len(t, ch2, 0)
}

func TestBroker_SignalsAreCoalesced(t *testing.T) {
	b := NewBroker()
	key := Change{Collection: CollectionMembers, Scope: "h1"}
	ch, stop := b.Subscribe(key)
	defer stop()

	b.Publish(key)
	b.Publish(key)
	b.Publish(key)

	assert.Len(t, ch, 1)
}

func TestBroker_Broadcast(t *testing.T) {
	b := NewBroker()
	ch1, stop1 := b.Subscribe(Change{Collection: CollectionGuestlist, Scope: "e1"})
	defer stop1()
	ch2, stop2 := b.Subscribe(Change{Collection: CollectionFavorites, Scope: "u1"})
	defer stop2()

	b.Broadcast()

	assert.Len(t, ch1, 1)
	assert.Len(t, ch2, 1)
}

func TestBroker_UnsubscribeIsIdempotent(t *testing.T) {
	b := NewBroker()
	key := Change{Collection: CollectionGuestlist, Scope: "e1"}
	_, stop := b.Subscribe(key)

	assert.Equal(t, 1, b.Subscribers(key))
	stop()
	stop()
	assert.Equal(t, 0, b.Subscribers(key))

	b.Publish(key)
}
