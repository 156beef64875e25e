package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/feed"
	"github.com/Peytose/mixer-app-sub003/internal/middleware"
	"github.com/Peytose/mixer-app-sub003/internal/sections"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

type fakeStore struct {
	mu     sync.Mutex
	guests map[string][]domain.EventGuest
}

func (f *fakeStore) setGuests(eventID string, names ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gs := make([]domain.EventGuest, 0, len(names))
	for _, n := range names {
		gs = append(gs, domain.EventGuest{ID: n, EventID: eventID, Name: n, Status: domain.GuestStatusInvited})
	}
	f.guests[eventID] = gs
}

func (f *fakeStore) Authorize(_ context.Context, eventID, _ string) error {
	if eventID == "secret" {
		return domain.ErrForbidden
	}
	return nil
}

func (f *fakeStore) Guests(_ context.Context, eventID string) ([]domain.EventGuest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.EventGuest(nil), f.guests[eventID]...), nil
}

func (f *fakeStore) Requests(context.Context, string) ([]domain.JoinRequest, error) {
	return nil, nil
}

func (f *fakeStore) Members(context.Context, string) ([]domain.HostMember, error) {
	return nil, nil
}

func (f *fakeStore) FavoriteEvents(context.Context, string) ([]domain.Event, error) {
	return nil, nil
}

type snapshot struct {
	Type       string          `json:"type"`
	Collection string          `json:"collection"`
	Scope      string          `json:"scope"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
}

func setup(t *testing.T) (*feed.Broker, *fakeStore, *Server, string) {
	t.Helper()
	broker := feed.NewBroker()
	store := &fakeStore{guests: make(map[string][]domain.EventGuest)}
	srv := NewServer(broker, store, store, store,
		retry.Strategy{Attempts: 1, Delay: time.Millisecond, Backoff: 1}, newTestLogger(t))

	r := ginext.New("test")
	r.Use(middleware.Actor())
	r.GET("/live", srv.Handle)

	ts := httptest.NewServer(r)
	t.Cleanup(func() {
		srv.Close()
		ts.Close()
	})

	return broker, store, srv, "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	header := http.Header{}
	header.Set(middleware.ActorHeader, "u1")
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	payload, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, payload))
}

func read(t *testing.T, conn *websocket.Conn) snapshot {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var f snapshot
	require.NoError(t, json.Unmarshal(data, &f))
	return f
}

func guestNames(t *testing.T, f snapshot) []string {
	t.Helper()
	var gl sections.Guestlist
	require.NoError(t, json.Unmarshal(f.Data, &gl))
	var names []string
	for _, s := range gl.Sections {
		for _, g := range s.Guests {
			names = append(names, g.Name)
		}
	}
	return names
}

func TestServer_StreamsGroupedSnapshots(t *testing.T) {
	broker, store, _, url := setup(t)
	store.setGuests("e1", "Bob", "alice")

	conn := dial(t, url+"?collection=guestlist")
	send(t, conn, ClientMessage{Type: MessageScope, Scope: "e1"})

	f := read(t, conn)
	assert.Equal(t, FrameSnapshot, f.Type)
	assert.Equal(t, "guestlist", f.Collection)
	assert.Equal(t, "e1", f.Scope)
	assert.Equal(t, []string{"alice", "Bob"}, guestNames(t, f))

	store.setGuests("e1", "Bob", "alice", "Carol")
	broker.Publish(feed.Change{Collection: feed.CollectionGuestlist, Scope: "e1"})

	f = read(t, conn)
	assert.Equal(t, []string{"alice", "Bob", "Carol"}, guestNames(t, f))
}

func TestServer_SwitchScope(t *testing.T) {
	broker, store, _, url := setup(t)
	store.setGuests("e1", "Ann")
	store.setGuests("e2", "Zed")

	conn := dial(t, url+"?collection=guestlist")
	send(t, conn, ClientMessage{Type: MessageScope, Scope: "e1"})
	assert.Equal(t, "e1", read(t, conn).Scope)

	send(t, conn, ClientMessage{Type: MessageScope, Scope: "e2"})
	f := read(t, conn)
	assert.Equal(t, "e2", f.Scope)
	assert.Equal(t, []string{"Zed"}, guestNames(t, f))

	key := feed.Change{Collection: feed.CollectionGuestlist, Scope: "e1"}
	assert.Eventually(t, func() bool { return broker.Subscribers(key) == 0 }, time.Second, 5*time.Millisecond)
}

func TestServer_ForbiddenScope(t *testing.T) {
	_, _, _, url := setup(t)

	conn := dial(t, url+"?collection=guestlist")
	send(t, conn, ClientMessage{Type: MessageScope, Scope: "secret"})

	f := read(t, conn)
	assert.Equal(t, FrameError, f.Type)
	assert.Equal(t, "secret", f.Scope)
	assert.Equal(t, domain.ErrForbidden.Error(), f.Error)
}

func TestServer_FavoritesScopeMustBeActor(t *testing.T) {
	_, _, _, url := setup(t)

	conn := dial(t, url+"?collection=favorites")
	send(t, conn, ClientMessage{Type: MessageScope, Scope: "someone-else"})
	assert.Equal(t, FrameError, read(t, conn).Type)

	send(t, conn, ClientMessage{Type: MessageScope, Scope: "u1"})
	f := read(t, conn)
	assert.Equal(t, FrameSnapshot, f.Type)
	assert.JSONEq(t, `{"current":[],"upcoming":[]}`, string(f.Data))
}

func TestServer_PingAndMalformed(t *testing.T) {
	_, _, _, url := setup(t)

	conn := dial(t, url+"?collection=requests")
	send(t, conn, ClientMessage{Type: MessagePing})
	assert.Equal(t, FramePong, read(t, conn).Type)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	f := read(t, conn)
	assert.Equal(t, FrameError, f.Type)
	assert.Equal(t, errMalformedMessage.Error(), f.Error)
}

func TestServer_RejectsUnknownCollection(t *testing.T) {
	_, _, _, url := setup(t)

	header := http.Header{}
	header.Set(middleware.ActorHeader, "u1")
	_, resp, err := websocket.DefaultDialer.Dial(url+"?collection=bookings", header)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_CloseEndsSessions(t *testing.T) {
	_, _, srv, url := setup(t)

	conn := dial(t, url+"?collection=guestlist")
	send(t, conn, ClientMessage{Type: MessagePing})
	read(t, conn)

	srv.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway))
}
