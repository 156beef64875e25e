package live

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/feed"
	"github.com/Peytose/mixer-app-sub003/internal/middleware"
	"github.com/Peytose/mixer-app-sub003/internal/sections"
	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

var (
	errUnknownCollection = errors.New("unknown collection")
	errMalformedMessage  = errors.New("malformed message")
	errMissingScope      = errors.New("scope is required")
	errUnknownMessage    = errors.New("unknown message type")
)

type GuestlistSource interface {
	Authorize(ctx context.Context, eventID, actorID string) error
	Guests(ctx context.Context, eventID string) ([]domain.EventGuest, error)
	Requests(ctx context.Context, eventID string) ([]domain.JoinRequest, error)
}

type MemberSource interface {
	Members(ctx context.Context, hostID string) ([]domain.HostMember, error)
}

type FavoriteSource interface {
	FavoriteEvents(ctx context.Context, userID string) ([]domain.Event, error)
}

// Server upgrades /live requests and tracks the open sessions.
type Server struct {
	source    feed.Source
	guestlist GuestlistSource
	members   MemberSource
	favorites FavoriteSource
	strategy  retry.Strategy
	logger    logger.Logger
	upgrader  websocket.Upgrader

	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	sessions map[*session]struct{}
	wg       sync.WaitGroup
}

func NewServer(
	source feed.Source,
	guestlist GuestlistSource,
	members MemberSource,
	favorites FavoriteSource,
	strategy retry.Strategy,
	logger logger.Logger,
) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		source:    source,
		guestlist: guestlist,
		members:   members,
		favorites: favorites,
		strategy:  strategy,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		ctx:      ctx,
		cancel:   cancel,
		sessions: make(map[*session]struct{}),
	}
}

// Handle serves GET /live?collection=<name>. The first scope message from the
// client starts the stream.
func (s *Server) Handle(c *ginext.Context) {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		c.JSON(http.StatusUnauthorized, ginext.H{"error": "missing " + middleware.ActorHeader + " header"})
		return
	}

	collection := feed.Collection(c.Query("collection"))
	if !known(collection) {
		c.JSON(http.StatusBadRequest, ginext.H{"error": errUnknownCollection.Error()})
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", logger.String("error", err.Error()))
		return
	}

	sess := newSession(conn, actorID, collection, s.logger)
	sess.authorize = func(ctx context.Context, scope string) error {
		return s.authorize(ctx, collection, scope, actorID)
	}
	sess.stream = s.openStream(sess)

	if !s.track(sess) {
		sess.stop()
		sess.stream.Close()
		_ = conn.Close()
		return
	}
	defer s.untrack(sess)

	s.logger.Info("live session opened",
		logger.String("actor_id", actorID),
		logger.String("collection", string(collection)),
	)
	sess.run(s.ctx)
	s.logger.Info("live session closed",
		logger.String("actor_id", actorID),
		logger.String("collection", string(collection)),
	)
}

// Close stops every session and waits for them to finish.
func (s *Server) Close() {
	s.mu.Lock()
	s.cancel()
	for sess := range s.sessions {
		sess.stop()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Server) track(sess *session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return false
	}
	s.sessions[sess] = struct{}{}
	s.wg.Add(1)
	return true
}

func (s *Server) untrack(sess *session) {
	s.mu.Lock()
	delete(s.sessions, sess)
	s.mu.Unlock()
	s.wg.Done()
}

func known(c feed.Collection) bool {
	switch c {
	case feed.CollectionGuestlist, feed.CollectionRequests, feed.CollectionMembers, feed.CollectionFavorites:
		return true
	}
	return false
}

func (s *Server) authorize(ctx context.Context, collection feed.Collection, scope, actorID string) error {
	switch collection {
	case feed.CollectionGuestlist, feed.CollectionRequests:
		return s.guestlist.Authorize(ctx, scope, actorID)
	case feed.CollectionFavorites:
		if scope != actorID {
			return domain.ErrForbidden
		}
	}
	return nil
}

func (s *Server) openStream(sess *session) stream {
	switch sess.collection {
	case feed.CollectionGuestlist:
		return open[domain.EventGuest](s, sess, s.guestlist.Guests, func(items []domain.EventGuest) any {
			return sections.BuildGuestlist(items)
		})
	case feed.CollectionRequests:
		return open[domain.JoinRequest](s, sess, s.guestlist.Requests, func(items []domain.JoinRequest) any {
			return items
		})
	case feed.CollectionMembers:
		return open[domain.HostMember](s, sess, s.members.Members, func(items []domain.HostMember) any {
			return sections.BuildMembers(items)
		})
	default:
		return open[domain.Event](s, sess, s.favorites.FavoriteEvents, func(items []domain.Event) any {
			return sections.BuildAttendeeEvents(items, time.Now())
		})
	}
}

func open[T any](s *Server, sess *session, load feed.Loader[T], group func([]T) any) *feed.Adapter[T] {
	return feed.NewAdapter(sess.collection, s.source, load, s.logger,
		feed.WithStrategy[T](s.strategy),
		feed.WithOnChange(func(scope string, items []T) {
			sess.push(Frame{
				Type:       FrameSnapshot,
				Collection: sess.collection,
				Scope:      scope,
				Data:       group(items),
			})
		}),
	)
}
