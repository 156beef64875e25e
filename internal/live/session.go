package live

import (
	"context"
	"sync"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/feed"
	"github.com/Peytose/mixer-app-sub003/internal/metrics"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
	sendBuffer     = 8
)

// stream is the part of feed.Adapter a session drives.
type stream interface {
	Subscribe(scope string) error
	Close()
}

type session struct {
	conn       *websocket.Conn
	actorID    string
	collection feed.Collection
	stream     stream
	authorize  func(ctx context.Context, scope string) error
	logger     logger.Logger

	send     chan Frame
	done     chan struct{}
	stopOnce sync.Once
}

func newSession(conn *websocket.Conn, actorID string, collection feed.Collection, log logger.Logger) *session {
	return &session{
		conn:       conn,
		actorID:    actorID,
		collection: collection,
		logger:     log,
		send:       make(chan Frame, sendBuffer),
		done:       make(chan struct{}),
	}
}

// run blocks until the client goes away or the session is stopped.
func (s *session) run(ctx context.Context) {
	metrics.LiveSessions.Inc()
	defer metrics.LiveSessions.Dec()

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writePump()
	}()

	s.readPump(ctx)

	s.stop()
	s.stream.Close()
	<-writerDone
	_ = s.conn.Close()
}

func (s *session) stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// push queues f for the writer. Every snapshot supersedes the previous one,
// so when the buffer is full the oldest queued frame is dropped.
func (s *session) push(f Frame) {
	for {
		select {
		case <-s.done:
			return
		case s.send <- f:
			return
		default:
		}

		select {
		case <-s.send:
		default:
		}
	}
}

func (s *session) pushError(scope string, err error) {
	s.push(Frame{Type: FrameError, Collection: s.collection, Scope: scope, Error: err.Error()})
}

func (s *session) readPump(ctx context.Context) {
	s.conn.SetReadLimit(maxMessageSize)
	if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		s.logger.Error("failed to set read deadline", logger.String("error", err.Error()))
		return
	}
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("unexpected websocket close",
					logger.String("actor_id", s.actorID),
					logger.String("error", err.Error()),
				)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.pushError("", errMalformedMessage)
			continue
		}

		switch msg.Type {
		case MessageScope:
			if msg.Scope == "" {
				s.pushError("", errMissingScope)
				continue
			}
			if err := s.authorize(ctx, msg.Scope); err != nil {
				s.logger.Debug("live scope rejected",
					logger.String("actor_id", s.actorID),
					logger.String("collection", string(s.collection)),
					logger.String("scope", msg.Scope),
					logger.String("error", err.Error()),
				)
				s.pushError(msg.Scope, err)
				continue
			}
			if err := s.stream.Subscribe(msg.Scope); err != nil {
				return
			}
		case MessagePing:
			s.push(Frame{Type: FramePong})
		default:
			s.pushError("", errUnknownMessage)
		}
	}
}

func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case <-s.done:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = s.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
			return

		case f := <-s.send:
			payload, err := json.Marshal(f)
			if err != nil {
				s.logger.Error("failed to encode live frame", logger.String("error", err.Error()))
				continue
			}
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
