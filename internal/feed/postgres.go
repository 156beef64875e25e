package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/metrics"
	"github.com/goccy/go-json"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/logger"
)

// Channel is the NOTIFY channel written by the collection triggers.
const Channel = "mixer_changes"

// PgFeed turns Postgres NOTIFY messages into Broker signals.
type PgFeed struct {
	*Broker
	listener *pq.Listener
	logger   logger.Logger
}

func NewPgFeed(dsn string, minReconnect, maxReconnect time.Duration, log logger.Logger) (*PgFeed, error) {
	f := &PgFeed{
		Broker: NewBroker(),
		logger: log,
	}
	f.listener = pq.NewListener(dsn, minReconnect, maxReconnect, f.onEvent)

	if err := f.listener.Listen(Channel); err != nil {
		_ = f.listener.Close()
		return nil, fmt.Errorf("listen %s: %w", Channel, err)
	}

	return f, nil
}

// Run dispatches notifications until ctx is done.
func (f *PgFeed) Run(ctx context.Context) {
	f.logger.Info("change feed started", logger.String("channel", Channel))

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("change feed stopped")
			return
		case n := <-f.listener.Notify:
			if n == nil {
				// Delivered after a reconnect; changes may have been missed.
				f.Broadcast()
				continue
			}
			f.dispatch(n.Extra)
		}
	}
}

func (f *PgFeed) dispatch(payload string) {
	var c Change
	if err := json.Unmarshal([]byte(payload), &c); err != nil || c.Collection == "" || c.Scope == "" {
		metrics.SyncErrors.WithLabelValues("unknown", "decode").Inc()
		f.logger.Warn("malformed change notification", logger.String("payload", payload))
		return
	}
	f.Publish(c)
}

// Resync checks the listener connection and makes every adapter reload, so
// that a notification lost in transit is repaired on the next tick.
func (f *PgFeed) Resync(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := f.listener.Ping(); err != nil {
		metrics.SyncErrors.WithLabelValues("all", "ping").Inc()
		return fmt.Errorf("ping listener: %w", err)
	}
	f.Broadcast()
	return nil
}

func (f *PgFeed) Close() error {
	return f.listener.Close()
}

func (f *PgFeed) onEvent(ev pq.ListenerEventType, err error) {
	switch ev {
	case pq.ListenerEventConnected:
		f.logger.Info("change feed connected")
	case pq.ListenerEventReconnected:
		f.logger.Info("change feed reconnected")
	case pq.ListenerEventDisconnected:
		metrics.SyncErrors.WithLabelValues("all", "disconnect").Inc()
		f.logger.Warn("change feed disconnected", logger.Any("error", err))
	case pq.ListenerEventConnectionAttemptFailed:
		metrics.SyncErrors.WithLabelValues("all", "connect").Inc()
		f.logger.Error("change feed connection attempt failed", logger.Any("error", err))
	}
}
