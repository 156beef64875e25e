package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/metrics"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sony/gobreaker/v2"
	"github.com/wb-go/wbf/logger"
)

const (
	breakerName    = "telegram"
	tripAfter      = 5
	dateLayout     = "Jan 2, 15:04 MST"
	kindGuestlist  = "guestlist"
	kindCheckIn    = "checkin"
	kindHostInvite = "host_invite"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot     sender
	breaker *gobreaker.CircuitBreaker[tgbotapi.Message]
	logger  logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return newNotifier(bot, 30*time.Second, logger), nil
}

// newNotifier wraps bot in a breaker that opens after tripAfter consecutive
// failures and probes again after cooldown.
func newNotifier(bot sender, cooldown time.Duration, log logger.Logger) *TelegramNotifier {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	breaker := gobreaker.NewCircuitBreaker[tgbotapi.Message](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= tripAfter
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				logger.String("name", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &TelegramNotifier{bot: bot, breaker: breaker, logger: log}
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

func (n *TelegramNotifier) NotifyAddedToGuestlist(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*You're on the guestlist!*\n\n"+"Event: %s\n"+"Starts: %s",
		event.Title, event.StartDate.UTC().Format(dateLayout),
	)
	n.send(ctx, kindGuestlist, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyCheckedIn(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf("*Checked in*\n\n"+"Welcome to %s!", event.Title)
	n.send(ctx, kindCheckIn, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyHostInvite(ctx context.Context, user *domain.User, host *domain.Host) {
	text := fmt.Sprintf(
		"*New invitation*\n\n"+"%s invited you to join as a member.\n"+"Open the app to accept or decline.",
		host.Name,
	)
	n.send(ctx, kindHostInvite, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, kind string, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("kind", kind))
		metrics.Notifications.WithLabelValues(kind, "skipped").Inc()
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("kind", kind))
		metrics.Notifications.WithLabelValues(kind, "skipped").Inc()
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		metrics.Notifications.WithLabelValues(kind, "skipped").Inc()
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	_, err := n.breaker.Execute(func() (tgbotapi.Message, error) {
		return n.bot.Send(msg)
	})
	switch {
	case err == nil:
		metrics.Notifications.WithLabelValues(kind, "sent").Inc()
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.Notifications.WithLabelValues(kind, "rejected").Inc()
		n.logger.Warn("telegram notification rejected by circuit breaker",
			logger.Int64("chat_id", *chatID),
			logger.String("kind", kind),
		)
	default:
		metrics.Notifications.WithLabelValues(kind, "failed").Inc()
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("kind", kind),
			logger.String("error", err.Error()),
		)
	}
}
