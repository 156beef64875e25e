package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
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

type fakeBot struct {
	mu    sync.Mutex
	err   error
	calls int
	last  tgbotapi.MessageConfig
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		b.last = msg
	}
	return tgbotapi.Message{}, b.err
}

func chatID(id int64) *int64 { return &id }

func TestTelegramNotifier_SendsToChat(t *testing.T) {
	bot := &fakeBot{}
	n := newNotifier(bot, time.Minute, newTestLogger(t))

	user := &domain.User{ID: "u1", TelegramChatID: chatID(42)}
	event := &domain.Event{Title: "Fall Mixer", StartDate: time.Date(2026, 10, 16, 21, 0, 0, 0, time.UTC)}

	n.NotifyAddedToGuestlist(context.Background(), user, event)

	assert.Equal(t, 1, bot.calls)
	assert.Equal(t, int64(42), bot.last.ChatID)
	assert.Contains(t, bot.last.Text, "Fall Mixer")
	assert.Equal(t, "Markdown", bot.last.ParseMode)
}

func TestTelegramNotifier_SkipsWithoutChatID(t *testing.T) {
	bot := &fakeBot{}
	n := newNotifier(bot, time.Minute, newTestLogger(t))

	n.NotifyCheckedIn(context.Background(), &domain.User{ID: "u1"}, &domain.Event{Title: "x"})

	assert.Equal(t, 0, bot.calls)
}

func TestTelegramNotifier_SkipsCancelledContext(t *testing.T) {
	bot := &fakeBot{}
	n := newNotifier(bot, time.Minute, newTestLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n.NotifyHostInvite(ctx, &domain.User{TelegramChatID: chatID(1)}, &domain.Host{Name: "Sigma"})

	assert.Equal(t, 0, bot.calls)
}

func TestTelegramNotifier_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	bot := &fakeBot{err: errors.New("telegram unavailable")}
	n := newNotifier(bot, time.Minute, newTestLogger(t))
	user := &domain.User{TelegramChatID: chatID(7)}
	event := &domain.Event{Title: "x"}

	for i := 0; i < tripAfter+3; i++ {
		n.NotifyCheckedIn(context.Background(), user, event)
	}

	assert.Equal(t, tripAfter, bot.calls)
	assert.Equal(t, gobreaker.StateOpen, n.breaker.State())
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))

	assert.NoError(t, err)
	n.NotifyCheckedIn(context.Background(), &domain.User{TelegramChatID: chatID(1)}, &domain.Event{})
}
