package service

import (
	"testing"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
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

func testEvent(inviteOnly bool) *domain.Event {
	now := time.Now()
	return &domain.Event{
		ID:           "e1",
		HostID:       "h1",
		Title:        "Fall Mixer",
		StartDate:    now.Add(time.Hour),
		EndDate:      now.Add(4 * time.Hour),
		IsInviteOnly: inviteOnly,
	}
}

func testUser(id string, roles map[string]domain.HostMemberType) *domain.User {
	return &domain.User{
		ID:              id,
		Username:        id,
		DisplayName:     "User " + id,
		Gender:          domain.GenderOther,
		HostMemberTypes: roles,
	}
}

func hostUser(id string, role domain.HostMemberType) *domain.User {
	return testUser(id, map[string]domain.HostMemberType{"h1": role})
}
