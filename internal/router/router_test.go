package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/handler"
	hmocks "github.com/Peytose/mixer-app-sub003/internal/handler/mocks"
	"github.com/Peytose/mixer-app-sub003/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
)

func newRouter(t *testing.T, extras Extras) (*hmocks.MockGuestlistSvc, http.Handler) {
	t.Helper()
	guestlist := hmocks.NewMockGuestlistSvc(t)
	h := handler.NewHandler(
		hmocks.NewMockEventSvc(t),
		guestlist,
		hmocks.NewMockMembershipSvc(t),
		hmocks.NewMockHostSvc(t),
		hmocks.NewMockUserSvc(t),
		hmocks.NewMockSearchSvc(t),
	)
	return guestlist, InitRouter("test", h, extras, middleware.Actor())
}

func request(r http.Handler, method, path, actor string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if actor != "" {
		req.Header.Set(middleware.ActorHeader, actor)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	_, r := newRouter(t, Extras{})

	w := request(r, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	_, r := newRouter(t, Extras{})

	w := request(r, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRouter_MutationsRequireActor(t *testing.T) {
	guestlist, r := newRouter(t, Extras{})

	w := request(r, http.MethodPost, "/api/events/e1/join", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	guestlist.EXPECT().Join(mock.Anything, "e1", "u1").Return(domain.AttendeeOnGuestlist, nil)
	w = request(r, http.MethodPost, "/api/events/e1/join", "u1")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ScanLimitRunsFirst(t *testing.T) {
	blocked := func(c *ginext.Context) {
		c.AbortWithStatus(http.StatusTooManyRequests)
	}
	_, r := newRouter(t, Extras{ScanLimit: blocked})

	w := request(r, http.MethodPost, "/api/events/e1/scan", "u1")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
