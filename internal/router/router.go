package router

import (
	"net/http"

	"github.com/Peytose/mixer-app-sub003/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	GetRelationship(c *ginext.Context)
	ListFavorites(c *ginext.Context)
	Search(c *ginext.Context)

	CreateHost(c *ginext.Context)
	GetHost(c *ginext.Context)
	UpdateHost(c *ginext.Context)
	ListHostEvents(c *ginext.Context)

	InviteMember(c *ginext.Context)
	ListMembers(c *ginext.Context)
	AcceptInvite(c *ginext.Context)
	DeclineInvite(c *ginext.Context)
	MemberActions(c *ginext.Context)
	AssignRole(c *ginext.Context)
	RemoveMember(c *ginext.Context)
	ConfirmMemberRemoval(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	JoinEvent(c *ginext.Context)
	CancelRequest(c *ginext.Context)
	LeaveEvent(c *ginext.Context)
	FavoriteEvent(c *ginext.Context)
	UnfavoriteEvent(c *ginext.Context)

	ListGuests(c *ginext.Context)
	AddGuest(c *ginext.Context)
	CheckInGuest(c *ginext.Context)
	ScanGuest(c *ginext.Context)
	RemoveGuest(c *ginext.Context)
	ConfirmGuestRemoval(c *ginext.Context)
	ListRequests(c *ginext.Context)
	ApproveRequest(c *ginext.Context)
}

// Extras are the routes not served by Handler.
type Extras struct {
	Live      ginext.HandlerFunc
	ScanLimit ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, extras Extras, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public reads
		api.POST("/users", h.CreateUser)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/relationships/:other", h.GetRelationship)
		api.GET("/hosts/:id", h.GetHost)
		api.GET("/hosts/:id/events", h.ListHostEvents)
		api.GET("/hosts/:id/members", h.ListMembers)
		api.GET("/search", h.Search)
	}

	authed := api.Group("", middleware.RequireActor())
	{
		authed.GET("/users/:id/favorites", h.ListFavorites)

		// Hosts
		authed.POST("/hosts", h.CreateHost)
		authed.PATCH("/hosts/:id", h.UpdateHost)

		// Membership
		authed.POST("/hosts/:id/members", h.InviteMember)
		authed.POST("/hosts/:id/members/accept", h.AcceptInvite)
		authed.POST("/hosts/:id/members/decline", h.DeclineInvite)
		authed.GET("/hosts/:id/members/:userId/actions", h.MemberActions)
		authed.PUT("/hosts/:id/members/:userId/role", h.AssignRole)
		authed.DELETE("/hosts/:id/members/:userId", h.RemoveMember)
		authed.POST("/hosts/:id/members/removals/:token/confirm", h.ConfirmMemberRemoval)

		// Events
		authed.POST("/events", h.CreateEvent)
		authed.GET("/events/:id", h.GetEvent)
		authed.PATCH("/events/:id", h.UpdateEvent)
		authed.DELETE("/events/:id", h.DeleteEvent)
		authed.POST("/events/:id/join", h.JoinEvent)
		authed.POST("/events/:id/cancel", h.CancelRequest)
		authed.POST("/events/:id/leave", h.LeaveEvent)
		authed.POST("/events/:id/favorite", h.FavoriteEvent)
		authed.DELETE("/events/:id/favorite", h.UnfavoriteEvent)

		// Guestlist
		authed.GET("/events/:id/guests", h.ListGuests)
		authed.POST("/events/:id/guests", h.AddGuest)
		authed.POST("/events/:id/guests/:guestId/checkin", h.CheckInGuest)
		authed.DELETE("/events/:id/guests/:guestId", h.RemoveGuest)
		authed.POST("/events/:id/guests/removals/:token/confirm", h.ConfirmGuestRemoval)
		authed.GET("/events/:id/requests", h.ListRequests)
		authed.POST("/events/:id/requests/:userId/approve", h.ApproveRequest)

		scan := []ginext.HandlerFunc{h.ScanGuest}
		if extras.ScanLimit != nil {
			scan = append([]ginext.HandlerFunc{extras.ScanLimit}, scan...)
		}
		authed.POST("/events/:id/scan", scan...)

		if extras.Live != nil {
			authed.GET("/live", extras.Live)
		}
	}

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
