package handler

import (
	"net/http"

	"github.com/Peytose/mixer-app-sub003/internal/handler/dto"
	"github.com/Peytose/mixer-app-sub003/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	input, err := req.ToInput()
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), middleware.ActorID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	view, err := h.eventService.Get(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	input, err := req.ToInput()
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), c.Param("id"), middleware.ActorID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	if err := h.eventService.Delete(c.Request.Context(), c.Param("id"), middleware.ActorID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListHostEvents returns attendee buckets, or active/past with ?view=host.
func (h *Handler) ListHostEvents(c *ginext.Context) {
	hostID := c.Param("id")

	if c.Query("view") == "host" {
		buckets, err := h.eventService.ListForHost(c.Request.Context(), hostID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, buckets)
		return
	}

	buckets, err := h.eventService.ListForAttendees(c.Request.Context(), hostID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func (h *Handler) FavoriteEvent(c *ginext.Context) {
	if err := h.eventService.Favorite(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) UnfavoriteEvent(c *ginext.Context) {
	if err := h.eventService.Unfavorite(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListFavorites is only available to the owner of the favorites.
func (h *Handler) ListFavorites(c *ginext.Context) {
	userID := c.Param("id")
	if userID != middleware.ActorID(c) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "favorites are private"})
		return
	}

	buckets, err := h.eventService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, buckets)
}
