package handler

import (
	"context"
	"net/http"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/handler/dto"
	"github.com/Peytose/mixer-app-sub003/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type attendeeAction func(ctx context.Context, eventID, userID string) (domain.AttendeeState, error)

func (h *Handler) attend(c *ginext.Context, action attendeeAction) {
	state, err := action(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StateResponse{State: string(state)})
}

func (h *Handler) JoinEvent(c *ginext.Context) {
	h.attend(c, h.guestlistService.Join)
}

func (h *Handler) CancelRequest(c *ginext.Context) {
	h.attend(c, h.guestlistService.CancelRequest)
}

func (h *Handler) LeaveEvent(c *ginext.Context) {
	h.attend(c, h.guestlistService.Leave)
}

func (h *Handler) ListGuests(c *ginext.Context) {
	guestlist, err := h.guestlistService.List(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, guestlist)
}

func (h *Handler) AddGuest(c *ginext.Context) {
	var req dto.AddGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	guest, err := h.guestlistService.AddGuest(c.Request.Context(), c.Param("id"), middleware.ActorID(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, guest)
}

func (h *Handler) CheckInGuest(c *ginext.Context) {
	guest, err := h.guestlistService.CheckIn(c.Request.Context(), c.Param("id"), middleware.ActorID(c), c.Param("guestId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, guest)
}

func (h *Handler) ScanGuest(c *ginext.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.guestlistService.Scan(c.Request.Context(), c.Param("id"), middleware.ActorID(c), req.Payload)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) RemoveGuest(c *ginext.Context) {
	res, err := h.guestlistService.RequestRemoval(c.Request.Context(), c.Param("id"), middleware.ActorID(c), c.Param("guestId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	removal(c, res)
}

func (h *Handler) ConfirmGuestRemoval(c *ginext.Context) {
	if err := h.guestlistService.ConfirmRemoval(c.Request.Context(), c.Param("id"), middleware.ActorID(c), c.Param("token")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.RemovalResult{Removed: true})
}

func (h *Handler) ListRequests(c *ginext.Context) {
	requests, err := h.guestlistService.ListRequests(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (h *Handler) ApproveRequest(c *ginext.Context) {
	guest, err := h.guestlistService.ApproveRequest(c.Request.Context(), c.Param("id"), middleware.ActorID(c), c.Param("userId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, guest)
}
