package handler

import (
	"net/http"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/handler/dto"
	"github.com/Peytose/mixer-app-sub003/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) InviteMember(c *ginext.Context) {
	var req dto.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	link, err := h.membershipService.Invite(c.Request.Context(), c.Param("id"), middleware.ActorID(c), req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

func (h *Handler) ListMembers(c *ginext.Context) {
	buckets, err := h.membershipService.ListMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, buckets)
}

func (h *Handler) AcceptInvite(c *ginext.Context) {
	if err := h.membershipService.Accept(c.Request.Context(), c.Param("id"), middleware.ActorID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": string(domain.MemberJoined)})
}

func (h *Handler) DeclineInvite(c *ginext.Context) {
	if err := h.membershipService.Decline(c.Request.Context(), c.Param("id"), middleware.ActorID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) MemberActions(c *ginext.Context) {
	actions, err := h.membershipService.Actions(c.Request.Context(), c.Param("id"), middleware.ActorID(c), c.Param("userId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, actions)
}

func (h *Handler) AssignRole(c *ginext.Context) {
	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	role := domain.HostMemberType(req.Role)
	if err := h.membershipService.AssignRole(c.Request.Context(), c.Param("id"), middleware.ActorID(c), c.Param("userId"), role); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"role": req.Role})
}

func (h *Handler) RemoveMember(c *ginext.Context) {
	res, err := h.membershipService.RequestRemoval(c.Request.Context(), c.Param("id"), middleware.ActorID(c), c.Param("userId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	removal(c, res)
}

func (h *Handler) ConfirmMemberRemoval(c *ginext.Context) {
	if err := h.membershipService.ConfirmRemoval(c.Request.Context(), c.Param("id"), middleware.ActorID(c), c.Param("token")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.RemovalResult{Removed: true})
}
