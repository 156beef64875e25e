package handler

import (
	"net/http"

	"github.com/Peytose/mixer-app-sub003/internal/handler/dto"
	"github.com/Peytose/mixer-app-sub003/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateHost(c *ginext.Context) {
	var req dto.CreateHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	host, err := h.hostService.Create(c.Request.Context(), middleware.ActorID(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, host)
}

func (h *Handler) GetHost(c *ginext.Context) {
	host, err := h.hostService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, host)
}

func (h *Handler) UpdateHost(c *ginext.Context) {
	var req dto.UpdateHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	host, err := h.hostService.Update(c.Request.Context(), c.Param("id"), middleware.ActorID(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, host)
}
