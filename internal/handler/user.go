package handler

import (
	"net/http"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) GetRelationship(c *ginext.Context) {
	state, err := h.userService.Relationship(c.Request.Context(), c.Param("id"), c.Param("other"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StateResponse{State: string(state)})
}

func (h *Handler) Search(c *ginext.Context) {
	results, err := h.searchService.Search(c.Request.Context(), c.Query("q"), domain.SearchCategory(c.Query("category")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
