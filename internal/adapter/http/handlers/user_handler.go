package handlers

import (
	"net/http"

	request "fieldops/internal/adapter/http/dto/request"
	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

func (h *UserHandler) Create(c *gin.Context) {
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}

	usr, err := h.usecase.Create(c.Request.Context(), actor(c), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(response.FromUser(usr)))
}

// List filters by ?role=, ?active= and ?search=.
func (h *UserHandler) List(c *gin.Context) {
	q := pageQuery(c)
	users, total, err := h.usecase.List(c.Request.Context(), actor(c), usecase.UserFilter{
		Role:      entities.Role(c.Query("role")),
		Active:    boolQuery(c, "active"),
		Search:    c.Query("search"),
		PageQuery: q,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.Page(response.FromUsers(users), len(users), total, q.Page, q.Limit))
}

func (h *UserHandler) Get(c *gin.Context) {
	usr, err := h.usecase.Get(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromUser(usr)))
}

func (h *UserHandler) Update(c *gin.Context) {
	var payload request.UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}

	usr, err := h.usecase.Update(c.Request.Context(), actor(c), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromUser(usr)))
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	if err := h.usecase.Deactivate(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OKWithMessage(nil, "User deactivated"))
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var payload request.ResetPasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}

	if err := h.usecase.ResetPassword(c.Request.Context(), actor(c), c.Param("id"), payload.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OKWithMessage(nil, "Password updated"))
}
