package handlers

import (
	"net/http"

	request "fieldops/internal/adapter/http/dto/request"
	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/adapter/http/middleware"
	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth  usecase.IAuthUseCase
	users usecase.IUserUseCase
}

func NewAuthHandler(auth usecase.IAuthUseCase, users usecase.IUserUseCase) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// Login exchanges credentials for a bearer token.
// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Credentials"
// @Success 200 {object} pkg.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}

	session, err := h.auth.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.OK(response.FromSession(session)))
}

// Me returns the authenticated user.
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security Bearer
// @Success 200 {object} pkg.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	usr, err := h.auth.Me(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromUser(usr)))
}

// Logout revokes the presented token.
// @Summary Logout
// @Tags Auth
// @Produce json
// @Security Bearer
// @Success 200 {object} pkg.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)
	if err := h.auth.Logout(c.Request.Context(), principal); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OKWithMessage(nil, "Logged out"))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}

	usr, err := h.users.UpdateProfile(c.Request.Context(), actor(c), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromUser(usr)))
}
