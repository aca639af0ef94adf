package routes

import (
	"fieldops/internal/adapter/http/handlers"
	"fieldops/internal/adapter/http/middleware"
	"fieldops/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth  = "/auth"
	PathUsers = "/users"
)

func addAuthRoutes(rg *gin.RouterGroup, h Handlers) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.AuthHandler.Login)

		session := auth.Group("")
		session.Use(middleware.Authenticate(h.Auth))
		session.GET("/me", h.AuthHandler.Me)
		session.POST("/logout", h.AuthHandler.Logout)
		session.PUT("/profile", h.AuthHandler.UpdateProfile)
	}
}

func addUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	users := rg.Group(PathUsers)
	users.Use(middleware.RequireRoles(entities.RoleAdmin))
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/:id", h.Get)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Deactivate)
		users.PUT("/:id/password", h.ResetPassword)
	}
}
