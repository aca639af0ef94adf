package routes

import (
	"fieldops/internal/adapter/http/handlers"
	"fieldops/internal/adapter/http/middleware"
	"fieldops/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceRequests = "/service-requests"
	PathRenditions      = "/renditions"
)

func addServiceRequestRoutes(rg *gin.RouterGroup, h *handlers.ServiceRequestHandler) {
	requests := rg.Group(PathServiceRequests)
	{
		requests.POST("", h.Create)
		requests.GET("", h.List)
		requests.GET("/:id", h.Get)
		requests.PUT("/:id", h.Update)
		requests.DELETE("/:id", h.Delete)
		requests.PATCH("/:id/status", h.ChangeStatus)
		requests.POST("/:id/comments", h.AddComment)
		requests.POST("/:id/attachments", h.AddAttachments)
		requests.GET("/:id/history", h.History)
	}
}

func addRenditionRoutes(rg *gin.RouterGroup, h *handlers.RenditionHandler) {
	renditions := rg.Group(PathRenditions)
	{
		renditions.POST("", h.Create)
		renditions.GET("", h.List)
		renditions.POST("/reconcile", middleware.RequireRoles(entities.RoleAdmin), h.ReconcileLinks)
		renditions.GET("/:id", h.Get)
		renditions.PUT("/:id", h.Update)
		renditions.DELETE("/:id", h.Delete)
		renditions.PATCH("/:id/review", h.StartReview)
		renditions.PATCH("/:id/approve", h.Approve)
		renditions.PATCH("/:id/reject", h.Reject)
		renditions.POST("/:id/expenses", h.AddExpense)
		renditions.POST("/:id/attachments", h.AddAttachments)
	}
}
