package routes

import (
	"fieldops/internal/adapter/http/handlers"
	"fieldops/internal/adapter/http/middleware"
	"fieldops/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathNotifications     = "/notifications"
	PathExpenseCategories = "/expense-categories"
	PathReports           = "/reports"
)

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.List)
		notifications.GET("/unread", h.ListUnread)
		notifications.PATCH("/read-all", h.MarkAllRead)
		notifications.PATCH("/:id/read", h.MarkRead)
		notifications.DELETE("/:id", h.Delete)
	}
}

func addExpenseCategoryRoutes(rg *gin.RouterGroup, h *handlers.ExpenseCategoryHandler) {
	categories := rg.Group(PathExpenseCategories)
	{
		categories.GET("", h.List)
		categories.POST("", middleware.RequireRoles(entities.RoleAdmin), h.Create)
	}
}

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	reports.Use(middleware.RequireRoles(entities.RoleAdmin))
	{
		reports.GET("/projects", h.Projects)
		reports.GET("/service-requests", h.ServiceRequests)
		reports.GET("/renditions", h.Renditions)
		reports.GET("/renditions/export", h.ExportRenditions)
		reports.GET("/technicians", h.TechnicianPerformance)
	}
}
