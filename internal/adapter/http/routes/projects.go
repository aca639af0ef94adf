package routes

import (
	"fieldops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathProjects = "/projects"

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.Get)
		projects.PUT("/:id", h.Update)
		projects.DELETE("/:id", h.Delete)
		projects.PUT("/:id/technician", h.AssignTechnician)
		projects.POST("/:id/clients", h.AddClient)
		projects.PATCH("/:id/status", h.ChangeStatus)
		projects.GET("/:id/metrics", h.Metrics)

		projects.POST("/:id/milestones", h.AddMilestone)
		projects.GET("/:id/milestones", h.ListMilestones)
		projects.GET("/:id/milestones/:milestoneId", h.GetMilestone)
		projects.PUT("/:id/milestones/:milestoneId", h.UpdateMilestone)
		projects.DELETE("/:id/milestones/:milestoneId", h.DeleteMilestone)

		projects.POST("/:id/photos", h.AddPhotos)
		projects.DELETE("/:id/photos/:photoId", h.DeletePhoto)
		projects.POST("/:id/documents", h.AddDocuments)

		projects.POST("/:id/location-points", h.AddLocationPoint)
		projects.GET("/:id/location-points", h.ListLocationPoints)
		projects.GET("/:id/location-points/geojson", h.LocationPointsGeoJSON)
		projects.PUT("/:id/location-points/:pointId", h.UpdateLocationPoint)
		projects.DELETE("/:id/location-points/:pointId", h.DeleteLocationPoint)
	}
}
