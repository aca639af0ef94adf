package handlers

import (
	"net/http"

	request "fieldops/internal/adapter/http/dto/request"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

const geoJSONContentType = "application/geo+json"

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}

	project, err := h.usecase.Create(c.Request.Context(), actor(c), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(project))
}

func (h *ProjectHandler) List(c *gin.Context) {
	q := pageQuery(c)
	projects, total, err := h.usecase.List(c.Request.Context(), actor(c), interfaces.ProjectFilter{
		Technician: c.Query("technician"),
		Client:     c.Query("client"),
		Status:     entities.ProjectStatus(c.Query("status")),
		Search:     c.Query("search"),
		PageQuery:  q,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.Page(projects, len(projects), total, q.Page, q.Limit))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.usecase.Get(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(project))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}

	project, err := h.usecase.Update(c.Request.Context(), actor(c), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(project))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OKWithMessage(nil, "Project deleted"))
}

func (h *ProjectHandler) AssignTechnician(c *gin.Context) {
	var payload request.AssignTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}

	project, err := h.usecase.AssignTechnician(c.Request.Context(), actor(c), c.Param("id"), payload.TechnicianID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(project))
}

func (h *ProjectHandler) AddClient(c *gin.Context) {
	var payload request.AddClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}

	project, err := h.usecase.AddClient(c.Request.Context(), actor(c), c.Param("id"), payload.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(project))
}

func (h *ProjectHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}

	project, err := h.usecase.ChangeStatus(c.Request.Context(), actor(c), c.Param("id"), entities.ProjectStatus(payload.Status), payload.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(project))
}

func (h *ProjectHandler) Metrics(c *gin.Context) {
	metrics, err := h.usecase.Metrics(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(metrics))
}

func (h *ProjectHandler) AddMilestone(c *gin.Context) {
	var payload request.MilestoneRequest
	if err := c.ShouldBind(&payload); err != nil {
		invalidInput(c, err)
		return
	}
	files, closeFiles, err := formFiles(c, "attachments")
	if err != nil {
		respondAppError(c, errInvalidUpload)
		return
	}
	defer closeFiles()

	milestone, err := h.usecase.AddMilestone(c.Request.Context(), actor(c), c.Param("id"), usecase.MilestoneInput{
		Title:       payload.Title,
		Description: payload.Description,
		Files:       files,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(milestone))
}

func (h *ProjectHandler) ListMilestones(c *gin.Context) {
	milestones, err := h.usecase.ListMilestones(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(milestones))
}

func (h *ProjectHandler) GetMilestone(c *gin.Context) {
	milestone, err := h.usecase.GetMilestone(c.Request.Context(), actor(c), c.Param("id"), c.Param("milestoneId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(milestone))
}

func (h *ProjectHandler) UpdateMilestone(c *gin.Context) {
	var payload request.MilestoneRequest
	if err := c.ShouldBind(&payload); err != nil {
		invalidInput(c, err)
		return
	}
	files, closeFiles, err := formFiles(c, "attachments")
	if err != nil {
		respondAppError(c, errInvalidUpload)
		return
	}
	defer closeFiles()

	milestone, err := h.usecase.UpdateMilestone(c.Request.Context(), actor(c), c.Param("id"), c.Param("milestoneId"), usecase.MilestoneInput{
		Title:       payload.Title,
		Description: payload.Description,
		Files:       files,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(milestone))
}

func (h *ProjectHandler) DeleteMilestone(c *gin.Context) {
	if err := h.usecase.DeleteMilestone(c.Request.Context(), actor(c), c.Param("id"), c.Param("milestoneId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OKWithMessage(nil, "Milestone deleted"))
}

func (h *ProjectHandler) AddPhotos(c *gin.Context) {
	var payload request.PhotoRequest
	_ = c.ShouldBind(&payload)
	files, closeFiles, err := formFiles(c, "photos")
	if err != nil {
		respondAppError(c, errInvalidUpload)
		return
	}
	defer closeFiles()

	photos, err := h.usecase.AddPhotos(c.Request.Context(), actor(c), c.Param("id"), files, payload.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(photos))
}

func (h *ProjectHandler) DeletePhoto(c *gin.Context) {
	if err := h.usecase.DeletePhoto(c.Request.Context(), actor(c), c.Param("id"), c.Param("photoId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OKWithMessage(nil, "Photo deleted"))
}

func (h *ProjectHandler) AddDocuments(c *gin.Context) {
	files, closeFiles, err := formFiles(c, "documents")
	if err != nil {
		respondAppError(c, errInvalidUpload)
		return
	}
	defer closeFiles()

	docs, err := h.usecase.AddDocuments(c.Request.Context(), actor(c), c.Param("id"), files)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(docs))
}

func (h *ProjectHandler) AddLocationPoint(c *gin.Context) {
	var payload request.LocationPointRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		invalidInput(c, err)
		return
	}

	point, err := h.usecase.AddLocationPoint(c.Request.Context(), actor(c), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(point))
}

func (h *ProjectHandler) ListLocationPoints(c *gin.Context) {
	points, err := h.usecase.ListLocationPoints(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(points))
}

func (h *ProjectHandler) UpdateLocationPoint(c *gin.Context) {
	var payload request.LocationPointRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		invalidInput(c, err)
		return
	}

	point, err := h.usecase.UpdateLocationPoint(c.Request.Context(), actor(c), c.Param("id"), c.Param("pointId"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(point))
}

func (h *ProjectHandler) DeleteLocationPoint(c *gin.Context) {
	if err := h.usecase.DeleteLocationPoint(c.Request.Context(), actor(c), c.Param("id"), c.Param("pointId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OKWithMessage(nil, "Location point deleted"))
}

// LocationPointsGeoJSON serves the points as a FeatureCollection for map clients.
func (h *ProjectHandler) LocationPointsGeoJSON(c *gin.Context) {
	body, err := h.usecase.LocationPointsGeoJSON(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, geoJSONContentType, body)
}
