package handlers

import (
	"net/http"

	request "fieldops/internal/adapter/http/dto/request"
	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

type ServiceRequestHandler struct {
	usecase usecase.IServiceRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

func (h *ServiceRequestHandler) Create(c *gin.Context) {
	var payload request.ServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		invalidInput(c, err)
		return
	}

	sr, err := h.usecase.Create(c.Request.Context(), actor(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(sr))
}

func (h *ServiceRequestHandler) List(c *gin.Context) {
	q := pageQuery(c)
	requests, total, err := h.usecase.List(c.Request.Context(), actor(c), interfaces.ServiceRequestFilter{
		ProjectID:  c.Query("project"),
		AssignedTo: c.Query("assigned_to"),
		Status:     entities.RequestStatus(c.Query("status")),
		Priority:   entities.Priority(c.Query("priority")),
		Search:     c.Query("search"),
		PageQuery:  q,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.Page(response.FromServiceRequests(requests), len(requests), total, q.Page, q.Limit))
}

func (h *ServiceRequestHandler) Get(c *gin.Context) {
	sr, err := h.usecase.Get(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(sr))
}

func (h *ServiceRequestHandler) Update(c *gin.Context) {
	var payload request.UpdateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		invalidInput(c, err)
		return
	}

	sr, err := h.usecase.Update(c.Request.Context(), actor(c), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(sr))
}

func (h *ServiceRequestHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OKWithMessage(nil, "Service request deleted"))
}

func (h *ServiceRequestHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}

	sr, err := h.usecase.ChangeStatus(c.Request.Context(), actor(c), c.Param("id"), entities.RequestStatus(payload.Status), payload.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(sr))
}

func (h *ServiceRequestHandler) AddComment(c *gin.Context) {
	var payload request.CommentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}

	comment, err := h.usecase.AddComment(c.Request.Context(), actor(c), c.Param("id"), payload.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(comment))
}

func (h *ServiceRequestHandler) AddAttachments(c *gin.Context) {
	files, closeFiles, err := formFiles(c, "files")
	if err != nil {
		respondAppError(c, errInvalidUpload)
		return
	}
	defer closeFiles()

	attachments, err := h.usecase.AddAttachments(c.Request.Context(), actor(c), c.Param("id"), files)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(attachments))
}

func (h *ServiceRequestHandler) History(c *gin.Context) {
	history, err := h.usecase.History(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(history))
}
