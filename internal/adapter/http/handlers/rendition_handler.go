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

type RenditionHandler struct {
	usecase usecase.IRenditionUseCase
}

func NewRenditionHandler(uc usecase.IRenditionUseCase) *RenditionHandler {
	return &RenditionHandler{usecase: uc}
}

func (h *RenditionHandler) Create(c *gin.Context) {
	var payload request.RenditionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		invalidInput(c, err)
		return
	}

	rendition, err := h.usecase.Create(c.Request.Context(), actor(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(response.FromRendition(rendition)))
}

// List filters by ?service_request=, ?project=, ?status= and ?start_date=/?end_date=.
func (h *RenditionHandler) List(c *gin.Context) {
	from, err := parseDate(c.Query("start_date"), false)
	if err != nil {
		respondAppError(c, errInvalidDate)
		return
	}
	to, err := parseDate(c.Query("end_date"), true)
	if err != nil {
		respondAppError(c, errInvalidDate)
		return
	}

	q := pageQuery(c)
	renditions, total, err := h.usecase.List(c.Request.Context(), actor(c), interfaces.RenditionFilter{
		Technician:       c.Query("technician"),
		ServiceRequestID: c.Query("service_request"),
		ProjectID:        c.Query("project"),
		Status:           entities.RenditionStatus(c.Query("status")),
		From:             from,
		To:               to,
		PageQuery:        q,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.Page(response.FromRenditions(renditions), len(renditions), total, q.Page, q.Limit))
}

func (h *RenditionHandler) Get(c *gin.Context) {
	rendition, err := h.usecase.Get(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromRendition(rendition)))
}

func (h *RenditionHandler) Update(c *gin.Context) {
	var payload request.UpdateRenditionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		invalidInput(c, err)
		return
	}

	rendition, err := h.usecase.Update(c.Request.Context(), actor(c), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromRendition(rendition)))
}

func (h *RenditionHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OKWithMessage(nil, "Rendition deleted"))
}

func (h *RenditionHandler) StartReview(c *gin.Context) {
	rendition, err := h.usecase.StartReview(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromRendition(rendition)))
}

func (h *RenditionHandler) Approve(c *gin.Context) {
	var payload request.ApproveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			invalidInput(c, err)
			return
		}
	}

	rendition, err := h.usecase.Approve(c.Request.Context(), actor(c), c.Param("id"), payload.Comments)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OKWithMessage(response.FromRendition(rendition), "Rendition approved"))
}

func (h *RenditionHandler) Reject(c *gin.Context) {
	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}

	rendition, err := h.usecase.Reject(c.Request.Context(), actor(c), c.Param("id"), entities.RejectionReason(payload.Reason), payload.Comments)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OKWithMessage(response.FromRendition(rendition), "Rendition rejected"))
}

func (h *RenditionHandler) AddExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if err := c.ShouldBind(&payload); err != nil {
		invalidInput(c, err)
		return
	}
	files, closeFiles, err := formFiles(c, "payment_proof", "paymentProof")
	if err != nil {
		respondAppError(c, errInvalidUpload)
		return
	}
	defer closeFiles()

	in := payload.ToInput()
	if len(files) > 0 {
		in.Proof = &files[0]
	}

	rendition, err := h.usecase.AddExpense(c.Request.Context(), actor(c), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(response.FromRendition(rendition)))
}

func (h *RenditionHandler) AddAttachments(c *gin.Context) {
	files, closeFiles, err := formFiles(c, "files")
	if err != nil {
		respondAppError(c, errInvalidUpload)
		return
	}
	defer closeFiles()

	rendition, err := h.usecase.AddAttachments(c.Request.Context(), actor(c), c.Param("id"), files)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(response.FromRendition(rendition)))
}

// ReconcileLinks repairs request/rendition back-references written before links were transactional.
func (h *RenditionHandler) ReconcileLinks(c *gin.Context) {
	report, err := h.usecase.ReconcileLinks(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(report))
}
