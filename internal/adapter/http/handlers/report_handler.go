package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) Projects(c *gin.Context) {
	r, ok := h.rangeOrAbort(c)
	if !ok {
		return
	}
	report, err := h.usecase.Projects(c.Request.Context(), actor(c), r)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(report))
}

func (h *ReportHandler) ServiceRequests(c *gin.Context) {
	r, ok := h.rangeOrAbort(c)
	if !ok {
		return
	}
	report, err := h.usecase.ServiceRequests(c.Request.Context(), actor(c), r)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(report))
}

func (h *ReportHandler) Renditions(c *gin.Context) {
	r, ok := h.rangeOrAbort(c)
	if !ok {
		return
	}
	report, err := h.usecase.Renditions(c.Request.Context(), actor(c), r)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(report))
}

func (h *ReportHandler) TechnicianPerformance(c *gin.Context) {
	r, ok := h.rangeOrAbort(c)
	if !ok {
		return
	}
	report, err := h.usecase.TechnicianPerformance(c.Request.Context(), actor(c), r)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(report))
}

// ExportRenditions streams the renditions workbook. It is buffered so failures still get a JSON body.
func (h *ReportHandler) ExportRenditions(c *gin.Context) {
	r, ok := h.rangeOrAbort(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.usecase.ExportRenditions(c.Request.Context(), actor(c), r, &buf); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="rendiciones_%s.xlsx"`, time.Now().Format(dateLayout)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ReportHandler) rangeOrAbort(c *gin.Context) (usecase.DateRange, bool) {
	r, err := dateRange(c)
	if err != nil {
		respondAppError(c, errInvalidDate)
		return usecase.DateRange{}, false
	}
	return r, true
}
