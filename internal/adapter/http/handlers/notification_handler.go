package handlers

import (
	"net/http"

	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	h.list(c, false)
}

func (h *NotificationHandler) ListUnread(c *gin.Context) {
	h.list(c, true)
}

func (h *NotificationHandler) list(c *gin.Context, unreadOnly bool) {
	q := pageQuery(c)
	notifications, total, err := h.usecase.List(c.Request.Context(), actor(c), unreadOnly, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.Page(notifications, len(notifications), total, q.Page, q.Limit))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	n, err := h.usecase.MarkRead(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(n))
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	count, err := h.usecase.MarkAllRead(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OKWithMessage(gin.H{"updated": count}, "All notifications marked as read"))
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OKWithMessage(nil, "Notification deleted"))
}
