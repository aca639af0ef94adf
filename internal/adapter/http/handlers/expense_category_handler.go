package handlers

import (
	"net/http"

	request "fieldops/internal/adapter/http/dto/request"
	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

type ExpenseCategoryHandler struct {
	usecase usecase.IExpenseCategoryUseCase
}

func NewExpenseCategoryHandler(uc usecase.IExpenseCategoryUseCase) *ExpenseCategoryHandler {
	return &ExpenseCategoryHandler{usecase: uc}
}

func (h *ExpenseCategoryHandler) List(c *gin.Context) {
	includeInactive := false
	if v := boolQuery(c, "all"); v != nil && actor(c).IsAdmin() {
		includeInactive = *v
	}

	categories, err := h.usecase.List(c.Request.Context(), includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(categories))
}

func (h *ExpenseCategoryHandler) Create(c *gin.Context) {
	var payload request.ExpenseCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidInput(c, err)
		return
	}

	category, err := h.usecase.Create(c.Request.Context(), actor(c), payload.Name, payload.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(category))
}
