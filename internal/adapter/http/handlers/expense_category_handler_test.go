package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fieldops/internal/adapter/http/handlers/mocks"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestExpenseCategoryHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		principal       usecase.Principal
		query           string
		includeInactive bool
	}{
		{name: "active only by default", principal: adminPrincipal, query: "", includeInactive: false},
		{name: "admin may include inactive", principal: adminPrincipal, query: "?all=true", includeInactive: true},
		{name: "technician cannot include inactive", principal: techPrincipal, query: "?all=true", includeInactive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIExpenseCategoryUseCase(ctrl)
			h := NewExpenseCategoryHandler(uc)

			r := gin.New()
			r.GET("/v1/expense-categories", withPrincipal(tt.principal), h.List)

			uc.EXPECT().List(gomock.Any(), tt.includeInactive).
				Return([]entities.ExpenseCategory{{ID: "c-1", Name: "Materiales", Active: true}}, nil)

			req := httptest.NewRequest(http.MethodGet, "/v1/expense-categories"+tt.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), "Materiales") {
				t.Fatalf("expected category in body, got %s", w.Body.String())
			}
		})
	}
}

func TestExpenseCategoryHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		body     string
		mockFunc func(uc *mocks.MockIExpenseCategoryUseCase)
		wantCode int
	}{
		{
			name:     "missing name",
			body:     `{"description":"x"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duplicate",
			body: `{"name":"Materiales"}`,
			mockFunc: func(uc *mocks.MockIExpenseCategoryUseCase) {
				uc.EXPECT().Create(gomock.Any(), adminPrincipal.Subject, "Materiales", "").
					Return(entities.ExpenseCategory{}, usecase.ErrDuplicateCategory)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "created",
			body: `{"name":"Peajes","description":"Autopistas"}`,
			mockFunc: func(uc *mocks.MockIExpenseCategoryUseCase) {
				uc.EXPECT().Create(gomock.Any(), adminPrincipal.Subject, "Peajes", "Autopistas").
					Return(entities.ExpenseCategory{ID: "c-9", Name: "Peajes", Active: true}, nil)
			},
			wantCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIExpenseCategoryUseCase(ctrl)
			if tt.mockFunc != nil {
				tt.mockFunc(uc)
			}
			h := NewExpenseCategoryHandler(uc)

			r := gin.New()
			r.POST("/v1/expense-categories", withPrincipal(adminPrincipal), h.Create)

			req := httptest.NewRequest(http.MethodPost, "/v1/expense-categories", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}
