package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldops/internal/adapter/http/handlers/mocks"
	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRenditionHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRenditionUseCase(ctrl)
		h := NewRenditionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/renditions/:id/approve", withPrincipal(adminPrincipal), h.Approve)

		uc.EXPECT().Approve(gomock.Any(), adminPrincipal.Subject, "rd-1", "").
			Return(entities.Rendition{
				ID:       "rd-1",
				Status:   entities.RenditionStatusApproved,
				Expenses: []entities.Expense{{Category: "Materiales", Amount: 50000}},
			}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/renditions/rd-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Data struct {
				TotalAmount float64 `json:"total_amount"`
				Locked      bool    `json:"locked"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Data.TotalAmount != 50000 || !body.Data.Locked {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("decided rendition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRenditionUseCase(ctrl)
		h := NewRenditionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/renditions/:id/approve", withPrincipal(adminPrincipal), h.Approve)

		uc.EXPECT().Approve(gomock.Any(), gomock.Any(), "rd-1", "ok").Return(entities.Rendition{}, entities.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/renditions/rd-1/approve", bytes.NewBufferString(`{"comments":"ok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestRenditionHandler_Reject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewRenditionHandler(mocks.NewMockIRenditionUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/renditions/:id/reject", withPrincipal(adminPrincipal), h.Reject)

		req := httptest.NewRequest(http.MethodPatch, "/v1/renditions/rd-1/reject", bytes.NewBufferString(`{"rejection_comments":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("incomplete rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRenditionUseCase(ctrl)
		h := NewRenditionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/renditions/:id/reject", withPrincipal(adminPrincipal), h.Reject)

		uc.EXPECT().Reject(gomock.Any(), adminPrincipal.Subject, "rd-1", entities.RejectionWrongAmounts, "").
			Return(entities.Rendition{}, entities.ErrRejectionIncomplete)

		req := httptest.NewRequest(http.MethodPatch, "/v1/renditions/rd-1/reject", bytes.NewBufferString(`{"rejection_reason":"Montos incorrectos"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRenditionHandler_AddExpense(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRenditionUseCase(ctrl)
	h := NewRenditionHandler(uc)

	r := gin.New()
	r.POST("/v1/renditions/:id/expenses", withPrincipal(techPrincipal), h.AddExpense)

	uc.EXPECT().AddExpense(gomock.Any(), techPrincipal.Subject, "rd-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ access.Subject, _ string, in usecase.ExpenseInput) (entities.Rendition, error) {
			if in.Category != "Materiales" || in.Amount != 50000 {
				t.Fatalf("unexpected expense: %+v", in)
			}
			if in.Proof == nil || in.Proof.Name != "boleta.pdf" {
				t.Fatalf("expected payment proof, got %+v", in.Proof)
			}
			content, err := io.ReadAll(in.Proof.Body)
			if err != nil || string(content) != "%PDF-1.4" {
				t.Fatalf("unexpected proof body %q err=%v", content, err)
			}
			return entities.Rendition{ID: "rd-1", Expenses: []entities.Expense{{Category: in.Category, Amount: in.Amount}}}, nil
		})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("category", "Materiales")
	_ = mw.WriteField("amount", "50000")
	part, err := mw.CreateFormFile("payment_proof", "boleta.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = part.Write([]byte("%PDF-1.4"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/renditions/rd-1/expenses", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRenditionHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewRenditionHandler(mocks.NewMockIRenditionUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/renditions", withPrincipal(adminPrincipal), h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/renditions?start_date=yesterday", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRenditionUseCase(ctrl)
		h := NewRenditionHandler(uc)

		client := usecase.Principal{Subject: access.Subject{ID: "c-1", Role: entities.RoleClient}}
		r := gin.New()
		r.GET("/v1/renditions", withPrincipal(client), h.List)

		uc.EXPECT().List(gomock.Any(), client.Subject, gomock.Any()).Return(nil, 0, access.Deny("clients cannot list renditions"))

		req := httptest.NewRequest(http.MethodGet, "/v1/renditions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
