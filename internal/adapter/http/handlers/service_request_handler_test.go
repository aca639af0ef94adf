package handlers

import (
	"bytes"
	"context"
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

func TestServiceRequestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewServiceRequestHandler(mocks.NewMockIServiceRequestUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/service-requests", withPrincipal(techPrincipal), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-requests", bytes.NewBufferString(
			`{"project":"p-1","title":"Fuga","description":"Fuga de agua","location":{"address":"Sala 2","coordinates":[1]}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/service-requests", withPrincipal(techPrincipal), h.Create)

		uc.EXPECT().Create(gomock.Any(), techPrincipal.Subject, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ access.Subject, in usecase.ServiceRequestInput) (entities.ServiceRequest, error) {
				if in.Priority != entities.PriorityHigh || in.Location == nil || in.Location.Coordinates == nil {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.ServiceRequest{ID: "sr-1", RequestNumber: "SR-2505-0001"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/service-requests", bytes.NewBufferString(
			`{"project":"p-1","title":"Fuga","description":"Fuga de agua","priority":"Alta","location":{"address":"Sala 2","coordinates":[-70.4,-23.6]}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("SR-2505-0001")) {
			t.Fatalf("expected request number in body, got %s", w.Body.String())
		}
	})

	t.Run("identifier exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/service-requests", withPrincipal(techPrincipal), h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, usecase.ErrDuplicateIdentifier)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-requests", bytes.NewBufferString(`{"project":"p-1","title":"T","description":"D"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestServiceRequestHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, http.StatusOK},
		{"illegal transition", entities.ErrInvalidTransition, http.StatusConflict},
		{"concurrent change", usecase.ErrConcurrentStatusChange, http.StatusConflict},
		{"not assigned", access.Deny("only the assigned technician can change the status"), http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIServiceRequestUseCase(ctrl)
			h := NewServiceRequestHandler(uc)

			r := gin.New()
			r.PATCH("/v1/service-requests/:id/status", withPrincipal(techPrincipal), h.ChangeStatus)

			uc.EXPECT().ChangeStatus(gomock.Any(), techPrincipal.Subject, "sr-1", entities.RequestStatusAccepted, "").
				Return(entities.ServiceRequest{ID: "sr-1", Status: entities.RequestStatusAccepted}, tc.err)

			req := httptest.NewRequest(http.MethodPatch, "/v1/service-requests/sr-1/status", bytes.NewBufferString(`{"status":"Aceptada"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestServiceRequestHandler_AddComment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceRequestUseCase(ctrl)
	h := NewServiceRequestHandler(uc)

	r := gin.New()
	r.POST("/v1/service-requests/:id/comments", withPrincipal(techPrincipal), h.AddComment)

	uc.EXPECT().AddComment(gomock.Any(), techPrincipal.Subject, "sr-1", "llegando a las 10").
		Return(entities.Comment{ID: "cm-1", Text: "llegando a las 10"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/service-requests/sr-1/comments", bytes.NewBufferString(`{"text":"llegando a las 10"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}
