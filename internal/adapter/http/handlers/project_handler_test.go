package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldops/internal/adapter/http/handlers/mocks"
	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewProjectHandler(mocks.NewMockIProjectUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/projects", withPrincipal(adminPrincipal), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"location":"Antofagasta"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", withPrincipal(adminPrincipal), h.Create)

		uc.EXPECT().Create(gomock.Any(), adminPrincipal.Subject, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ access.Subject, in usecase.ProjectInput) (entities.Project, error) {
				if in.Name != "Planta Norte" || in.OrderNumber != "OC-77" || len(in.Clients) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Project{ID: "p-1", Name: in.Name, Status: entities.ProjectStatusInProgress}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(
			`{"name":"Planta Norte","location":"Antofagasta","order_number":"OC-77","clients":["c-1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("forbidden carries the reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", withPrincipal(techPrincipal), h.Create)

		uc.EXPECT().Create(gomock.Any(), techPrincipal.Subject, gomock.Any()).
			Return(entities.Project{}, access.Deny("only admins can create projects"))

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"P","location":"L"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("only admins can create projects")) {
			t.Fatalf("expected reason in body, got %s", w.Body.String())
		}
	})

	t.Run("duplicate order number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", withPrincipal(adminPrincipal), h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Project{}, usecase.ErrDuplicateOrderNumber)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"P","location":"L","order_number":"OC-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestProjectHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	r := gin.New()
	r.GET("/v1/projects", withPrincipal(adminPrincipal), h.List)

	uc.EXPECT().List(gomock.Any(), adminPrincipal.Subject, interfaces.ProjectFilter{
		Status:    entities.ProjectStatusPaused,
		Search:    "norte",
		PageQuery: interfaces.PageQuery{Page: 2, Limit: 5},
	}).Return([]entities.Project{{ID: "p-6"}}, 6, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects?status=En+pausa&search=norte&page=2&limit=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Count      int `json:"count"`
		Pagination struct {
			Total int `json:"total"`
			Page  int `json:"page"`
			Pages int `json:"pages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Count != 1 || body.Pagination.Total != 6 || body.Pagination.Page != 2 || body.Pagination.Pages != 2 {
		t.Fatalf("unexpected pagination: %s", w.Body.String())
	}
}

func TestProjectHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	r := gin.New()
	r.PATCH("/v1/projects/:id/status", withPrincipal(adminPrincipal), h.ChangeStatus)

	uc.EXPECT().ChangeStatus(gomock.Any(), adminPrincipal.Subject, "p-1", entities.ProjectStatusCompleted, "cierre").
		Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusCompleted}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/status", bytes.NewBufferString(`{"status":"Finalizado","notes":"cierre"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestProjectHandler_LocationPoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("coordinates out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewProjectHandler(mocks.NewMockIProjectUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/projects/:id/location-points", withPrincipal(adminPrincipal), h.AddLocationPoint)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/location-points", bytes.NewBufferString(`{"name":"Acceso","coordinates":[-70.4,-123]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("added", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/location-points", withPrincipal(adminPrincipal), h.AddLocationPoint)

		uc.EXPECT().AddLocationPoint(gomock.Any(), adminPrincipal.Subject, "p-1", usecase.LocationPointInput{
			Name:      "Acceso",
			Type:      entities.LocationPointOther,
			Longitude: -70.4,
			Latitude:  -23.6,
		}).Return(entities.LocationPoint{ID: "lp-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/location-points", bytes.NewBufferString(`{"name":"Acceso","coordinates":[-70.4,-23.6]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("geojson", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id/location-points/geojson", withPrincipal(adminPrincipal), h.LocationPointsGeoJSON)

		uc.EXPECT().LocationPointsGeoJSON(gomock.Any(), adminPrincipal.Subject, "p-1").
			Return([]byte(`{"type":"FeatureCollection","features":[]}`), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1/location-points/geojson", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != geoJSONContentType {
			t.Fatalf("expected %s, got %s", geoJSONContentType, ct)
		}
	})
}

func TestProjectHandler_Get_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	r := gin.New()
	r.GET("/v1/projects/:id", withPrincipal(adminPrincipal), h.Get)

	uc.EXPECT().Get(gomock.Any(), adminPrincipal.Subject, "missing").Return(entities.Project{}, usecase.ErrProjectNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
