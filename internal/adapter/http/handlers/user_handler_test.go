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
	"fieldops/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUserHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("short password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewUserHandler(mocks.NewMockIUserUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/users", withPrincipal(adminPrincipal), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(
			`{"first_name":"Ana","last_name":"Rojas","email":"ana@example.com","password":"123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", withPrincipal(adminPrincipal), h.Create)

		uc.EXPECT().Create(gomock.Any(), adminPrincipal.Subject, usecase.UserInput{
			FirstName: "Ana",
			LastName:  "Rojas",
			Email:     "ana@example.com",
			Password:  "secreto",
			Role:      entities.RoleTechnician,
		}).Return(entities.User{}, usecase.ErrDuplicateEmail)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(
			`{"first_name":"Ana","last_name":"Rojas","email":"ana@example.com","password":"secreto","role":"technician"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestUserHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUserUseCase(ctrl)
	h := NewUserHandler(uc)

	r := gin.New()
	r.GET("/v1/users", withPrincipal(adminPrincipal), h.List)

	uc.EXPECT().List(gomock.Any(), adminPrincipal.Subject, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ access.Subject, f usecase.UserFilter) ([]entities.User, int, error) {
			if f.Role != entities.RoleTechnician || f.Active == nil || !*f.Active {
				t.Fatalf("unexpected filter: %+v", f)
			}
			if f.PageQuery != (interfaces.PageQuery{Page: 2, Limit: 5}) {
				t.Fatalf("unexpected page: %+v", f.PageQuery)
			}
			return []entities.User{{ID: "u-1", FirstName: "Ana", LastName: "Rojas", PasswordHash: "hash"}}, 6, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/users?role=technician&active=true&page=2&limit=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("hash")) {
		t.Fatalf("password hash leaked: %s", w.Body.String())
	}
}

func TestUserHandler_Deactivate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUserUseCase(ctrl)
	h := NewUserHandler(uc)

	r := gin.New()
	r.DELETE("/v1/users/:id", withPrincipal(adminPrincipal), h.Deactivate)

	uc.EXPECT().Deactivate(gomock.Any(), adminPrincipal.Subject, "u-9").Return(usecase.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/v1/users/u-9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
