package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldops/internal/adapter/http/handlers/mocks"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl), mocks.NewMockIUserUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(auth, mocks.NewMockIUserUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		auth.EXPECT().Login(gomock.Any(), "ana@example.com", "wrong").Return(usecase.Session{}, usecase.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"ana@example.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success hides the password hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(auth, mocks.NewMockIUserUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		auth.EXPECT().Login(gomock.Any(), "ana@example.com", "secret1").Return(usecase.Session{
			Token:     "jwt-token",
			ExpiresAt: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
			User: entities.User{
				ID:           "u-1",
				FirstName:    "Ana",
				LastName:     "Rojas",
				Email:        "ana@example.com",
				PasswordHash: "$2a$10$hash",
				Role:         entities.RoleTechnician,
				Active:       true,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"ana@example.com","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("$2a$10$hash")) {
			t.Fatalf("password hash leaked: %s", w.Body.String())
		}

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				Token string `json:"token"`
				User  struct {
					FullName string `json:"full_name"`
				} `json:"user"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if !body.Success || body.Data.Token != "jwt-token" || body.Data.User.FullName != "Ana Rojas" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	auth := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(auth, mocks.NewMockIUserUseCase(ctrl))

	r := gin.New()
	r.GET("/v1/auth/me", withPrincipal(techPrincipal), h.Me)

	auth.EXPECT().Me(gomock.Any(), techPrincipal.Subject).Return(entities.User{ID: "tech-1", Role: entities.RoleTechnician}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	auth := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(auth, mocks.NewMockIUserUseCase(ctrl))

	p := techPrincipal
	p.TokenID = "jti-1"
	r := gin.New()
	r.POST("/v1/auth/logout", withPrincipal(p), h.Logout)

	auth.EXPECT().Logout(gomock.Any(), p).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
