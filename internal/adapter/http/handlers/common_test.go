package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldops/internal/adapter/http/middleware"
	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	adminPrincipal = usecase.Principal{Subject: access.Subject{ID: "admin-1", Role: entities.RoleAdmin}}
	techPrincipal  = usecase.Principal{Subject: access.Subject{ID: "tech-1", Role: entities.RoleTechnician}}
)

func withPrincipal(p usecase.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetPrincipal(c, p)
		c.Next()
	}
}

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"denial", access.Deny("you do not have access to this project"), http.StatusForbidden, "FORBIDDEN"},
		{"wrapped not found", fmt.Errorf("load: %w", usecase.ErrProjectNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"validation", usecase.ErrInvalidID, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"rejection incomplete", entities.ErrRejectionIncomplete, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"invalid expense", entities.ErrInvalidExpense, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"illegal transition", entities.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
		{"locked", entities.ErrEntityLocked, http.StatusConflict, "LOCKED"},
		{"duplicate identifier", usecase.ErrDuplicateIdentifier, http.StatusConflict, "DUPLICATE_IDENTIFIER"},
		{"stale status", usecase.ErrConcurrentStatusChange, http.StatusConflict, "CONCURRENT_UPDATE"},
		{"duplicate email", usecase.ErrDuplicateEmail, http.StatusConflict, "CONFLICT"},
		{"bad credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unexpected", errors.New("dynamodb timeout"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapError(tc.err)
			if appErr.HTTPStatus != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, appErr.HTTPStatus)
			}
			if appErr.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, appErr.Code)
			}
		})
	}

	t.Run("denial keeps its reason", func(t *testing.T) {
		appErr := mapError(access.Deny("only admins can update projects"))
		if appErr.Message != "only admins can update projects" {
			t.Fatalf("expected denial reason, got %q", appErr.Message)
		}
	})

	t.Run("unexpected errors are not leaked", func(t *testing.T) {
		appErr := mapError(errors.New("table fieldops-projects not found"))
		if appErr.Message != "An internal error occurred" {
			t.Fatalf("expected generic message, got %q", appErr.Message)
		}
	})
}

func TestParseDate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got, err := parseDate("", false)
		if err != nil || got != nil {
			t.Fatalf("expected nil, got %v %v", got, err)
		}
	})

	t.Run("day start", func(t *testing.T) {
		got, err := parseDate("2025-05-01", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("expected start of day, got %v", got)
		}
	})

	t.Run("day end is inclusive", func(t *testing.T) {
		got, err := parseDate("2025-05-01", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Day() != 1 || got.Hour() != 23 || got.Minute() != 59 {
			t.Fatalf("expected last instant of the day, got %v", got)
		}
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := parseDate("2025-05-01T10:30:00Z", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Hour() != 10 {
			t.Fatalf("expected timestamp to be kept, got %v", got)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := parseDate("01/05/2025", false); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestFormFiles_NotMultipart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Request.Header.Set("Content-Type", "application/json")

	files, closeFiles, err := formFiles(c, "files")
	defer closeFiles()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no files, got %d", len(files))
	}
}

func TestPageQuery_Defaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=0&limit=abc", nil)

	q := pageQuery(c)
	if q.Page != 1 || q.Limit != 10 {
		t.Fatalf("expected page 1 limit 10, got %+v", q)
	}
}
