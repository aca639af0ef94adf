package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	body := e.ToHTTPError()
	if body.Success || body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if simple.Error() != "NOT_FOUND: Not found" {
		t.Fatalf("unexpected message %q", simple.Error())
	}
}

func TestPage(t *testing.T) {
	env := Page([]int{1, 2}, 2, 21, 1, 10)
	if !env.Success || *env.Count != 2 {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if env.Pagination.Pages != 3 || env.Pagination.Total != 21 {
		t.Fatalf("unexpected pagination: %+v", env.Pagination)
	}
	if Page(nil, 0, 0, 1, 0).Pagination.Pages != 0 {
		t.Fatalf("expected zero pages for zero limit")
	}
}
