package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

func TestRenditionRepository_CreateLinked(t *testing.T) {
	ctx := context.Background()

	t.Run("missing request", func(t *testing.T) {
		s := NewStore()
		_, err := s.Renditions().CreateLinked(ctx, entities.Rendition{ID: "r-1", Folio: "RND-250517-001", ServiceRequestID: "nope"})
		if !errors.Is(err, interfaces.ErrReferenceMissing) {
			t.Fatalf("expected ErrReferenceMissing, got %v", err)
		}
	})

	t.Run("links and guards folio", func(t *testing.T) {
		s := NewStore()
		if _, err := s.ServiceRequests().Create(ctx, entities.ServiceRequest{ID: "sr-1", RequestNumber: "SR-2505-0001"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := s.Renditions().CreateLinked(ctx, entities.Rendition{ID: "r-1", Folio: "RND-250517-001", ServiceRequestID: "sr-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := s.Renditions().CreateLinked(ctx, entities.Rendition{ID: "r-2", Folio: "RND-250517-001", ServiceRequestID: "sr-1"})
		if !errors.Is(err, interfaces.ErrDuplicateKey) {
			t.Fatalf("expected ErrDuplicateKey, got %v", err)
		}
		sr, _ := s.ServiceRequests().GetByID(ctx, "sr-1")
		if len(sr.Renditions) != 1 || sr.Renditions[0] != "r-1" {
			t.Fatalf("expected only r-1 linked, got %v", sr.Renditions)
		}
	})
}

func TestServiceRequestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.ServiceRequests()
	now := time.Date(2025, 5, 17, 10, 0, 0, 0, time.UTC)
	_, _ = repo.Create(ctx, entities.ServiceRequest{ID: "sr-1", RequestNumber: "SR-2505-0001", Status: entities.RequestStatusRequested})

	entry := entities.HistoryEntry{Status: string(entities.RequestStatusAccepted), ChangedBy: "admin", ChangedAt: now}
	updated, err := repo.UpdateStatus(ctx, "sr-1", entities.RequestStatusRequested, entry, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != entities.RequestStatusAccepted || len(updated.History) != 1 {
		t.Fatalf("unexpected request %+v", updated)
	}

	_, err = repo.UpdateStatus(ctx, "sr-1", entities.RequestStatusRequested, entry, nil)
	if !errors.Is(err, interfaces.ErrStaleStatus) {
		t.Fatalf("expected ErrStaleStatus, got %v", err)
	}

	missing, err := repo.UpdateStatus(ctx, "nope", entities.RequestStatusRequested, entry, nil)
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero value for missing request, got %+v %v", missing, err)
	}
}

func TestRenditionRepository_AppendExpenseSubmits(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_, _ = s.ServiceRequests().Create(ctx, entities.ServiceRequest{ID: "sr-1", RequestNumber: "SR-2505-0001"})
	_, _ = s.Renditions().CreateLinked(ctx, entities.Rendition{ID: "r-1", Folio: "RND-250517-001", ServiceRequestID: "sr-1", Status: entities.RenditionStatusPending})

	submitted := &entities.HistoryEntry{Status: string(entities.RenditionStatusSubmitted), ChangedBy: "tech"}
	r, err := s.Renditions().AppendExpense(ctx, "r-1", entities.Expense{ID: "e-1", Category: "Materiales", Amount: 50000}, entities.RenditionStatusPending, submitted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Status != entities.RenditionStatusSubmitted || len(r.Expenses) != 1 {
		t.Fatalf("unexpected rendition %+v", r)
	}

	_, err = s.Renditions().AppendExpense(ctx, "r-1", entities.Expense{ID: "e-2"}, entities.RenditionStatusPending, nil)
	if !errors.Is(err, interfaces.ErrStaleStatus) {
		t.Fatalf("expected ErrStaleStatus, got %v", err)
	}
}

func TestProjectRepository_ListPaging(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"p-1", "p-2", "p-3"} {
		_, _ = s.Projects().Create(ctx, entities.Project{ID: id, Name: id, Technician: "tech", CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}

	items, total, err := s.Projects().List(ctx, interfaces.ProjectFilter{Technician: "tech", PageQuery: interfaces.PageQuery{Page: 1, Limit: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(items) != 2 || items[0].ID != "p-3" {
		t.Fatalf("unexpected page total=%d items=%v", total, items)
	}
}

func TestLatestIdentifier_SameInstant(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	at := time.Date(2025, 5, 17, 10, 0, 0, 0, time.UTC)

	if got, _ := s.ServiceRequests().LatestIdentifier(ctx); got != "" {
		t.Fatalf("expected empty store to have no identifier, got %s", got)
	}

	for _, n := range []string{"SR-2505-0002", "SR-2505-0010", "SR-2505-0001", "SR-2505-0009"} {
		if _, err := s.ServiceRequests().Create(ctx, entities.ServiceRequest{ID: n, RequestNumber: n, CreatedAt: at}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	_, _ = s.ServiceRequests().Create(ctx, entities.ServiceRequest{ID: "old", RequestNumber: "SR-2504-0099", CreatedAt: at.Add(-time.Hour)})
	if got, _ := s.ServiceRequests().LatestIdentifier(ctx); got != "SR-2505-0010" {
		t.Fatalf("expected SR-2505-0010, got %s", got)
	}

	for _, f := range []string{"RND-250517-003", "RND-250517-011", "RND-250517-004"} {
		if _, err := s.Renditions().CreateLinked(ctx, entities.Rendition{ID: f, Folio: f, ServiceRequestID: "old", CreatedAt: at}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got, _ := s.Renditions().LatestIdentifier(ctx); got != "RND-250517-011" {
		t.Fatalf("expected RND-250517-011, got %s", got)
	}
}
