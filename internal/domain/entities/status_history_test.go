package entities

import (
	"errors"
	"testing"
	"time"
)

func TestAppendHistory(t *testing.T) {
	t.Run("does not mutate input", func(t *testing.T) {
		now := time.Now()
		base := make([]HistoryEntry, 1, 4)
		base[0] = HistoryEntry{Status: "a", ChangedBy: "u1", ChangedAt: now}

		out := AppendHistory(base, HistoryEntry{Status: "b", ChangedBy: "u2", ChangedAt: now})
		out[0].Status = "changed"

		if base[0].Status != "a" {
			t.Fatalf("expected original entry untouched, got %q", base[0].Status)
		}
		if len(out) != 2 || out[1].Status != "b" {
			t.Fatalf("unexpected ledger: %+v", out)
		}
		_ = append(base, HistoryEntry{Status: "x"})
		if out[1].Status != "b" {
			t.Fatalf("ledger aliased with input")
		}
	})

	t.Run("last status", func(t *testing.T) {
		if LastHistoryStatus(nil) != "" {
			t.Fatalf("expected empty status for empty ledger")
		}
		h := AppendHistory(nil, HistoryEntry{Status: "one"})
		h = AppendHistory(h, HistoryEntry{Status: "two"})
		if LastHistoryStatus(h) != "two" {
			t.Fatalf("expected two, got %s", LastHistoryStatus(h))
		}
	})
}

func TestServiceRequest_Transitions(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	legal := map[RequestStatus][]RequestStatus{
		RequestStatusRequested:   {RequestStatusUnderReview, RequestStatusAccepted, RequestStatusCancelled},
		RequestStatusUnderReview: {RequestStatusAccepted, RequestStatusCancelled},
		RequestStatusAccepted:    {RequestStatusCompleted, RequestStatusCancelled},
	}
	all := []RequestStatus{RequestStatusRequested, RequestStatusUnderReview, RequestStatusAccepted, RequestStatusCompleted, RequestStatusCancelled}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, ok := range legal[from] {
				if ok == to {
					want = true
				}
			}
			if got := from.CanTransition(to); got != want {
				t.Fatalf("%s -> %s: expected %v, got %v", from, to, want, got)
			}
		}
	}

	t.Run("seed writes exactly one entry", func(t *testing.T) {
		var sr ServiceRequest
		sr.Seed("client-1", now)
		if sr.Status != RequestStatusRequested || sr.Priority != PriorityMedium {
			t.Fatalf("unexpected defaults: %+v", sr)
		}
		if len(sr.History) != 1 || sr.History[0].ChangedBy != "client-1" || sr.History[0].Notes != CreatedNotes {
			t.Fatalf("unexpected history: %+v", sr.History)
		}
	})

	t.Run("legal transition appends", func(t *testing.T) {
		var sr ServiceRequest
		sr.Seed("client-1", now)
		e, err := sr.Transition(StatusTransition[RequestStatus]{To: RequestStatusAccepted, Actor: "tech-1", Notes: "ok"}, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ChangedBy != "tech-1" || len(sr.History) != 2 || LastHistoryStatus(sr.History) != string(sr.Status) {
			t.Fatalf("ledger out of sync: %+v", sr)
		}
	})

	t.Run("illegal transition rejected without side effects", func(t *testing.T) {
		var sr ServiceRequest
		sr.Seed("client-1", now)
		_, err := sr.Transition(StatusTransition[RequestStatus]{To: RequestStatusCompleted, Actor: "tech-1"}, now)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if sr.Status != RequestStatusRequested || len(sr.History) != 1 {
			t.Fatalf("request mutated: %+v", sr)
		}
	})

	t.Run("missing actor", func(t *testing.T) {
		var sr ServiceRequest
		sr.Seed("client-1", now)
		_, err := sr.Transition(StatusTransition[RequestStatus]{To: RequestStatusAccepted}, now)
		if !errors.Is(err, ErrMissingActor) {
			t.Fatalf("expected ErrMissingActor, got %v", err)
		}
		if len(sr.History) != 1 {
			t.Fatalf("expected no entry appended")
		}
	})

	t.Run("force completes from any state", func(t *testing.T) {
		var sr ServiceRequest
		sr.Seed("client-1", now)
		_, changed, err := sr.ForceStatus(StatusTransition[RequestStatus]{To: RequestStatusCompleted, Actor: "admin-1"}, now)
		if err != nil || !changed {
			t.Fatalf("expected change, got changed=%v err=%v", changed, err)
		}
		if sr.CompletionDate == nil || LastHistoryStatus(sr.History) != string(RequestStatusCompleted) {
			t.Fatalf("unexpected request: %+v", sr)
		}
		if sr.History[1].ChangedBy != "admin-1" {
			t.Fatalf("expected reviewer attribution, got %s", sr.History[1].ChangedBy)
		}

		_, changed, err = sr.ForceStatus(StatusTransition[RequestStatus]{To: RequestStatusCompleted, Actor: "admin-1"}, now)
		if err != nil || changed || len(sr.History) != 2 {
			t.Fatalf("expected no-op, got changed=%v err=%v history=%d", changed, err, len(sr.History))
		}
	})
}

func TestRendition_Lifecycle(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	newRendition := func() *Rendition {
		r := &Rendition{Technician: "tech-1"}
		r.Seed("tech-1", now)
		return r
	}

	t.Run("submitted once", func(t *testing.T) {
		r := newRendition()
		changed, err := r.MarkSubmitted("tech-1", now)
		if err != nil || !changed || r.Status != RenditionStatusSubmitted {
			t.Fatalf("expected submitted, got %s changed=%v err=%v", r.Status, changed, err)
		}
		changed, err = r.MarkSubmitted("tech-1", now)
		if err != nil || changed || len(r.History) != 2 {
			t.Fatalf("expected second call to be a no-op")
		}
	})

	t.Run("approve requires review", func(t *testing.T) {
		r := newRendition()
		if err := r.Approve("admin-1", "", now); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		_, _ = r.MarkSubmitted("tech-1", now)
		if _, err := r.Transition(StatusTransition[RenditionStatus]{To: RenditionStatusUnderReview, Actor: "admin-1"}, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := r.Approve("admin-1", "ok", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.IsLocked() || r.ReviewedBy != "admin-1" || r.ReviewDate == nil {
			t.Fatalf("unexpected review fields: %+v", r)
		}
		if len(r.History) != 4 || LastHistoryStatus(r.History) != string(RenditionStatusApproved) {
			t.Fatalf("unexpected history: %+v", r.History)
		}
	})

	t.Run("reject requires reason and comments", func(t *testing.T) {
		r := newRendition()
		_, _ = r.MarkSubmitted("tech-1", now)
		_, _ = r.Transition(StatusTransition[RenditionStatus]{To: RenditionStatusUnderReview, Actor: "admin-1"}, now)

		if err := r.Reject("admin-1", RejectionDuplicate, " ", now); !errors.Is(err, ErrRejectionIncomplete) {
			t.Fatalf("expected ErrRejectionIncomplete, got %v", err)
		}
		if err := r.Reject("admin-1", "bogus", "why", now); !errors.Is(err, ErrRejectionIncomplete) {
			t.Fatalf("expected ErrRejectionIncomplete, got %v", err)
		}
		if err := r.Reject("admin-1", RejectionWrongAmounts, "total off", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.RejectionReason != RejectionWrongAmounts || r.RejectionComments != "total off" {
			t.Fatalf("unexpected rejection fields: %+v", r)
		}
	})

	t.Run("expense validation", func(t *testing.T) {
		if err := (Expense{Category: "Materiales", Amount: 0}).Validate(); !errors.Is(err, ErrInvalidExpense) {
			t.Fatalf("expected ErrInvalidExpense, got %v", err)
		}
		if err := (Expense{Category: "Materiales", Amount: 50000}).Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProject_ChangeStatus(t *testing.T) {
	now := time.Now()
	var p Project
	p.Seed("admin-1", now)

	_, changed, err := p.ChangeStatus(StatusTransition[ProjectStatus]{To: ProjectStatusInProgress, Actor: "admin-1"}, now)
	if err != nil || changed {
		t.Fatalf("same status must be a no-op, got changed=%v err=%v", changed, err)
	}
	for _, to := range []ProjectStatus{ProjectStatusPaused, ProjectStatusCancelled, ProjectStatusInProgress, ProjectStatusCompleted} {
		if _, changed, err := p.ChangeStatus(StatusTransition[ProjectStatus]{To: to, Actor: "admin-1"}, now); err != nil || !changed {
			t.Fatalf("expected change to %s, got changed=%v err=%v", to, changed, err)
		}
	}
	if len(p.StatusHistory) != 5 || LastHistoryStatus(p.StatusHistory) != string(p.Status) {
		t.Fatalf("unexpected history: %+v", p.StatusHistory)
	}
	if _, _, err := p.ChangeStatus(StatusTransition[ProjectStatus]{To: "Archivado", Actor: "admin-1"}, now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestComputeMetrics(t *testing.T) {
	m := ComputeMetrics([]ServiceRequest{
		{Status: RequestStatusRequested},
		{Status: RequestStatusAccepted},
		{Status: RequestStatusCompleted},
		{Status: RequestStatusCancelled},
	})
	if m.TotalRequests != 4 || m.OpenRequests != 2 || m.CompletedRequests != 1 {
		t.Fatalf("unexpected metrics: %+v", m)
	}
}
