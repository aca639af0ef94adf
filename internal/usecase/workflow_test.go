package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fieldops/internal/adapter/persistence/memory"
	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/identifier"
	"fieldops/internal/infrastructure/storage"
	"fieldops/internal/notification"
	"fieldops/internal/usecase/interfaces"
)

// workflow wires every use case on one in-memory store with inline notification delivery.
type workflow struct {
	store      *memory.Store
	files      *storage.MemoryStore
	users      *UserUseCase
	categories *ExpenseCategoryUseCase
	projects   *ProjectUseCase
	requests   *ServiceRequestUseCase
	renditions *RenditionUseCase
	notices    *NotificationUseCase
	reports    *ReportUseCase

	admin, tech, client access.Subject
}

func newWorkflow(t *testing.T, at time.Time) *workflow {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	clock := func() time.Time { return at }

	dispatcher := notification.NewDispatcher(notification.NewChannelQueue(0), store.Notifications(), store.Users(), notification.DispatcherConfig{MaxAttempts: 1})
	events := notification.NewInline(dispatcher)
	ids := NewIdentifierGenerator(identifier.ModePartition, store.Counters(), store.ServiceRequests(), store.Renditions())

	w := &workflow{
		store:      store,
		files:      storage.NewMemoryStore(""),
		users:      NewUserUseCase(store.Users()),
		categories: NewExpenseCategoryUseCase(store.ExpenseCategories()),
		notices:    NewNotificationUseCase(store.Notifications()),
	}
	w.projects = NewProjectUseCase(store.Projects(), store.ServiceRequests(), store.Users(), w.files, events)
	w.requests = NewServiceRequestUseCase(store.ServiceRequests(), store.Projects(), store.Users(), ids, w.files, events, w.projects)
	w.renditions = NewRenditionUseCase(store.Renditions(), store.ServiceRequests(), store.Projects(), store.ExpenseCategories(), ids, w.files, events, w.projects)
	w.reports = NewReportUseCase(store.Projects(), store.ServiceRequests(), store.Renditions(), store.Users())
	w.users.now, w.categories.now, w.notices.now = clock, clock, clock
	w.projects.now, w.requests.now, w.renditions.now = clock, clock, clock
	w.reports.now = clock

	admin, _, err := w.users.EnsureAdmin(ctx, UserInput{FirstName: "Admin", LastName: "Root", Email: "admin@example.com", Password: "secreto"})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	w.admin = access.Subject{ID: admin.ID, Role: entities.RoleAdmin}
	w.tech = w.mustUser(t, "Tomas", "tech@example.com", entities.RoleTechnician)
	w.client = w.mustUser(t, "Carla", "client@example.com", entities.RoleClient)

	if _, err := w.categories.SeedDefaults(ctx); err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	return w
}

func (w *workflow) mustUser(t *testing.T, name, email string, role entities.Role) access.Subject {
	t.Helper()
	u, err := w.users.Create(context.Background(), w.admin, UserInput{FirstName: name, LastName: "Test", Email: email, Password: "secreto", Role: role})
	if err != nil {
		t.Fatalf("create %s: %v", role, err)
	}
	return access.Subject{ID: u.ID, Role: role}
}

func (w *workflow) mustProject(t *testing.T) entities.Project {
	t.Helper()
	p, err := w.projects.Create(context.Background(), w.admin, ProjectInput{
		Name:       "Planta Norte",
		Location:   "Antofagasta",
		Technician: w.tech.ID,
		Clients:    []string{w.client.ID},
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return p
}

func (w *workflow) mustRequest(t *testing.T, projectID string) entities.ServiceRequest {
	t.Helper()
	sr, err := w.requests.Create(context.Background(), w.client, ServiceRequestInput{
		ProjectID:   projectID,
		Title:       "leak",
		Description: "Fuga en sala de bombas",
		Priority:    entities.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	return sr
}

func (w *workflow) mustRendition(t *testing.T, requestID string) entities.Rendition {
	t.Helper()
	rd, err := w.renditions.Create(context.Background(), w.tech, RenditionInput{
		ServiceRequestID: requestID,
		Description:      "Cambio de válvula",
	})
	if err != nil {
		t.Fatalf("create rendition: %v", err)
	}
	return rd
}

func TestWorkflow_ApprovalCompletesRequest(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow(t, time.Date(2025, 5, 2, 15, 0, 0, 0, time.UTC))

	p := w.mustProject(t)
	sr := w.mustRequest(t, p.ID)
	if sr.RequestNumber != "SR-2505-0001" {
		t.Fatalf("expected SR-2505-0001, got %s", sr.RequestNumber)
	}
	if sr.Status != entities.RequestStatusRequested {
		t.Fatalf("expected initial status %q, got %q", entities.RequestStatusRequested, sr.Status)
	}

	rd := w.mustRendition(t, sr.ID)
	if rd.Folio != "RND-250502-001" || rd.Status != entities.RenditionStatusPending {
		t.Fatalf("unexpected rendition: folio=%s status=%s", rd.Folio, rd.Status)
	}

	rd, err := w.renditions.AddExpense(ctx, w.tech, rd.ID, ExpenseInput{
		Category: "Materiales",
		Amount:   50000,
		Proof:    &Upload{Name: "boleta.pdf", ContentType: "application/pdf", Body: strings.NewReader("%PDF")},
	})
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}
	if rd.Status != entities.RenditionStatusSubmitted || rd.TotalAmount() != 50000 {
		t.Fatalf("expected submitted rendition totalling 50000, got status=%s total=%v", rd.Status, rd.TotalAmount())
	}
	if proof := rd.Expenses[0].PaymentProof; proof == nil || !strings.HasPrefix(proof.URL, "memory://files/") {
		t.Fatalf("expected stored payment proof, got %+v", proof)
	}

	approved, err := w.renditions.Approve(ctx, w.admin, rd.ID, "")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != entities.RenditionStatusApproved || approved.ReviewedBy != w.admin.ID {
		t.Fatalf("unexpected approval: status=%s reviewer=%s", approved.Status, approved.ReviewedBy)
	}
	statuses := make([]string, 0, len(approved.History))
	for _, h := range approved.History {
		statuses = append(statuses, h.Status)
	}
	want := []string{
		string(entities.RenditionStatusPending),
		string(entities.RenditionStatusSubmitted),
		string(entities.RenditionStatusUnderReview),
		string(entities.RenditionStatusApproved),
	}
	if strings.Join(statuses, ",") != strings.Join(want, ",") {
		t.Fatalf("expected history %v, got %v", want, statuses)
	}

	completed, err := w.requests.Get(ctx, w.client, sr.ID)
	if err != nil {
		t.Fatalf("get request: %v", err)
	}
	if completed.Status != entities.RequestStatusCompleted || completed.CompletionDate == nil {
		t.Fatalf("expected completed request, got status=%s completion=%v", completed.Status, completed.CompletionDate)
	}
	last := completed.History[len(completed.History)-1]
	if last.ChangedBy != w.admin.ID {
		t.Fatalf("expected completion attributed to the reviewer, got %s", last.ChangedBy)
	}

	notes, total, err := w.notices.List(ctx, w.client, false, interfaces.PageQuery{})
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	found := false
	for _, n := range notes {
		if n.RelatedTo != nil && n.RelatedTo.Model == entities.RelatedServiceRequest && n.RelatedTo.ID == sr.ID &&
			strings.Contains(n.Message, string(entities.RequestStatusCompleted)) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a completion notification for the client, got %d: %+v", total, notes)
	}

	techNotes, _, err := w.notices.List(ctx, w.tech, true, interfaces.PageQuery{})
	if err != nil {
		t.Fatalf("list technician notifications: %v", err)
	}
	approvedNotice := false
	for _, n := range techNotes {
		if n.RelatedTo != nil && n.RelatedTo.ID == rd.ID && n.Type == entities.NotificationSuccess {
			approvedNotice = true
		}
	}
	if !approvedNotice {
		t.Fatalf("expected approval notification for the technician, got %+v", techNotes)
	}

	m, err := w.projects.Metrics(ctx, w.admin, p.ID)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if m.TotalRequests != 1 || m.CompletedRequests != 1 || m.OpenRequests != 0 {
		t.Fatalf("unexpected metrics: %+v", m)
	}
}

func TestWorkflow_RequestNumbersIncrease(t *testing.T) {
	w := newWorkflow(t, time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC))
	p := w.mustProject(t)

	for i, want := range []string{"SR-2505-0001", "SR-2505-0002", "SR-2505-0003"} {
		sr := w.mustRequest(t, p.ID)
		if sr.RequestNumber != want {
			t.Fatalf("request %d: expected %s, got %s", i, want, sr.RequestNumber)
		}
	}

	w.requests.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	if sr := w.mustRequest(t, p.ID); sr.RequestNumber != "SR-2506-0001" {
		t.Fatalf("expected the sequence to restart in June, got %s", sr.RequestNumber)
	}
}

func TestWorkflow_RejectedRenditionIsLocked(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow(t, time.Date(2025, 5, 2, 15, 0, 0, 0, time.UTC))
	sr := w.mustRequest(t, w.mustProject(t).ID)
	rd := w.mustRendition(t, sr.ID)

	if _, err := w.renditions.Reject(ctx, w.admin, rd.ID, entities.RejectionWrongAmounts, "  "); !errors.Is(err, entities.ErrRejectionIncomplete) {
		t.Fatalf("expected ErrRejectionIncomplete, got %v", err)
	}
	if _, err := w.renditions.Reject(ctx, w.admin, rd.ID, entities.RejectionWrongAmounts, "Boleta ilegible"); !errors.Is(err, entities.ErrInvalidTransition) {
		t.Fatalf("expected a pending rendition to be undecidable, got %v", err)
	}

	if _, err := w.renditions.StartReview(ctx, w.admin, rd.ID); err == nil {
		t.Fatalf("expected review of a pending rendition to fail")
	}
	if _, err := w.renditions.AddExpense(ctx, w.tech, rd.ID, ExpenseInput{Category: "Transporte", Amount: 12000}); err != nil {
		t.Fatalf("add expense: %v", err)
	}
	rejected, err := w.renditions.Reject(ctx, w.admin, rd.ID, entities.RejectionWrongAmounts, "Boleta ilegible")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != entities.RenditionStatusRejected || rejected.RejectionReason != entities.RejectionWrongAmounts {
		t.Fatalf("unexpected rejection: %+v", rejected)
	}

	_, err = w.renditions.AddExpense(ctx, w.tech, rd.ID, ExpenseInput{Category: "Transporte", Amount: 1})
	var denial *access.Denial
	if !errors.As(err, &denial) {
		t.Fatalf("expected a denial on a locked rendition, got %v", err)
	}
	if _, err := w.renditions.Approve(ctx, w.admin, rd.ID, ""); !errors.Is(err, entities.ErrInvalidTransition) {
		t.Fatalf("expected decided rendition to stay decided, got %v", err)
	}

	stored, err := w.requests.Get(ctx, w.admin, sr.ID)
	if err != nil {
		t.Fatalf("get request: %v", err)
	}
	if stored.Status != entities.RequestStatusRequested {
		t.Fatalf("rejection must not touch the request, got %s", stored.Status)
	}
}

func TestWorkflow_UnknownExpenseCategory(t *testing.T) {
	w := newWorkflow(t, time.Date(2025, 5, 2, 15, 0, 0, 0, time.UTC))
	rd := w.mustRendition(t, w.mustRequest(t, w.mustProject(t).ID).ID)

	_, err := w.renditions.AddExpense(context.Background(), w.tech, rd.ID, ExpenseInput{Category: "Casino", Amount: 100})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := w.renditions.AddExpense(context.Background(), w.tech, rd.ID, ExpenseInput{Category: "materiales", Amount: 0}); !errors.Is(err, entities.ErrInvalidExpense) {
		t.Fatalf("expected ErrInvalidExpense, got %v", err)
	}
}

func TestWorkflow_AccessRules(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow(t, time.Date(2025, 5, 2, 15, 0, 0, 0, time.UTC))
	p := w.mustProject(t)
	sr := w.mustRequest(t, p.ID)
	rd := w.mustRendition(t, sr.ID)
	outsider := w.mustUser(t, "Otro", "other@example.com", entities.RoleClient)
	otherTech := w.mustUser(t, "Pedro", "pedro@example.com", entities.RoleTechnician)

	var denial *access.Denial
	if _, err := w.requests.Get(ctx, outsider, sr.ID); !errors.As(err, &denial) {
		t.Fatalf("expected outsider client to be denied, got %v", err)
	}
	if _, err := w.renditions.Get(ctx, w.client, rd.ID); !errors.As(err, &denial) {
		t.Fatalf("expected clients to be denied renditions, got %v", err)
	}
	if _, err := w.renditions.Create(ctx, otherTech, RenditionInput{ServiceRequestID: sr.ID, Description: "x"}); !errors.As(err, &denial) {
		t.Fatalf("expected unrelated technician to be denied, got %v", err)
	}
	if _, err := w.requests.ChangeStatus(ctx, w.tech, sr.ID, entities.RequestStatusAccepted, ""); !errors.As(err, &denial) {
		t.Fatalf("expected unassigned technician to be denied, got %v", err)
	}

	assignee := otherTech.ID
	if _, err := w.requests.Update(ctx, w.admin, sr.ID, ServiceRequestUpdate{AssignedTo: &assignee}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := w.requests.Get(ctx, otherTech, sr.ID); err != nil {
		t.Fatalf("expected assignee to read the request, got %v", err)
	}
	updated, err := w.requests.ChangeStatus(ctx, otherTech, sr.ID, entities.RequestStatusAccepted, "")
	if err != nil {
		t.Fatalf("change status: %v", err)
	}
	if last := updated.History[len(updated.History)-1]; last.Notes != "Estado cambiado a Aceptada" || last.ChangedBy != otherTech.ID {
		t.Fatalf("unexpected ledger entry: %+v", last)
	}
	if _, err := w.requests.ChangeStatus(ctx, otherTech, sr.ID, entities.RequestStatusRequested, ""); !errors.Is(err, entities.ErrInvalidTransition) {
		t.Fatalf("expected backwards transition to fail, got %v", err)
	}

	assigned, _, err := w.notices.List(ctx, otherTech, true, interfaces.PageQuery{})
	if err != nil || len(assigned) == 0 {
		t.Fatalf("expected assignment notification, got %v err=%v", assigned, err)
	}
}

func TestWorkflow_GlobalIdentifiers(t *testing.T) {
	at := time.Date(2025, 5, 17, 9, 0, 0, 0, time.UTC)
	w := newWorkflow(t, at)
	w.requests.ids = NewIdentifierGenerator(identifier.ModeGlobal, w.store.Counters(), w.store.ServiceRequests(), w.store.Renditions())
	w.requests.now = func() time.Time { return at }
	p := w.mustProject(t)

	t.Run("same instant", func(t *testing.T) {
		for i := 1; i <= 5; i++ {
			sr := w.mustRequest(t, p.ID)
			if want := identifier.Format(identifier.KindServiceRequest, at, int64(i)); sr.RequestNumber != want {
				t.Fatalf("expected %s, got %s", want, sr.RequestNumber)
			}
		}
	})

	t.Run("next month keeps counting", func(t *testing.T) {
		at = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
		sr := w.mustRequest(t, p.ID)
		if sr.RequestNumber != "SR-2506-0006" {
			t.Fatalf("expected SR-2506-0006, got %s", sr.RequestNumber)
		}
	})
}
