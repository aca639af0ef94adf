package usecase

//go:generate mockgen -source=rendition_usecase.go -destination=../adapter/http/handlers/mocks/rendition_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/identifier"
	"fieldops/internal/infrastructure/metrics"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// maxForceAttempts bounds the re-reads when the linked request changes under an approval.
const maxForceAttempts = 3

type RenditionInput struct {
	ServiceRequestID string
	Description      string
	WorkDetails      entities.WorkDetails
	Location         *entities.SiteLocation
	Offline          bool
	Files            []Upload
}

// RenditionUpdate carries the author-editable fields. Nil pointers are left unchanged.
type RenditionUpdate struct {
	Description *string
	WorkDetails *entities.WorkDetails
	Location    *entities.SiteLocation
}

type ExpenseInput struct {
	Category    string
	Amount      float64
	Description string
	Proof       *Upload
}

// ReconcileReport summarizes a link repair pass.
type ReconcileReport struct {
	Scanned  int      `json:"scanned"`
	Repaired int      `json:"repaired"`
	Orphaned []string `json:"orphaned"`
}

// IRenditionUseCase exposes expense/work report operations.
//
// Status path: Pendiente -> Enviada (first author edit) -> En revisión -> Aprobada | Rechazada.
// Approval forces the linked service request to Finalizada on behalf of the reviewer.
type IRenditionUseCase interface {
	Create(ctx context.Context, actor access.Subject, in RenditionInput) (entities.Rendition, error)
	List(ctx context.Context, actor access.Subject, f interfaces.RenditionFilter) ([]entities.Rendition, int, error)
	Get(ctx context.Context, actor access.Subject, id string) (entities.Rendition, error)
	Update(ctx context.Context, actor access.Subject, id string, in RenditionUpdate) (entities.Rendition, error)
	Delete(ctx context.Context, actor access.Subject, id string) error
	StartReview(ctx context.Context, actor access.Subject, id string) (entities.Rendition, error)
	Approve(ctx context.Context, actor access.Subject, id string, comments string) (entities.Rendition, error)
	Reject(ctx context.Context, actor access.Subject, id string, reason entities.RejectionReason, comments string) (entities.Rendition, error)
	AddExpense(ctx context.Context, actor access.Subject, id string, in ExpenseInput) (entities.Rendition, error)
	AddAttachments(ctx context.Context, actor access.Subject, id string, files []Upload) (entities.Rendition, error)
	ReconcileLinks(ctx context.Context, actor access.Subject) (ReconcileReport, error)
}

type RenditionUseCase struct {
	renditions interfaces.IRenditionRepository
	requests   interfaces.IServiceRequestRepository
	projects   interfaces.IProjectRepository
	categories interfaces.IExpenseCategoryRepository
	ids        IIdentifierGenerator
	files      interfaces.IFileStore
	events     interfaces.IEventPublisher
	refresher  IMetricsRefresher
	now        func() time.Time
}

var _ IRenditionUseCase = (*RenditionUseCase)(nil)

func NewRenditionUseCase(
	renditions interfaces.IRenditionRepository,
	requests interfaces.IServiceRequestRepository,
	projects interfaces.IProjectRepository,
	categories interfaces.IExpenseCategoryRepository,
	ids IIdentifierGenerator,
	files interfaces.IFileStore,
	events interfaces.IEventPublisher,
	refresher IMetricsRefresher,
) *RenditionUseCase {
	return &RenditionUseCase{
		renditions: renditions,
		requests:   requests,
		projects:   projects,
		categories: categories,
		ids:        ids,
		files:      files,
		events:     events,
		refresher:  refresher,
		now:        utcNow,
	}
}

func (u *RenditionUseCase) Create(ctx context.Context, actor access.Subject, in RenditionInput) (entities.Rendition, error) {
	srID := strings.TrimSpace(in.ServiceRequestID)
	if srID == "" {
		return entities.Rendition{}, invalid("service request is required")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return entities.Rendition{}, invalid("description is required")
	}
	if err := in.WorkDetails.Validate(); err != nil {
		return entities.Rendition{}, err
	}

	sr, err := u.requests.GetByID(ctx, srID)
	if err != nil {
		return entities.Rendition{}, err
	}
	if sr.ID == "" {
		return entities.Rendition{}, ErrRequestNotFound
	}
	p, err := u.projects.GetByID(ctx, sr.ProjectID)
	if err != nil {
		return entities.Rendition{}, err
	}
	if err := access.CanCreateRendition(sr, p, actor); err != nil {
		return entities.Rendition{}, err
	}

	now := u.now()
	r := entities.Rendition{
		ID:               uuid.NewString(),
		ServiceRequestID: sr.ID,
		ProjectID:        sr.ProjectID,
		Description:      description,
		Technician:       actor.ID,
		Location:         in.Location,
		WorkDetails:      in.WorkDetails,
		Expenses:         []entities.Expense{},
		Attachments:      []entities.Attachment{},
		Offline:          in.Offline,
	}
	if r.WorkDetails.MaterialsUsed == nil {
		r.WorkDetails.MaterialsUsed = []entities.Material{}
	}
	if in.Offline {
		synced := now
		r.SyncedAt = &synced
	}
	if len(in.Files) > 0 {
		if r.Attachments, err = storeUploads(ctx, u.files, actor.ID, in.Files, now); err != nil {
			return entities.Rendition{}, err
		}
	}
	r.Seed(actor.ID, now)

	var created entities.Rendition
	err = allocateIdentifier(ctx, u.ids, identifier.KindRendition, now, func(folio string) error {
		r.Folio = folio
		var cerr error
		created, cerr = u.renditions.CreateLinked(ctx, r)
		return cerr
	})
	if errors.Is(err, interfaces.ErrReferenceMissing) {
		return entities.Rendition{}, ErrRequestNotFound
	}
	if err != nil {
		log.Printf("[rendition][usecase] create failed request=%s err=%v", sr.ID, err)
		return entities.Rendition{}, err
	}
	log.Printf("[rendition][usecase] created id=%s folio=%s request=%s", created.ID, created.Folio, sr.ID)

	publish(ctx, u.events, renditionEvent(entities.EventRenditionCreated, actor.ID, created, sr, now))
	return created, nil
}

func (u *RenditionUseCase) List(ctx context.Context, actor access.Subject, f interfaces.RenditionFilter) ([]entities.Rendition, int, error) {
	if err := access.CanListRenditions(actor); err != nil {
		return nil, 0, err
	}
	if actor.Role == entities.RoleTechnician {
		f.Technician = actor.ID
	}
	f.PageQuery = f.PageQuery.Normalize(interfaces.DefaultLimit)
	return u.renditions.List(ctx, f)
}

func (u *RenditionUseCase) Get(ctx context.Context, actor access.Subject, id string) (entities.Rendition, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.Rendition{}, err
	}
	if err := access.CanReadRendition(r, actor); err != nil {
		return entities.Rendition{}, err
	}
	return r, nil
}

func (u *RenditionUseCase) Update(ctx context.Context, actor access.Subject, id string, in RenditionUpdate) (entities.Rendition, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.Rendition{}, err
	}
	if err := access.CanModifyRendition(r, actor); err != nil {
		return entities.Rendition{}, err
	}
	if in.Description != nil {
		if r.Description = strings.TrimSpace(*in.Description); r.Description == "" {
			return entities.Rendition{}, invalid("description is required")
		}
	}
	if in.WorkDetails != nil {
		if err := in.WorkDetails.Validate(); err != nil {
			return entities.Rendition{}, err
		}
		wd := *in.WorkDetails
		if wd.MaterialsUsed == nil {
			wd.MaterialsUsed = r.WorkDetails.MaterialsUsed
		}
		r.WorkDetails = wd
	}
	if in.Location != nil {
		r.Location = in.Location
	}

	now := u.now()
	expected := r.Status
	if _, err := r.MarkSubmitted(actor.ID, now); err != nil {
		return entities.Rendition{}, err
	}
	r.UpdatedAt = now
	return u.save(ctx, r, expected)
}

func (u *RenditionUseCase) Delete(ctx context.Context, actor access.Subject, id string) error {
	r, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if err := access.CanDeleteRendition(r, actor); err != nil {
		return err
	}
	if err := u.renditions.Delete(ctx, r); err != nil {
		return err
	}
	log.Printf("[rendition][usecase] deleted id=%s folio=%s by=%s", r.ID, r.Folio, actor.ID)
	return nil
}

func (u *RenditionUseCase) StartReview(ctx context.Context, actor access.Subject, id string) (entities.Rendition, error) {
	if err := access.RequireAdmin(actor, "only admins can review renditions"); err != nil {
		return entities.Rendition{}, err
	}
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.Rendition{}, err
	}
	return u.startReview(ctx, r, actor.ID)
}

func (u *RenditionUseCase) Approve(ctx context.Context, actor access.Subject, id string, comments string) (entities.Rendition, error) {
	if err := access.RequireAdmin(actor, "only admins can approve renditions"); err != nil {
		return entities.Rendition{}, err
	}
	r, err := u.reviewable(ctx, id, actor.ID)
	if err != nil {
		return entities.Rendition{}, err
	}
	log.Printf("[rendition][usecase] approve start id=%s folio=%s reviewer=%s", r.ID, r.Folio, actor.ID)

	if err := r.Approve(actor.ID, strings.TrimSpace(comments), u.now()); err != nil {
		return entities.Rendition{}, err
	}
	approved, err := u.save(ctx, r, entities.RenditionStatusUnderReview)
	if err != nil {
		return entities.Rendition{}, err
	}

	sr := u.completeRequest(ctx, approved, actor.ID)
	publish(ctx, u.events, renditionEvent(entities.EventRenditionApproved, actor.ID, approved, sr, *approved.ReviewDate))
	log.Printf("[rendition][usecase] approved id=%s folio=%s request=%s", approved.ID, approved.Folio, approved.ServiceRequestID)
	return approved, nil
}

func (u *RenditionUseCase) Reject(ctx context.Context, actor access.Subject, id string, reason entities.RejectionReason, comments string) (entities.Rendition, error) {
	if err := access.RequireAdmin(actor, "only admins can reject renditions"); err != nil {
		return entities.Rendition{}, err
	}
	comments = strings.TrimSpace(comments)
	if !reason.Valid() || comments == "" {
		return entities.Rendition{}, entities.ErrRejectionIncomplete
	}
	r, err := u.reviewable(ctx, id, actor.ID)
	if err != nil {
		return entities.Rendition{}, err
	}
	if err := r.Reject(actor.ID, reason, comments, u.now()); err != nil {
		return entities.Rendition{}, err
	}
	rejected, err := u.save(ctx, r, entities.RenditionStatusUnderReview)
	if err != nil {
		return entities.Rendition{}, err
	}
	log.Printf("[rendition][usecase] rejected id=%s folio=%s reason=%q", rejected.ID, rejected.Folio, reason)

	sr, err := u.requests.GetByID(ctx, rejected.ServiceRequestID)
	if err != nil {
		log.Printf("[rendition][usecase] rejection event without request id=%s err=%v", rejected.ID, err)
	}
	publish(ctx, u.events, renditionEvent(entities.EventRenditionRejected, actor.ID, rejected, sr, *rejected.ReviewDate))
	return rejected, nil
}

func (u *RenditionUseCase) AddExpense(ctx context.Context, actor access.Subject, id string, in ExpenseInput) (entities.Rendition, error) {
	e := entities.Expense{
		ID:          uuid.NewString(),
		Category:    strings.TrimSpace(in.Category),
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
	}
	if err := e.Validate(); err != nil {
		return entities.Rendition{}, err
	}
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.Rendition{}, err
	}
	if err := access.CanModifyRendition(r, actor); err != nil {
		return entities.Rendition{}, err
	}
	if err := u.ensureCategory(ctx, e.Category); err != nil {
		return entities.Rendition{}, err
	}

	now := u.now()
	if in.Proof != nil {
		atts, err := storeUploads(ctx, u.files, actor.ID, []Upload{*in.Proof}, now)
		if err != nil {
			return entities.Rendition{}, err
		}
		e.PaymentProof = &atts[0]
	}
	expected := r.Status
	submitted, err := u.submittedEntry(&r, actor.ID, now)
	if err != nil {
		return entities.Rendition{}, err
	}
	updated, err := u.renditions.AppendExpense(ctx, r.ID, e, expected, submitted)
	return u.afterWrite(updated, err, submitted)
}

func (u *RenditionUseCase) AddAttachments(ctx context.Context, actor access.Subject, id string, files []Upload) (entities.Rendition, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.Rendition{}, err
	}
	if err := access.CanModifyRendition(r, actor); err != nil {
		return entities.Rendition{}, err
	}
	now := u.now()
	atts, err := storeUploads(ctx, u.files, actor.ID, files, now)
	if err != nil {
		return entities.Rendition{}, err
	}
	expected := r.Status
	submitted, err := u.submittedEntry(&r, actor.ID, now)
	if err != nil {
		return entities.Rendition{}, err
	}
	updated, err := u.renditions.AppendAttachments(ctx, r.ID, atts, expected, submitted)
	return u.afterWrite(updated, err, submitted)
}

// ReconcileLinks walks every rendition and re-adds it to its request's list when the link
// is missing. Renditions whose request no longer exists are reported, not removed.
func (u *RenditionUseCase) ReconcileLinks(ctx context.Context, actor access.Subject) (ReconcileReport, error) {
	if err := access.RequireAdmin(actor, "only admins can reconcile renditions"); err != nil {
		return ReconcileReport{}, err
	}
	all, _, err := u.renditions.List(ctx, interfaces.RenditionFilter{})
	if err != nil {
		return ReconcileReport{}, err
	}
	report := ReconcileReport{Orphaned: []string{}}
	requests := map[string]entities.ServiceRequest{}
	for _, r := range all {
		report.Scanned++
		sr, ok := requests[r.ServiceRequestID]
		if !ok {
			if sr, err = u.requests.GetByID(ctx, r.ServiceRequestID); err != nil {
				return report, err
			}
			requests[r.ServiceRequestID] = sr
		}
		if sr.ID == "" {
			report.Orphaned = append(report.Orphaned, r.ID)
			continue
		}
		if sr.HasRendition(r.ID) {
			continue
		}
		linked, err := u.requests.LinkRendition(ctx, sr.ID, r.ID)
		if err != nil {
			return report, fmt.Errorf("link rendition %s: %w", r.ID, err)
		}
		requests[sr.ID] = linked
		report.Repaired++
		log.Printf("[rendition][usecase] reconciled link rendition=%s request=%s", r.ID, sr.ID)
	}
	return report, nil
}

// reviewable loads a rendition for an admin decision, persisting the implicit
// Enviada -> En revisión step as its own mutation when needed.
func (u *RenditionUseCase) reviewable(ctx context.Context, id, reviewer string) (entities.Rendition, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.Rendition{}, err
	}
	if r.Status == entities.RenditionStatusSubmitted {
		return u.startReview(ctx, r, reviewer)
	}
	return r, nil
}

func (u *RenditionUseCase) startReview(ctx context.Context, r entities.Rendition, reviewer string) (entities.Rendition, error) {
	expected := r.Status
	if _, err := r.Transition(entities.StatusTransition[entities.RenditionStatus]{
		To:    entities.RenditionStatusUnderReview,
		Actor: reviewer,
	}, u.now()); err != nil {
		return entities.Rendition{}, err
	}
	return u.save(ctx, r, expected)
}

// completeRequest forces the linked request to Finalizada, attributed to the reviewer.
// The approval is already committed; failures are logged and the last known request returned.
func (u *RenditionUseCase) completeRequest(ctx context.Context, r entities.Rendition, reviewer string) entities.ServiceRequest {
	var sr entities.ServiceRequest
	for attempt := 1; attempt <= maxForceAttempts; attempt++ {
		var err error
		sr, err = u.requests.GetByID(ctx, r.ServiceRequestID)
		if err != nil || sr.ID == "" {
			log.Printf("[rendition][usecase] approved rendition without request id=%s request=%s err=%v", r.ID, r.ServiceRequestID, err)
			return sr
		}
		previous := sr.Status
		entry, changed, err := sr.ForceStatus(entities.StatusTransition[entities.RequestStatus]{
			To:    entities.RequestStatusCompleted,
			Actor: reviewer,
			Notes: fmt.Sprintf("Finalizada por aprobación de la rendición %s", r.Folio),
		}, u.now())
		if err != nil || !changed {
			return sr
		}
		updated, err := u.requests.UpdateStatus(ctx, sr.ID, previous, entry, sr.CompletionDate)
		if errors.Is(err, interfaces.ErrStaleStatus) {
			continue
		}
		if err != nil {
			log.Printf("[rendition][usecase] could not complete request=%s err=%v", sr.ID, err)
			return sr
		}
		metrics.StatusTransitions.WithLabelValues("service_request", string(entities.RequestStatusCompleted)).Inc()

		p, err := u.projects.GetByID(ctx, updated.ProjectID)
		if err != nil {
			log.Printf("[rendition][usecase] status event without project request=%s err=%v", updated.ID, err)
		}
		e := requestEvent(entities.EventRequestStatusChanged, reviewer, updated, p, entry.ChangedAt)
		e.PreviousStatus = string(previous)
		publish(ctx, u.events, e)
		if u.refresher != nil {
			if _, err := u.refresher.RecomputeMetrics(ctx, updated.ProjectID); err != nil {
				log.Printf("[rendition][usecase] metrics refresh failed project=%s err=%v", updated.ProjectID, err)
			}
		}
		return updated
	}
	log.Errorf("[rendition][usecase] gave up completing request=%s after %d attempts", r.ServiceRequestID, maxForceAttempts)
	return sr
}

func (u *RenditionUseCase) submittedEntry(r *entities.Rendition, actor string, now time.Time) (*entities.HistoryEntry, error) {
	changed, err := r.MarkSubmitted(actor, now)
	if err != nil || !changed {
		return nil, err
	}
	h := r.History[len(r.History)-1]
	return &h, nil
}

func (u *RenditionUseCase) afterWrite(r entities.Rendition, err error, submitted *entities.HistoryEntry) (entities.Rendition, error) {
	if errors.Is(err, interfaces.ErrStaleStatus) {
		return entities.Rendition{}, ErrConcurrentStatusChange
	}
	if err != nil {
		return entities.Rendition{}, err
	}
	if r.ID == "" {
		return entities.Rendition{}, ErrRenditionNotFound
	}
	if submitted != nil {
		metrics.StatusTransitions.WithLabelValues("rendition", submitted.Status).Inc()
	}
	return r, nil
}

func (u *RenditionUseCase) save(ctx context.Context, r entities.Rendition, expected entities.RenditionStatus) (entities.Rendition, error) {
	saved, err := u.renditions.Update(ctx, r, expected)
	if errors.Is(err, interfaces.ErrStaleStatus) {
		return entities.Rendition{}, ErrConcurrentStatusChange
	}
	if err != nil {
		return entities.Rendition{}, err
	}
	if saved.ID == "" {
		return entities.Rendition{}, ErrRenditionNotFound
	}
	if saved.Status != expected {
		metrics.StatusTransitions.WithLabelValues("rendition", string(saved.Status)).Inc()
	}
	return saved, nil
}

func (u *RenditionUseCase) ensureCategory(ctx context.Context, name string) error {
	if u.categories == nil {
		return nil
	}
	cats, err := u.categories.List(ctx, true)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		return nil
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, name) {
			return nil
		}
	}
	return invalid(fmt.Sprintf("unknown expense category %q", name))
}

func (u *RenditionUseCase) load(ctx context.Context, id string) (entities.Rendition, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Rendition{}, ErrInvalidID
	}
	r, err := u.renditions.GetByID(ctx, id)
	if err != nil {
		return entities.Rendition{}, err
	}
	if r.ID == "" {
		return entities.Rendition{}, ErrRenditionNotFound
	}
	return r, nil
}
