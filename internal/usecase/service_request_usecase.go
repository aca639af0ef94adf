package usecase

//go:generate mockgen -source=service_request_usecase.go -destination=../adapter/http/handlers/mocks/service_request_usecase_mock.go -package=mocks -exclude_interfaces=IMetricsRefresher

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

type ServiceRequestInput struct {
	ProjectID     string
	Title         string
	Description   string
	Priority      entities.Priority
	RequestType   entities.RequestType
	Location      *entities.SiteLocation
	ScheduledDate *time.Time
	Files         []Upload
}

// ServiceRequestUpdate carries the admin-editable fields. Nil pointers are left unchanged.
type ServiceRequestUpdate struct {
	Title         *string
	Description   *string
	Priority      *entities.Priority
	RequestType   *entities.RequestType
	Location      *entities.SiteLocation
	ScheduledDate *time.Time
	AssignedTo    *string
}

// IMetricsRefresher recomputes a project's denormalized request counters.
type IMetricsRefresher interface {
	RecomputeMetrics(ctx context.Context, projectID string) (entities.ProjectMetrics, error)
}

// IServiceRequestUseCase exposes work ticket operations.
type IServiceRequestUseCase interface {
	Create(ctx context.Context, actor access.Subject, in ServiceRequestInput) (entities.ServiceRequest, error)
	List(ctx context.Context, actor access.Subject, f interfaces.ServiceRequestFilter) ([]entities.ServiceRequest, int, error)
	Get(ctx context.Context, actor access.Subject, id string) (entities.ServiceRequest, error)
	Update(ctx context.Context, actor access.Subject, id string, in ServiceRequestUpdate) (entities.ServiceRequest, error)
	Delete(ctx context.Context, actor access.Subject, id string) error
	ChangeStatus(ctx context.Context, actor access.Subject, id string, status entities.RequestStatus, notes string) (entities.ServiceRequest, error)
	AddComment(ctx context.Context, actor access.Subject, id string, text string) (entities.Comment, error)
	AddAttachments(ctx context.Context, actor access.Subject, id string, files []Upload) ([]entities.Attachment, error)
	History(ctx context.Context, actor access.Subject, id string) ([]entities.HistoryEntry, error)
}

type ServiceRequestUseCase struct {
	requests  interfaces.IServiceRequestRepository
	projects  interfaces.IProjectRepository
	users     interfaces.IUserRepository
	ids       IIdentifierGenerator
	files     interfaces.IFileStore
	events    interfaces.IEventPublisher
	refresher IMetricsRefresher
	now       func() time.Time
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(
	requests interfaces.IServiceRequestRepository,
	projects interfaces.IProjectRepository,
	users interfaces.IUserRepository,
	ids IIdentifierGenerator,
	files interfaces.IFileStore,
	events interfaces.IEventPublisher,
	refresher IMetricsRefresher,
) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{
		requests:  requests,
		projects:  projects,
		users:     users,
		ids:       ids,
		files:     files,
		events:    events,
		refresher: refresher,
		now:       utcNow,
	}
}

func (u *ServiceRequestUseCase) Create(ctx context.Context, actor access.Subject, in ServiceRequestInput) (entities.ServiceRequest, error) {
	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return entities.ServiceRequest{}, invalid("project is required")
	}
	title, description := strings.TrimSpace(in.Title), strings.TrimSpace(in.Description)
	switch {
	case title == "":
		return entities.ServiceRequest{}, invalid("title is required")
	case description == "":
		return entities.ServiceRequest{}, invalid("description is required")
	case in.Priority != "" && !in.Priority.Valid():
		return entities.ServiceRequest{}, invalid(fmt.Sprintf("invalid priority %q", in.Priority))
	case in.RequestType != "" && !in.RequestType.Valid():
		return entities.ServiceRequest{}, invalid(fmt.Sprintf("invalid request type %q", in.RequestType))
	}

	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if p.ID == "" {
		return entities.ServiceRequest{}, ErrProjectNotFound
	}
	if err := access.CanAccessProject(p, actor); err != nil {
		return entities.ServiceRequest{}, err
	}

	now := u.now()
	sr := entities.ServiceRequest{
		ID:            uuid.NewString(),
		ProjectID:     p.ID,
		Title:         title,
		Description:   description,
		Priority:      in.Priority,
		RequestType:   in.RequestType,
		Location:      in.Location,
		RequestedBy:   actor.ID,
		ScheduledDate: in.ScheduledDate,
		Attachments:   []entities.Attachment{},
		Comments:      []entities.Comment{},
		Renditions:    []string{},
	}
	if len(in.Files) > 0 {
		if sr.Attachments, err = storeUploads(ctx, u.files, actor.ID, in.Files, now); err != nil {
			return entities.ServiceRequest{}, err
		}
	}
	sr.Seed(actor.ID, now)

	var created entities.ServiceRequest
	err = allocateIdentifier(ctx, u.ids, identifier.KindServiceRequest, now, func(number string) error {
		sr.RequestNumber = number
		var cerr error
		created, cerr = u.requests.Create(ctx, sr)
		return cerr
	})
	if err != nil {
		log.Printf("[service-request][usecase] create failed project=%s err=%v", p.ID, err)
		return entities.ServiceRequest{}, err
	}
	log.Printf("[service-request][usecase] created id=%s number=%s project=%s", created.ID, created.RequestNumber, p.ID)

	publish(ctx, u.events, requestEvent(entities.EventRequestCreated, actor.ID, created, p, now))
	u.refreshMetrics(ctx, p.ID)
	return created, nil
}

func (u *ServiceRequestUseCase) List(ctx context.Context, actor access.Subject, f interfaces.ServiceRequestFilter) ([]entities.ServiceRequest, int, error) {
	switch actor.Role {
	case entities.RoleAdmin:
	case entities.RoleClient:
		f.RequestedBy = actor.ID
	case entities.RoleTechnician:
		f.AssignedTo = actor.ID
	default:
		return nil, 0, access.Deny("unknown role")
	}
	f.PageQuery = f.PageQuery.Normalize(interfaces.DefaultLimit)
	return u.requests.List(ctx, f)
}

func (u *ServiceRequestUseCase) Get(ctx context.Context, actor access.Subject, id string) (entities.ServiceRequest, error) {
	sr, _, err := u.loadWithProject(ctx, actor, id)
	return sr, err
}

func (u *ServiceRequestUseCase) Update(ctx context.Context, actor access.Subject, id string, in ServiceRequestUpdate) (entities.ServiceRequest, error) {
	if err := access.RequireAdmin(actor, "only admins can update service requests"); err != nil {
		return entities.ServiceRequest{}, err
	}
	sr, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	previousAssignee := sr.AssignedTo

	if in.Title != nil {
		if sr.Title = strings.TrimSpace(*in.Title); sr.Title == "" {
			return entities.ServiceRequest{}, invalid("title is required")
		}
	}
	if in.Description != nil {
		if sr.Description = strings.TrimSpace(*in.Description); sr.Description == "" {
			return entities.ServiceRequest{}, invalid("description is required")
		}
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return entities.ServiceRequest{}, invalid(fmt.Sprintf("invalid priority %q", *in.Priority))
		}
		sr.Priority = *in.Priority
	}
	if in.RequestType != nil {
		if !in.RequestType.Valid() {
			return entities.ServiceRequest{}, invalid(fmt.Sprintf("invalid request type %q", *in.RequestType))
		}
		sr.RequestType = *in.RequestType
	}
	if in.Location != nil {
		sr.Location = in.Location
	}
	if in.ScheduledDate != nil {
		sr.ScheduledDate = in.ScheduledDate
	}
	if in.AssignedTo != nil {
		assignee := strings.TrimSpace(*in.AssignedTo)
		if assignee != "" {
			usr, err := u.users.GetByID(ctx, assignee)
			if err != nil {
				return entities.ServiceRequest{}, err
			}
			if usr.ID == "" || usr.Role != entities.RoleTechnician {
				return entities.ServiceRequest{}, classified(ErrNotFound, "technician not found")
			}
		}
		sr.AssignedTo = assignee
	}
	sr.UpdatedAt = u.now()

	updated, err := u.requests.Update(ctx, sr)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}

	if updated.AssignedTo != "" && updated.AssignedTo != previousAssignee {
		p, err := u.projects.GetByID(ctx, updated.ProjectID)
		if err != nil {
			log.Printf("[service-request][usecase] assignment event without project id=%s err=%v", updated.ID, err)
		}
		e := requestEvent(entities.EventRequestAssigned, actor.ID, updated, p, sr.UpdatedAt)
		e.TargetUserID = updated.AssignedTo
		publish(ctx, u.events, e)
	}
	return updated, nil
}

func (u *ServiceRequestUseCase) Delete(ctx context.Context, actor access.Subject, id string) error {
	if err := access.RequireAdmin(actor, "only admins can delete service requests"); err != nil {
		return err
	}
	sr, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if err := u.requests.Delete(ctx, sr); err != nil {
		return err
	}
	log.Printf("[service-request][usecase] deleted id=%s number=%s by=%s", sr.ID, sr.RequestNumber, actor.ID)
	u.refreshMetrics(ctx, sr.ProjectID)
	return nil
}

func (u *ServiceRequestUseCase) ChangeStatus(ctx context.Context, actor access.Subject, id string, status entities.RequestStatus, notes string) (entities.ServiceRequest, error) {
	if !status.Valid() {
		return entities.ServiceRequest{}, invalid(fmt.Sprintf("invalid status %q", status))
	}
	sr, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if err := access.CanChangeRequestStatus(sr, actor); err != nil {
		return entities.ServiceRequest{}, err
	}
	previous := sr.Status
	if strings.TrimSpace(notes) == "" {
		notes = fmt.Sprintf("Estado cambiado a %s", status)
	}
	entry, err := sr.Transition(entities.StatusTransition[entities.RequestStatus]{To: status, Actor: actor.ID, Notes: notes}, u.now())
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	updated, err := u.requests.UpdateStatus(ctx, sr.ID, previous, entry, sr.CompletionDate)
	if errors.Is(err, interfaces.ErrStaleStatus) {
		return entities.ServiceRequest{}, ErrConcurrentStatusChange
	}
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	metrics.StatusTransitions.WithLabelValues("service_request", string(status)).Inc()
	log.Printf("[service-request][usecase] status changed id=%s from=%q to=%q by=%s", sr.ID, previous, status, actor.ID)

	p, err := u.projects.GetByID(ctx, updated.ProjectID)
	if err != nil {
		log.Printf("[service-request][usecase] status event without project id=%s err=%v", updated.ID, err)
	}
	e := requestEvent(entities.EventRequestStatusChanged, actor.ID, updated, p, entry.ChangedAt)
	e.PreviousStatus = string(previous)
	publish(ctx, u.events, e)
	u.refreshMetrics(ctx, updated.ProjectID)
	return updated, nil
}

func (u *ServiceRequestUseCase) AddComment(ctx context.Context, actor access.Subject, id string, text string) (entities.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Comment{}, invalid("comment text is required")
	}
	sr, p, err := u.loadWithProject(ctx, actor, id)
	if err != nil {
		return entities.Comment{}, err
	}
	c := entities.Comment{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedBy: actor.ID,
		CreatedAt: u.now(),
	}
	updated, err := u.requests.AppendComment(ctx, sr.ID, c)
	if err != nil {
		return entities.Comment{}, err
	}
	if updated.ID == "" {
		return entities.Comment{}, ErrRequestNotFound
	}
	publish(ctx, u.events, requestEvent(entities.EventRequestCommentAdded, actor.ID, updated, p, c.CreatedAt))
	return c, nil
}

func (u *ServiceRequestUseCase) AddAttachments(ctx context.Context, actor access.Subject, id string, files []Upload) ([]entities.Attachment, error) {
	sr, _, err := u.loadWithProject(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	atts, err := storeUploads(ctx, u.files, actor.ID, files, u.now())
	if err != nil {
		return nil, err
	}
	updated, err := u.requests.AppendAttachments(ctx, sr.ID, atts)
	if err != nil {
		return nil, err
	}
	if updated.ID == "" {
		return nil, ErrRequestNotFound
	}
	return updated.Attachments, nil
}

func (u *ServiceRequestUseCase) History(ctx context.Context, actor access.Subject, id string) ([]entities.HistoryEntry, error) {
	sr, err := u.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return sr.History, nil
}

func (u *ServiceRequestUseCase) load(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidID
	}
	sr, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return sr, nil
}

func (u *ServiceRequestUseCase) loadWithProject(ctx context.Context, actor access.Subject, id string) (entities.ServiceRequest, entities.Project, error) {
	sr, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, entities.Project{}, err
	}
	p, err := u.projects.GetByID(ctx, sr.ProjectID)
	if err != nil {
		return entities.ServiceRequest{}, entities.Project{}, err
	}
	if err := access.CanAccessRequest(sr, p, actor); err != nil {
		return entities.ServiceRequest{}, entities.Project{}, err
	}
	return sr, p, nil
}

func (u *ServiceRequestUseCase) refreshMetrics(ctx context.Context, projectID string) {
	if u.refresher == nil || projectID == "" {
		return
	}
	if _, err := u.refresher.RecomputeMetrics(ctx, projectID); err != nil {
		log.Printf("[service-request][usecase] metrics refresh failed project=%s err=%v", projectID, err)
	}
}
