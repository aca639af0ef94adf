package usecase

//go:generate mockgen -source=project_usecase.go -destination=../adapter/http/handlers/mocks/project_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/infrastructure/metrics"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	log "github.com/sirupsen/logrus"
)

type ProjectInput struct {
	Name                 string
	Location             string
	Description          string
	OrderNumber          string
	IdentificationNumber string
	ReceptionType        entities.ReceptionType
	CompanyResponsible   string
	ClientContactName    string
	ClientCompanyName    string
	CostCenter           string
	Technician           string
	Clients              []string
	StartDate            *time.Time
	EndDate              *time.Time
}

type MilestoneInput struct {
	Title       string
	Description string
	Files       []Upload
}

type LocationPointInput struct {
	Name        string
	Type        entities.LocationPointType
	Description string
	Longitude   float64
	Latitude    float64
}

// IProjectUseCase exposes site management: the project record, its members, its status
// ledger and its embedded collections (milestones, photos, documents, location points).
type IProjectUseCase interface {
	Create(ctx context.Context, actor access.Subject, in ProjectInput) (entities.Project, error)
	List(ctx context.Context, actor access.Subject, f interfaces.ProjectFilter) ([]entities.Project, int, error)
	Get(ctx context.Context, actor access.Subject, id string) (entities.Project, error)
	Update(ctx context.Context, actor access.Subject, id string, in ProjectInput) (entities.Project, error)
	Delete(ctx context.Context, actor access.Subject, id string) error
	AssignTechnician(ctx context.Context, actor access.Subject, id string, technicianID string) (entities.Project, error)
	AddClient(ctx context.Context, actor access.Subject, id string, clientID string) (entities.Project, error)
	ChangeStatus(ctx context.Context, actor access.Subject, id string, status entities.ProjectStatus, notes string) (entities.Project, error)
	AddMilestone(ctx context.Context, actor access.Subject, id string, in MilestoneInput) (entities.Milestone, error)
	ListMilestones(ctx context.Context, actor access.Subject, id string) ([]entities.Milestone, error)
	GetMilestone(ctx context.Context, actor access.Subject, id string, milestoneID string) (entities.Milestone, error)
	UpdateMilestone(ctx context.Context, actor access.Subject, id string, milestoneID string, in MilestoneInput) (entities.Milestone, error)
	DeleteMilestone(ctx context.Context, actor access.Subject, id string, milestoneID string) error
	AddPhotos(ctx context.Context, actor access.Subject, id string, files []Upload, description string) ([]entities.Photo, error)
	DeletePhoto(ctx context.Context, actor access.Subject, id string, photoID string) error
	AddDocuments(ctx context.Context, actor access.Subject, id string, files []Upload) ([]entities.Attachment, error)
	AddLocationPoint(ctx context.Context, actor access.Subject, id string, in LocationPointInput) (entities.LocationPoint, error)
	ListLocationPoints(ctx context.Context, actor access.Subject, id string) ([]entities.LocationPoint, error)
	UpdateLocationPoint(ctx context.Context, actor access.Subject, id string, pointID string, in LocationPointInput) (entities.LocationPoint, error)
	DeleteLocationPoint(ctx context.Context, actor access.Subject, id string, pointID string) error
	LocationPointsGeoJSON(ctx context.Context, actor access.Subject, id string) ([]byte, error)
	Metrics(ctx context.Context, actor access.Subject, id string) (entities.ProjectMetrics, error)
	RecomputeMetrics(ctx context.Context, id string) (entities.ProjectMetrics, error)
}

type ProjectUseCase struct {
	projects interfaces.IProjectRepository
	requests interfaces.IServiceRequestRepository
	users    interfaces.IUserRepository
	files    interfaces.IFileStore
	events   interfaces.IEventPublisher
	now      func() time.Time
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	projects interfaces.IProjectRepository,
	requests interfaces.IServiceRequestRepository,
	users interfaces.IUserRepository,
	files interfaces.IFileStore,
	events interfaces.IEventPublisher,
) *ProjectUseCase {
	return &ProjectUseCase{
		projects: projects,
		requests: requests,
		users:    users,
		files:    files,
		events:   events,
		now:      utcNow,
	}
}

func (u *ProjectUseCase) Create(ctx context.Context, actor access.Subject, in ProjectInput) (entities.Project, error) {
	if err := access.RequireAdmin(actor, "only admins can create projects"); err != nil {
		return entities.Project{}, err
	}
	in = normalizeProjectInput(in)
	if err := validateProjectInput(in); err != nil {
		return entities.Project{}, err
	}
	if err := u.ensureOrderNumberFree(ctx, in.OrderNumber, ""); err != nil {
		return entities.Project{}, err
	}
	if in.Technician != "" {
		if _, err := u.userWithRole(ctx, in.Technician, entities.RoleTechnician); err != nil {
			return entities.Project{}, err
		}
	}
	for _, c := range in.Clients {
		if _, err := u.userWithRole(ctx, c, entities.RoleClient); err != nil {
			return entities.Project{}, err
		}
	}

	now := u.now()
	p := entities.Project{
		ID:             uuid.NewString(),
		Clients:        []string{},
		Milestones:     []entities.Milestone{},
		Photos:         []entities.Photo{},
		Documents:      []entities.Attachment{},
		LocationPoints: []entities.LocationPoint{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	applyProjectInput(&p, in)
	p.Technician = in.Technician
	p.Clients = dedupe(in.Clients)
	p.Seed(actor.ID, now)

	created, err := u.projects.Create(ctx, p)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.Project{}, ErrDuplicateOrderNumber
	}
	if err != nil {
		return entities.Project{}, err
	}
	log.Printf("[project][usecase] created id=%s name=%q", created.ID, created.Name)

	if created.Technician != "" {
		e := projectEvent(entities.EventProjectAssigned, actor.ID, created, now)
		e.TargetUserID, e.Role = created.Technician, entities.RoleTechnician
		publish(ctx, u.events, e)
	}
	for _, c := range created.Clients {
		e := projectEvent(entities.EventProjectAssigned, actor.ID, created, now)
		e.TargetUserID, e.Role = c, entities.RoleClient
		publish(ctx, u.events, e)
	}
	return created, nil
}

func (u *ProjectUseCase) List(ctx context.Context, actor access.Subject, f interfaces.ProjectFilter) ([]entities.Project, int, error) {
	switch actor.Role {
	case entities.RoleAdmin:
	case entities.RoleTechnician:
		f.Technician, f.Client = actor.ID, ""
	case entities.RoleClient:
		f.Client, f.Technician = actor.ID, ""
	default:
		return nil, 0, access.Deny("unknown role")
	}
	f.PageQuery = f.PageQuery.Normalize(interfaces.DefaultLimit)
	return u.projects.List(ctx, f)
}

func (u *ProjectUseCase) Get(ctx context.Context, actor access.Subject, id string) (entities.Project, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if err := access.CanAccessProject(p, actor); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (u *ProjectUseCase) Update(ctx context.Context, actor access.Subject, id string, in ProjectInput) (entities.Project, error) {
	if err := access.RequireAdmin(actor, "only admins can update projects"); err != nil {
		return entities.Project{}, err
	}
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	in = normalizeProjectInput(in)
	if err := validateProjectInput(in); err != nil {
		return entities.Project{}, err
	}
	if in.OrderNumber != p.OrderNumber {
		if err := u.ensureOrderNumberFree(ctx, in.OrderNumber, p.ID); err != nil {
			return entities.Project{}, err
		}
	}
	applyProjectInput(&p, in)
	p.UpdatedAt = u.now()

	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *ProjectUseCase) Delete(ctx context.Context, actor access.Subject, id string) error {
	if err := access.RequireAdmin(actor, "only admins can delete projects"); err != nil {
		return err
	}
	if _, err := u.load(ctx, id); err != nil {
		return err
	}
	if err := u.projects.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[project][usecase] deleted id=%s by=%s", id, actor.ID)
	return nil
}

func (u *ProjectUseCase) AssignTechnician(ctx context.Context, actor access.Subject, id string, technicianID string) (entities.Project, error) {
	if err := access.RequireAdmin(actor, "only admins can assign technicians"); err != nil {
		return entities.Project{}, err
	}
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return entities.Project{}, invalid("technician id is required")
	}
	if _, err := u.userWithRole(ctx, technicianID, entities.RoleTechnician); err != nil {
		return entities.Project{}, err
	}
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	previous := p.Technician

	updated, err := u.projects.SetTechnician(ctx, id, technicianID)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	if previous != technicianID {
		e := projectEvent(entities.EventProjectAssigned, actor.ID, updated, u.now())
		e.TargetUserID, e.Role = technicianID, entities.RoleTechnician
		publish(ctx, u.events, e)
	}
	return updated, nil
}

func (u *ProjectUseCase) AddClient(ctx context.Context, actor access.Subject, id string, clientID string) (entities.Project, error) {
	if err := access.RequireAdmin(actor, "only admins can add clients to a project"); err != nil {
		return entities.Project{}, err
	}
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Project{}, invalid("client id is required")
	}
	if _, err := u.userWithRole(ctx, clientID, entities.RoleClient); err != nil {
		return entities.Project{}, err
	}
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.HasClient(clientID) {
		return entities.Project{}, ErrClientAlreadyAdded
	}

	updated, err := u.projects.AddClient(ctx, id, clientID)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.Project{}, ErrClientAlreadyAdded
	}
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	e := projectEvent(entities.EventProjectAssigned, actor.ID, updated, u.now())
	e.TargetUserID, e.Role = clientID, entities.RoleClient
	publish(ctx, u.events, e)
	return updated, nil
}

func (u *ProjectUseCase) ChangeStatus(ctx context.Context, actor access.Subject, id string, status entities.ProjectStatus, notes string) (entities.Project, error) {
	if err := access.RequireAdmin(actor, "only admins can change the status of a project"); err != nil {
		return entities.Project{}, err
	}
	if !status.Valid() {
		return entities.Project{}, invalid(fmt.Sprintf("invalid project status %q", status))
	}
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	previous := p.Status
	if strings.TrimSpace(notes) == "" {
		notes = fmt.Sprintf("Estado cambiado de %s a %s", previous, status)
	}

	entry, changed, err := p.ChangeStatus(entities.StatusTransition[entities.ProjectStatus]{To: status, Actor: actor.ID, Notes: notes}, u.now())
	if err != nil {
		return entities.Project{}, err
	}
	if !changed {
		return p, nil
	}
	updated, err := u.projects.UpdateStatus(ctx, id, previous, entry)
	if errors.Is(err, interfaces.ErrStaleStatus) {
		return entities.Project{}, ErrConcurrentStatusChange
	}
	if err != nil {
		return entities.Project{}, err
	}
	metrics.StatusTransitions.WithLabelValues("project", string(status)).Inc()
	log.Printf("[project][usecase] status changed id=%s from=%q to=%q by=%s", id, previous, status, actor.ID)

	e := projectEvent(entities.EventProjectStatusChanged, actor.ID, updated, entry.ChangedAt)
	e.PreviousStatus, e.NewStatus = string(previous), string(status)
	publish(ctx, u.events, e)
	return updated, nil
}

func (u *ProjectUseCase) AddMilestone(ctx context.Context, actor access.Subject, id string, in MilestoneInput) (entities.Milestone, error) {
	p, err := u.Get(ctx, actor, id)
	if err != nil {
		return entities.Milestone{}, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Milestone{}, invalid("milestone title is required")
	}
	now := u.now()
	m := entities.Milestone{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Attachments: []entities.Attachment{},
		CreatedBy:   actor.ID,
		CreatedAt:   now,
	}
	if len(in.Files) > 0 {
		if m.Attachments, err = storeUploads(ctx, u.files, actor.ID, in.Files, now); err != nil {
			return entities.Milestone{}, err
		}
	}
	updated, err := u.projects.AppendMilestone(ctx, p.ID, m)
	if err != nil {
		return entities.Milestone{}, err
	}
	if updated.ID == "" {
		return entities.Milestone{}, ErrProjectNotFound
	}

	e := projectEvent(entities.EventMilestoneAdded, actor.ID, updated, now)
	e.MilestoneTitle = m.Title
	publish(ctx, u.events, e)
	return m, nil
}

func (u *ProjectUseCase) ListMilestones(ctx context.Context, actor access.Subject, id string) ([]entities.Milestone, error) {
	p, err := u.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return p.Milestones, nil
}

func (u *ProjectUseCase) GetMilestone(ctx context.Context, actor access.Subject, id string, milestoneID string) (entities.Milestone, error) {
	p, err := u.Get(ctx, actor, id)
	if err != nil {
		return entities.Milestone{}, err
	}
	i := slices.IndexFunc(p.Milestones, func(m entities.Milestone) bool { return m.ID == milestoneID })
	if i < 0 {
		return entities.Milestone{}, ErrMilestoneNotFound
	}
	return p.Milestones[i], nil
}

func (u *ProjectUseCase) UpdateMilestone(ctx context.Context, actor access.Subject, id string, milestoneID string, in MilestoneInput) (entities.Milestone, error) {
	p, err := u.Get(ctx, actor, id)
	if err != nil {
		return entities.Milestone{}, err
	}
	i := slices.IndexFunc(p.Milestones, func(m entities.Milestone) bool { return m.ID == milestoneID })
	if i < 0 {
		return entities.Milestone{}, ErrMilestoneNotFound
	}
	m := p.Milestones[i]
	if !actor.IsAdmin() && m.CreatedBy != actor.ID {
		return entities.Milestone{}, access.Deny("only the author of a milestone or an admin can change it")
	}
	if t := strings.TrimSpace(in.Title); t != "" {
		m.Title = t
	}
	if d := strings.TrimSpace(in.Description); d != "" {
		m.Description = d
	}
	if len(in.Files) > 0 {
		atts, err := storeUploads(ctx, u.files, actor.ID, in.Files, u.now())
		if err != nil {
			return entities.Milestone{}, err
		}
		m.Attachments = append(slices.Clone(m.Attachments), atts...)
	}
	milestones := slices.Clone(p.Milestones)
	milestones[i] = m
	if _, err := u.projects.SetMilestones(ctx, p.ID, milestones); err != nil {
		return entities.Milestone{}, err
	}
	return m, nil
}

func (u *ProjectUseCase) DeleteMilestone(ctx context.Context, actor access.Subject, id string, milestoneID string) error {
	p, err := u.Get(ctx, actor, id)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(p.Milestones, func(m entities.Milestone) bool { return m.ID == milestoneID })
	if i < 0 {
		return ErrMilestoneNotFound
	}
	if !actor.IsAdmin() && p.Milestones[i].CreatedBy != actor.ID {
		return access.Deny("only the author of a milestone or an admin can delete it")
	}
	_, err = u.projects.SetMilestones(ctx, p.ID, slices.Delete(slices.Clone(p.Milestones), i, i+1))
	return err
}

func (u *ProjectUseCase) AddPhotos(ctx context.Context, actor access.Subject, id string, files []Upload, description string) ([]entities.Photo, error) {
	p, err := u.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	now := u.now()
	atts, err := storeUploads(ctx, u.files, actor.ID, files, now)
	if err != nil {
		return nil, err
	}
	photos := make([]entities.Photo, 0, len(atts))
	for _, a := range atts {
		photos = append(photos, entities.Photo{
			ID:          uuid.NewString(),
			URL:         a.URL,
			Description: strings.TrimSpace(description),
			UploadedBy:  actor.ID,
			UploadedAt:  now,
		})
	}
	if _, err := u.projects.AppendPhotos(ctx, p.ID, photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (u *ProjectUseCase) DeletePhoto(ctx context.Context, actor access.Subject, id string, photoID string) error {
	p, err := u.Get(ctx, actor, id)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(p.Photos, func(ph entities.Photo) bool { return ph.ID == photoID })
	if i < 0 {
		return ErrPhotoNotFound
	}
	if !actor.IsAdmin() && p.Photos[i].UploadedBy != actor.ID {
		return access.Deny("only the uploader of a photo or an admin can delete it")
	}
	_, err = u.projects.SetPhotos(ctx, p.ID, slices.Delete(slices.Clone(p.Photos), i, i+1))
	return err
}

func (u *ProjectUseCase) AddDocuments(ctx context.Context, actor access.Subject, id string, files []Upload) ([]entities.Attachment, error) {
	p, err := u.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	docs, err := storeUploads(ctx, u.files, actor.ID, files, u.now())
	if err != nil {
		return nil, err
	}
	if _, err := u.projects.AppendDocuments(ctx, p.ID, docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (u *ProjectUseCase) AddLocationPoint(ctx context.Context, actor access.Subject, id string, in LocationPointInput) (entities.LocationPoint, error) {
	p, err := u.Get(ctx, actor, id)
	if err != nil {
		return entities.LocationPoint{}, err
	}
	in, err = validateLocationPoint(in)
	if err != nil {
		return entities.LocationPoint{}, err
	}
	lp := entities.LocationPoint{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		Coordinates: orb.Point{in.Longitude, in.Latitude},
		CreatedBy:   actor.ID,
		CreatedAt:   u.now(),
	}
	if _, err := u.projects.AppendLocationPoint(ctx, p.ID, lp); err != nil {
		return entities.LocationPoint{}, err
	}
	return lp, nil
}

func (u *ProjectUseCase) ListLocationPoints(ctx context.Context, actor access.Subject, id string) ([]entities.LocationPoint, error) {
	p, err := u.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return p.LocationPoints, nil
}

func (u *ProjectUseCase) UpdateLocationPoint(ctx context.Context, actor access.Subject, id string, pointID string, in LocationPointInput) (entities.LocationPoint, error) {
	p, err := u.Get(ctx, actor, id)
	if err != nil {
		return entities.LocationPoint{}, err
	}
	i := slices.IndexFunc(p.LocationPoints, func(lp entities.LocationPoint) bool { return lp.ID == pointID })
	if i < 0 {
		return entities.LocationPoint{}, ErrLocationPointNotFound
	}
	lp := p.LocationPoints[i]
	if !actor.IsAdmin() && lp.CreatedBy != actor.ID {
		return entities.LocationPoint{}, access.Deny("only the author of a location point or an admin can change it")
	}
	in, err = validateLocationPoint(in)
	if err != nil {
		return entities.LocationPoint{}, err
	}
	lp.Name, lp.Type, lp.Description = in.Name, in.Type, in.Description
	lp.Coordinates = orb.Point{in.Longitude, in.Latitude}

	points := slices.Clone(p.LocationPoints)
	points[i] = lp
	if _, err := u.projects.SetLocationPoints(ctx, p.ID, points); err != nil {
		return entities.LocationPoint{}, err
	}
	return lp, nil
}

func (u *ProjectUseCase) DeleteLocationPoint(ctx context.Context, actor access.Subject, id string, pointID string) error {
	p, err := u.Get(ctx, actor, id)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(p.LocationPoints, func(lp entities.LocationPoint) bool { return lp.ID == pointID })
	if i < 0 {
		return ErrLocationPointNotFound
	}
	if !actor.IsAdmin() && p.LocationPoints[i].CreatedBy != actor.ID {
		return access.Deny("only the author of a location point or an admin can delete it")
	}
	_, err = u.projects.SetLocationPoints(ctx, p.ID, slices.Delete(slices.Clone(p.LocationPoints), i, i+1))
	return err
}

// LocationPointsGeoJSON renders the project's points as a FeatureCollection for the map view.
func (u *ProjectUseCase) LocationPointsGeoJSON(ctx context.Context, actor access.Subject, id string) ([]byte, error) {
	p, err := u.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	fc := geojson.NewFeatureCollection()
	for _, lp := range p.LocationPoints {
		f := geojson.NewFeature(lp.Coordinates)
		f.ID = lp.ID
		f.Properties["name"] = lp.Name
		f.Properties["type"] = string(lp.Type)
		if lp.Description != "" {
			f.Properties["description"] = lp.Description
		}
		fc.Append(f)
	}
	return fc.MarshalJSON()
}

func (u *ProjectUseCase) Metrics(ctx context.Context, actor access.Subject, id string) (entities.ProjectMetrics, error) {
	p, err := u.Get(ctx, actor, id)
	if err != nil {
		return entities.ProjectMetrics{}, err
	}
	return p.Metrics, nil
}

// RecomputeMetrics refreshes the denormalized counters from the project's requests.
func (u *ProjectUseCase) RecomputeMetrics(ctx context.Context, id string) (entities.ProjectMetrics, error) {
	requests, err := u.requests.ListByProject(ctx, id)
	if err != nil {
		return entities.ProjectMetrics{}, err
	}
	m := entities.ComputeMetrics(requests)
	if err := u.projects.UpdateMetrics(ctx, id, m); err != nil {
		return entities.ProjectMetrics{}, err
	}
	return m, nil
}

func (u *ProjectUseCase) load(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidID
	}
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) ensureOrderNumberFree(ctx context.Context, orderNumber, selfID string) error {
	if orderNumber == "" {
		return nil
	}
	existing, err := u.projects.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return err
	}
	if existing.ID != "" && existing.ID != selfID {
		return ErrDuplicateOrderNumber
	}
	return nil
}

func (u *ProjectUseCase) userWithRole(ctx context.Context, id string, role entities.Role) (entities.User, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == "" || usr.Role != role {
		return entities.User{}, classified(ErrNotFound, fmt.Sprintf("%s %s not found", role, id))
	}
	return usr, nil
}

func normalizeProjectInput(in ProjectInput) ProjectInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	in.OrderNumber = strings.TrimSpace(in.OrderNumber)
	in.Technician = strings.TrimSpace(in.Technician)
	if in.ReceptionType == "" {
		in.ReceptionType = entities.ReceptionTotal
	}
	return in
}

func validateProjectInput(in ProjectInput) error {
	switch {
	case in.Name == "":
		return invalid("project name is required")
	case in.Location == "":
		return invalid("project location is required")
	case !in.ReceptionType.Valid():
		return invalid(fmt.Sprintf("invalid reception type %q", in.ReceptionType))
	case in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate):
		return invalid("end date is before start date")
	}
	return nil
}

func applyProjectInput(p *entities.Project, in ProjectInput) {
	p.Name = in.Name
	p.Location = in.Location
	p.Description = strings.TrimSpace(in.Description)
	p.OrderNumber = in.OrderNumber
	p.IdentificationNumber = strings.TrimSpace(in.IdentificationNumber)
	p.ReceptionType = in.ReceptionType
	p.CompanyResponsible = strings.TrimSpace(in.CompanyResponsible)
	p.ClientContactName = strings.TrimSpace(in.ClientContactName)
	p.ClientCompanyName = strings.TrimSpace(in.ClientCompanyName)
	p.CostCenter = strings.TrimSpace(in.CostCenter)
	p.StartDate = in.StartDate
	p.EndDate = in.EndDate
}

func validateLocationPoint(in LocationPointInput) (LocationPointInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Type == "" {
		in.Type = entities.LocationPointOther
	}
	switch {
	case in.Name == "":
		return in, invalid("location point name is required")
	case !in.Type.Valid():
		return in, invalid(fmt.Sprintf("invalid location point type %q", in.Type))
	case in.Longitude < -180 || in.Longitude > 180 || in.Latitude < -90 || in.Latitude > 90:
		return in, invalid("coordinates out of range")
	}
	return in, nil
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
