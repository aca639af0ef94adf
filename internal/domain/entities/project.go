package entities

import (
	"slices"
	"time"

	"github.com/paulmach/orb"
)

// ProjectStatus is the lifecycle of an installation/site.
// Projects have no transition graph: an admin may move them to any status.
type ProjectStatus string

const (
	ProjectStatusInProgress  ProjectStatus = "En progreso"
	ProjectStatusCompleted   ProjectStatus = "Finalizado"
	ProjectStatusPaused      ProjectStatus = "En pausa"
	ProjectStatusCancelled   ProjectStatus = "Cancelado"
	ProjectStatusUnderReview ProjectStatus = "En revisión"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusPaused, ProjectStatusCancelled, ProjectStatusUnderReview:
		return true
	}
	return false
}

type ReceptionType string

const (
	ReceptionPartial ReceptionType = "Parcial"
	ReceptionTotal   ReceptionType = "Total"
	ReceptionOther   ReceptionType = "Otro"
)

func (r ReceptionType) Valid() bool {
	return r == ReceptionPartial || r == ReceptionTotal || r == ReceptionOther
}

type LocationPointType string

const (
	LocationPointAccess       LocationPointType = "Acceso"
	LocationPointInstallation LocationPointType = "Instalación"
	LocationPointEquipment    LocationPointType = "Equipo"
	LocationPointCheckpoint   LocationPointType = "Punto de control"
	LocationPointOther        LocationPointType = "Otro"
)

func (t LocationPointType) Valid() bool {
	switch t {
	case LocationPointAccess, LocationPointInstallation, LocationPointEquipment, LocationPointCheckpoint, LocationPointOther:
		return true
	}
	return false
}

type Milestone struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Attachments []Attachment `json:"attachments"`
	CreatedBy   string       `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
}

type Photo struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	UploadedBy  string    `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// LocationPoint is a named geo point of a project. Coordinates follow GeoJSON order [lng, lat].
type LocationPoint struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Type        LocationPointType `json:"type"`
	Description string            `json:"description,omitempty"`
	Coordinates orb.Point         `json:"coordinates"`
	CreatedBy   string            `json:"created_by"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ProjectMetrics are denormalized counters recomputed from the project's requests.
// They are informative only; the requests themselves are authoritative.
type ProjectMetrics struct {
	TotalRequests     int `json:"total_requests"`
	OpenRequests      int `json:"open_requests"`
	CompletedRequests int `json:"completed_requests"`
}

// Project is a physical installation where service is provided.
//
// Storage model (DynamoDB):
//   - PK: id
//   - embedded lists: milestones, photos, documents, location_points, status_history
//
// Access to a project (and transitively to its requests and renditions) derives only from
// Technician and Clients.
type Project struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Location             string          `json:"location"`
	Description          string          `json:"description,omitempty"`
	OrderNumber          string          `json:"order_number,omitempty"`
	IdentificationNumber string          `json:"identification_number,omitempty"`
	ReceptionType        ReceptionType   `json:"reception_type"`
	CompanyResponsible   string          `json:"company_responsible,omitempty"`
	ClientContactName    string          `json:"client_contact_name,omitempty"`
	ClientCompanyName    string          `json:"client_company_name,omitempty"`
	CostCenter           string          `json:"cost_center,omitempty"`
	Technician           string          `json:"technician,omitempty"`
	Clients              []string        `json:"clients"`
	Status               ProjectStatus   `json:"status"`
	StartDate            *time.Time      `json:"start_date,omitempty"`
	EndDate              *time.Time      `json:"end_date,omitempty"`
	Milestones           []Milestone     `json:"milestones"`
	Photos               []Photo         `json:"photos"`
	Documents            []Attachment    `json:"documents"`
	LocationPoints       []LocationPoint `json:"location_points"`
	Metrics              ProjectMetrics  `json:"metrics"`
	StatusHistory        []HistoryEntry  `json:"status_history"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func (p Project) HasClient(userID string) bool {
	return userID != "" && slices.Contains(p.Clients, userID)
}

// Seed records the initial status in the ledger. It is called once, at creation.
func (p *Project) Seed(creator string, now time.Time) {
	if p.Status == "" {
		p.Status = ProjectStatusInProgress
	}
	p.StatusHistory = AppendHistory(nil, HistoryEntry{
		Status:    string(p.Status),
		ChangedBy: creator,
		ChangedAt: now,
		Notes:     CreatedNotes,
	})
}

// ChangeStatus moves the project to t.To. Any valid status is reachable from any other.
// It reports false, without touching the ledger, when the status does not change.
func (p *Project) ChangeStatus(t StatusTransition[ProjectStatus], now time.Time) (HistoryEntry, bool, error) {
	if !t.To.Valid() {
		return HistoryEntry{}, false, ErrInvalidTransition
	}
	entry, err := t.entry(now)
	if err != nil {
		return HistoryEntry{}, false, err
	}
	if p.Status == t.To {
		return HistoryEntry{}, false, nil
	}
	p.Status = t.To
	p.StatusHistory = AppendHistory(p.StatusHistory, entry)
	p.UpdatedAt = now
	return entry, true, nil
}

// ComputeMetrics derives the project counters from its service requests.
func ComputeMetrics(requests []ServiceRequest) ProjectMetrics {
	var m ProjectMetrics
	for _, r := range requests {
		m.TotalRequests++
		switch r.Status {
		case RequestStatusCompleted:
			m.CompletedRequests++
		case RequestStatusCancelled:
		default:
			m.OpenRequests++
		}
	}
	return m
}
