package entities

import (
	"slices"
	"time"

	"github.com/paulmach/orb"
)

type RequestStatus string

const (
	RequestStatusRequested   RequestStatus = "Solicitada"
	RequestStatusUnderReview RequestStatus = "En revisión"
	RequestStatusAccepted    RequestStatus = "Aceptada"
	RequestStatusCompleted   RequestStatus = "Finalizada"
	RequestStatusCancelled   RequestStatus = "Cancelada"
)

// requestTransitions is the legal (from -> to) table for service requests.
// Completed and Cancelled are terminal.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusRequested:   {RequestStatusUnderReview, RequestStatusAccepted, RequestStatusCancelled},
	RequestStatusUnderReview: {RequestStatusAccepted, RequestStatusCancelled},
	RequestStatusAccepted:    {RequestStatusCompleted, RequestStatusCancelled},
}

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusRequested, RequestStatusUnderReview, RequestStatusAccepted, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether from -> to is a legal service request transition.
func (s RequestStatus) CanTransition(to RequestStatus) bool {
	return slices.Contains(requestTransitions[s], to)
}

func (s RequestStatus) Terminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Media"
	PriorityLow    Priority = "Baja"
)

func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

type RequestType string

const (
	RequestTypeMaintenance RequestType = "Mantenimiento"
	RequestTypeRepair      RequestType = "Reparación"
	RequestTypeInquiry     RequestType = "Consulta"
	RequestTypeEmergency   RequestType = "Emergencia"
	RequestTypeOther       RequestType = "Otro"
)

func (t RequestType) Valid() bool {
	switch t {
	case RequestTypeMaintenance, RequestTypeRepair, RequestTypeInquiry, RequestTypeEmergency, RequestTypeOther:
		return true
	}
	return false
}

// SiteLocation is an optional point plus a free-text address. Coordinates are [lng, lat].
type SiteLocation struct {
	Address     string     `json:"address,omitempty"`
	Coordinates *orb.Point `json:"coordinates,omitempty"`
}

// ServiceRequest is a work ticket opened on a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (kind-created_at-index): kind, created_at  (latest request lookup)
//   - request_number is unique, guarded by the identifiers table
//
// Invariant: the last History entry's status equals Status.
type ServiceRequest struct {
	ID             string         `json:"id"`
	RequestNumber  string         `json:"request_number"`
	ProjectID      string         `json:"project"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Priority       Priority       `json:"priority"`
	Status         RequestStatus  `json:"status"`
	RequestType    RequestType    `json:"request_type"`
	Location       *SiteLocation  `json:"location,omitempty"`
	RequestedBy    string         `json:"requested_by"`
	AssignedTo     string         `json:"assigned_to,omitempty"`
	ScheduledDate  *time.Time     `json:"scheduled_date,omitempty"`
	CompletionDate *time.Time     `json:"completion_date,omitempty"`
	Attachments    []Attachment   `json:"attachments"`
	Comments       []Comment      `json:"comments"`
	History        []HistoryEntry `json:"history"`
	Renditions     []string       `json:"renditions"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Seed sets defaults and records the single creation entry of the ledger.
func (r *ServiceRequest) Seed(creator string, now time.Time) {
	if r.Status == "" {
		r.Status = RequestStatusRequested
	}
	if r.Priority == "" {
		r.Priority = PriorityMedium
	}
	if r.RequestType == "" {
		r.RequestType = RequestTypeMaintenance
	}
	r.History = AppendHistory(nil, HistoryEntry{
		Status:    string(r.Status),
		ChangedBy: creator,
		ChangedAt: now,
		Notes:     CreatedNotes,
	})
	r.CreatedAt = now
	r.UpdatedAt = now
}

// Transition applies a legal status change and returns the ledger entry it appended.
func (r *ServiceRequest) Transition(t StatusTransition[RequestStatus], now time.Time) (HistoryEntry, error) {
	if !r.Status.CanTransition(t.To) {
		return HistoryEntry{}, ErrInvalidTransition
	}
	return r.apply(t, now)
}

// ForceStatus moves the request to t.To from any state, bypassing the transition table.
// It is used by rendition approval. It reports false when the request already has that status.
func (r *ServiceRequest) ForceStatus(t StatusTransition[RequestStatus], now time.Time) (HistoryEntry, bool, error) {
	if !t.To.Valid() {
		return HistoryEntry{}, false, ErrInvalidTransition
	}
	if r.Status == t.To {
		if t.Actor == "" {
			return HistoryEntry{}, false, ErrMissingActor
		}
		return HistoryEntry{}, false, nil
	}
	e, err := r.apply(t, now)
	return e, err == nil, err
}

func (r *ServiceRequest) apply(t StatusTransition[RequestStatus], now time.Time) (HistoryEntry, error) {
	e, err := t.entry(now)
	if err != nil {
		return HistoryEntry{}, err
	}
	r.Status = t.To
	r.History = AppendHistory(r.History, e)
	if t.To == RequestStatusCompleted {
		done := now
		r.CompletionDate = &done
	}
	r.UpdatedAt = now
	return e, nil
}

func (r ServiceRequest) HasRendition(id string) bool {
	return slices.Contains(r.Renditions, id)
}
