package entities

import "time"

// EventKind names a committed business mutation that may interest other users.
type EventKind string

const (
	EventProjectAssigned      EventKind = "project_assigned"
	EventProjectStatusChanged EventKind = "project_status_changed"
	EventMilestoneAdded       EventKind = "milestone_added"
	EventRequestCreated       EventKind = "request_created"
	EventRequestAssigned      EventKind = "request_assigned"
	EventRequestStatusChanged EventKind = "request_status_changed"
	EventRequestCommentAdded  EventKind = "request_comment_added"
	EventRenditionCreated     EventKind = "rendition_created"
	EventRenditionApproved    EventKind = "rendition_approved"
	EventRenditionRejected    EventKind = "rendition_rejected"
)

// Event is published after a mutation commits. It carries a snapshot of every party the
// dispatcher may need, so recipients can be resolved without re-reading the entities.
type Event struct {
	ID         string    `json:"id"`
	Kind       EventKind `json:"kind"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Subject    RelatedTo `json:"subject"`

	ProjectID         string   `json:"project_id,omitempty"`
	ProjectName       string   `json:"project_name,omitempty"`
	ProjectTechnician string   `json:"project_technician,omitempty"`
	ProjectClients    []string `json:"project_clients,omitempty"`

	RequestNumber string `json:"request_number,omitempty"`
	RequestTitle  string `json:"request_title,omitempty"`
	RequesterID   string `json:"requester_id,omitempty"`
	AssigneeID    string `json:"assignee_id,omitempty"`

	Folio               string `json:"folio,omitempty"`
	RenditionTechnician string `json:"rendition_technician,omitempty"`

	TargetUserID   string `json:"target_user_id,omitempty"`
	Role           Role   `json:"role,omitempty"`
	PreviousStatus string `json:"previous_status,omitempty"`
	NewStatus      string `json:"new_status,omitempty"`
	Reason         string `json:"reason,omitempty"`
	MilestoneTitle string `json:"milestone_title,omitempty"`

	// Attempt counts delivery retries of a requeued event.
	Attempt int `json:"attempt,omitempty"`
}
