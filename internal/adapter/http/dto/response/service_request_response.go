package response

import (
	"time"

	"fieldops/internal/domain/entities"
)

// ServiceRequestSummary is the list shape; history and comments are served by the detail route.
type ServiceRequestSummary struct {
	ID              string                 `json:"id"`
	RequestNumber   string                 `json:"request_number"`
	ProjectID       string                 `json:"project"`
	Title           string                 `json:"title"`
	Priority        entities.Priority      `json:"priority"`
	Status          entities.RequestStatus `json:"status"`
	RequestType     entities.RequestType   `json:"request_type"`
	RequestedBy     string                 `json:"requested_by"`
	AssignedTo      string                 `json:"assigned_to,omitempty"`
	RenditionsCount int                    `json:"renditions_count"`
	CreatedAt       time.Time              `json:"created_at"`
}

func FromServiceRequests(rs []entities.ServiceRequest) []ServiceRequestSummary {
	out := make([]ServiceRequestSummary, 0, len(rs))
	for _, r := range rs {
		out = append(out, ServiceRequestSummary{
			ID:              r.ID,
			RequestNumber:   r.RequestNumber,
			ProjectID:       r.ProjectID,
			Title:           r.Title,
			Priority:        r.Priority,
			Status:          r.Status,
			RequestType:     r.RequestType,
			RequestedBy:     r.RequestedBy,
			AssignedTo:      r.AssignedTo,
			RenditionsCount: len(r.Renditions),
			CreatedAt:       r.CreatedAt,
		})
	}
	return out
}
