package memory

import (
	"context"
	"slices"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

type ServiceRequestRepository struct {
	s *Store
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestRepository)(nil)

func cloneRequest(sr entities.ServiceRequest) entities.ServiceRequest {
	sr.Attachments = slices.Clone(sr.Attachments)
	sr.Comments = slices.Clone(sr.Comments)
	sr.History = slices.Clone(sr.History)
	sr.Renditions = slices.Clone(sr.Renditions)
	return sr
}

func (r *ServiceRequestRepository) Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.requests[sr.ID]; ok {
		return entities.ServiceRequest{}, interfaces.ErrDuplicateKey
	}
	for _, existing := range r.s.requests {
		if existing.RequestNumber == sr.RequestNumber {
			return entities.ServiceRequest{}, interfaces.ErrDuplicateKey
		}
	}
	r.s.requests[sr.ID] = cloneRequest(sr)
	return cloneRequest(sr), nil
}

func (r *ServiceRequestRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sr, ok := r.s.requests[id]
	if !ok {
		return entities.ServiceRequest{}, nil
	}
	return cloneRequest(sr), nil
}

func (r *ServiceRequestRepository) List(ctx context.Context, f interfaces.ServiceRequestFilter) ([]entities.ServiceRequest, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.ServiceRequest, 0, len(r.s.requests))
	for _, sr := range r.s.requests {
		if f.ProjectID != "" && sr.ProjectID != f.ProjectID {
			continue
		}
		if f.RequestedBy != "" && sr.RequestedBy != f.RequestedBy {
			continue
		}
		if f.AssignedTo != "" && sr.AssignedTo != f.AssignedTo {
			continue
		}
		if f.Status != "" && sr.Status != f.Status {
			continue
		}
		if f.Priority != "" && sr.Priority != f.Priority {
			continue
		}
		if f.Search != "" && !containsFold(sr.RequestNumber+" "+sr.Title+" "+sr.Description, f.Search) {
			continue
		}
		out = append(out, cloneRequest(sr))
	}
	newestFirst(out, requestCreated, requestID)
	items, total := page(out, f.PageQuery)
	return items, total, nil
}

func (r *ServiceRequestRepository) ListByProject(ctx context.Context, projectID string) ([]entities.ServiceRequest, error) {
	items, _, err := r.List(ctx, interfaces.ServiceRequestFilter{ProjectID: projectID})
	return items, err
}

// Update writes the admin-editable fields. Status, history and lists are left untouched.
func (r *ServiceRequestRepository) Update(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	return r.mutate(sr.ID, func(stored *entities.ServiceRequest) error {
		stored.Title = sr.Title
		stored.Description = sr.Description
		stored.Priority = sr.Priority
		stored.RequestType = sr.RequestType
		stored.Location = sr.Location
		stored.AssignedTo = sr.AssignedTo
		stored.ScheduledDate = sr.ScheduledDate
		stored.UpdatedAt = sr.UpdatedAt
		return nil
	})
}

func (r *ServiceRequestRepository) Delete(ctx context.Context, sr entities.ServiceRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.requests, sr.ID)
	return nil
}

func (r *ServiceRequestRepository) UpdateStatus(ctx context.Context, id string, expected entities.RequestStatus, entry entities.HistoryEntry, completedAt *time.Time) (entities.ServiceRequest, error) {
	return r.mutate(id, func(sr *entities.ServiceRequest) error {
		if sr.Status != expected {
			return interfaces.ErrStaleStatus
		}
		sr.Status = entities.RequestStatus(entry.Status)
		sr.History = entities.AppendHistory(sr.History, entry)
		if completedAt != nil {
			sr.CompletionDate = completedAt
		}
		sr.UpdatedAt = entry.ChangedAt
		return nil
	})
}

func (r *ServiceRequestRepository) AppendComment(ctx context.Context, id string, c entities.Comment) (entities.ServiceRequest, error) {
	return r.mutate(id, func(sr *entities.ServiceRequest) error {
		sr.Comments = append(sr.Comments, c)
		return nil
	})
}

func (r *ServiceRequestRepository) AppendAttachments(ctx context.Context, id string, atts []entities.Attachment) (entities.ServiceRequest, error) {
	return r.mutate(id, func(sr *entities.ServiceRequest) error {
		sr.Attachments = append(sr.Attachments, atts...)
		return nil
	})
}

func (r *ServiceRequestRepository) LinkRendition(ctx context.Context, id string, renditionID string) (entities.ServiceRequest, error) {
	return r.mutate(id, func(sr *entities.ServiceRequest) error {
		if !sr.HasRendition(renditionID) {
			sr.Renditions = append(sr.Renditions, renditionID)
		}
		return nil
	})
}

// LatestIdentifier returns the request number of the most recently created request.
func (r *ServiceRequestRepository) LatestIdentifier(ctx context.Context) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var latest entities.ServiceRequest
	for _, sr := range r.s.requests {
		if supersedes(sr.CreatedAt, sr.RequestNumber, latest.CreatedAt, latest.RequestNumber) {
			latest = sr
		}
	}
	return latest.RequestNumber, nil
}

func (r *ServiceRequestRepository) mutate(id string, fn func(sr *entities.ServiceRequest) error) (entities.ServiceRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.requests[id]
	if !ok {
		return entities.ServiceRequest{}, nil
	}
	sr := cloneRequest(stored)
	if err := fn(&sr); err != nil {
		return entities.ServiceRequest{}, err
	}
	r.s.requests[id] = sr
	return cloneRequest(sr), nil
}

func requestCreated(sr entities.ServiceRequest) time.Time { return sr.CreatedAt }

func requestID(sr entities.ServiceRequest) string { return sr.ID }
