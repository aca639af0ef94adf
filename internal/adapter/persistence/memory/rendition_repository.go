package memory

import (
	"context"
	"slices"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

type RenditionRepository struct {
	s *Store
}

var _ interfaces.IRenditionRepository = (*RenditionRepository)(nil)

func cloneRendition(r entities.Rendition) entities.Rendition {
	r.Expenses = slices.Clone(r.Expenses)
	r.Attachments = slices.Clone(r.Attachments)
	r.History = slices.Clone(r.History)
	r.WorkDetails.MaterialsUsed = slices.Clone(r.WorkDetails.MaterialsUsed)
	return r
}

// CreateLinked stores the rendition and links it to its request under one lock.
func (r *RenditionRepository) CreateLinked(ctx context.Context, rd entities.Rendition) (entities.Rendition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sr, ok := r.s.requests[rd.ServiceRequestID]
	if !ok {
		return entities.Rendition{}, interfaces.ErrReferenceMissing
	}
	if _, ok := r.s.renditions[rd.ID]; ok {
		return entities.Rendition{}, interfaces.ErrDuplicateKey
	}
	for _, existing := range r.s.renditions {
		if existing.Folio == rd.Folio {
			return entities.Rendition{}, interfaces.ErrDuplicateKey
		}
	}
	r.s.renditions[rd.ID] = cloneRendition(rd)
	sr = cloneRequest(sr)
	sr.Renditions = append(sr.Renditions, rd.ID)
	r.s.requests[sr.ID] = sr
	return cloneRendition(rd), nil
}

func (r *RenditionRepository) GetByID(ctx context.Context, id string) (entities.Rendition, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rd, ok := r.s.renditions[id]
	if !ok {
		return entities.Rendition{}, nil
	}
	return cloneRendition(rd), nil
}

func (r *RenditionRepository) List(ctx context.Context, f interfaces.RenditionFilter) ([]entities.Rendition, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Rendition, 0, len(r.s.renditions))
	for _, rd := range r.s.renditions {
		if f.Technician != "" && rd.Technician != f.Technician {
			continue
		}
		if f.ServiceRequestID != "" && rd.ServiceRequestID != f.ServiceRequestID {
			continue
		}
		if f.ProjectID != "" && rd.ProjectID != f.ProjectID {
			continue
		}
		if f.Status != "" && rd.Status != f.Status {
			continue
		}
		if f.From != nil && rd.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && rd.CreatedAt.After(*f.To) {
			continue
		}
		out = append(out, cloneRendition(rd))
	}
	newestFirst(out, func(rd entities.Rendition) time.Time { return rd.CreatedAt }, func(rd entities.Rendition) string { return rd.ID })
	items, total := page(out, f.PageQuery)
	return items, total, nil
}

// Update writes the author-editable fields together with status, ledger and review data,
// provided the stored status still equals expected.
func (r *RenditionRepository) Update(ctx context.Context, rd entities.Rendition, expected entities.RenditionStatus) (entities.Rendition, error) {
	return r.mutate(rd.ID, expected, func(stored *entities.Rendition) {
		stored.Description = rd.Description
		stored.WorkDetails = rd.WorkDetails
		stored.Location = rd.Location
		stored.Status = rd.Status
		stored.History = slices.Clone(rd.History)
		stored.ReviewedBy = rd.ReviewedBy
		stored.ReviewDate = rd.ReviewDate
		stored.ReviewComments = rd.ReviewComments
		stored.RejectionReason = rd.RejectionReason
		stored.RejectionComments = rd.RejectionComments
		stored.UpdatedAt = rd.UpdatedAt
	})
}

func (r *RenditionRepository) AppendExpense(ctx context.Context, id string, e entities.Expense, expected entities.RenditionStatus, submitted *entities.HistoryEntry) (entities.Rendition, error) {
	return r.mutate(id, expected, func(rd *entities.Rendition) {
		rd.Expenses = append(rd.Expenses, e)
		applySubmitted(rd, submitted)
	})
}

func (r *RenditionRepository) AppendAttachments(ctx context.Context, id string, atts []entities.Attachment, expected entities.RenditionStatus, submitted *entities.HistoryEntry) (entities.Rendition, error) {
	return r.mutate(id, expected, func(rd *entities.Rendition) {
		rd.Attachments = append(rd.Attachments, atts...)
		applySubmitted(rd, submitted)
	})
}

func (r *RenditionRepository) Delete(ctx context.Context, rd entities.Rendition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.renditions, rd.ID)
	if sr, ok := r.s.requests[rd.ServiceRequestID]; ok {
		sr = cloneRequest(sr)
		sr.Renditions = slices.DeleteFunc(sr.Renditions, func(id string) bool { return id == rd.ID })
		r.s.requests[sr.ID] = sr
	}
	return nil
}

func (r *RenditionRepository) LatestIdentifier(ctx context.Context) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var latest entities.Rendition
	for _, rd := range r.s.renditions {
		if supersedes(rd.CreatedAt, rd.Folio, latest.CreatedAt, latest.Folio) {
			latest = rd
		}
	}
	return latest.Folio, nil
}

func (r *RenditionRepository) mutate(id string, expected entities.RenditionStatus, fn func(rd *entities.Rendition)) (entities.Rendition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.renditions[id]
	if !ok {
		return entities.Rendition{}, nil
	}
	if stored.Status != expected {
		return entities.Rendition{}, interfaces.ErrStaleStatus
	}
	rd := cloneRendition(stored)
	fn(&rd)
	r.s.renditions[id] = rd
	return cloneRendition(rd), nil
}

func applySubmitted(rd *entities.Rendition, submitted *entities.HistoryEntry) {
	if submitted == nil {
		return
	}
	rd.Status = entities.RenditionStatus(submitted.Status)
	rd.History = entities.AppendHistory(rd.History, *submitted)
	rd.UpdatedAt = submitted.ChangedAt
}
