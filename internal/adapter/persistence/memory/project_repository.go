package memory

import (
	"context"
	"slices"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

type ProjectRepository struct {
	s *Store
}

var _ interfaces.IProjectRepository = (*ProjectRepository)(nil)

func cloneProject(p entities.Project) entities.Project {
	p.Clients = slices.Clone(p.Clients)
	p.Milestones = slices.Clone(p.Milestones)
	p.Photos = slices.Clone(p.Photos)
	p.Documents = slices.Clone(p.Documents)
	p.LocationPoints = slices.Clone(p.LocationPoints)
	p.StatusHistory = slices.Clone(p.StatusHistory)
	return p
}

func (r *ProjectRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[p.ID]; ok {
		return entities.Project{}, interfaces.ErrDuplicateKey
	}
	if p.OrderNumber != "" {
		for _, existing := range r.s.projects {
			if existing.OrderNumber == p.OrderNumber {
				return entities.Project{}, interfaces.ErrDuplicateKey
			}
		}
	}
	r.s.projects[p.ID] = cloneProject(p)
	return cloneProject(p), nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.projects[id]
	if !ok {
		return entities.Project{}, nil
	}
	return cloneProject(p), nil
}

func (r *ProjectRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.projects {
		if p.OrderNumber == orderNumber {
			return cloneProject(p), nil
		}
	}
	return entities.Project{}, nil
}

func (r *ProjectRepository) List(ctx context.Context, f interfaces.ProjectFilter) ([]entities.Project, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Project, 0, len(r.s.projects))
	for _, p := range r.s.projects {
		if f.Technician != "" && p.Technician != f.Technician {
			continue
		}
		if f.Client != "" && !p.HasClient(f.Client) {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Search != "" && !containsFold(p.Name+" "+p.Location+" "+p.OrderNumber, f.Search) {
			continue
		}
		out = append(out, cloneProject(p))
	}
	newestFirst(out, func(p entities.Project) time.Time { return p.CreatedAt }, func(p entities.Project) string { return p.ID })
	items, total := page(out, f.PageQuery)
	return items, total, nil
}

// Update writes the editable scalar fields only; lists, status and metrics have their own
// operations.
func (r *ProjectRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	return r.mutate(p.ID, func(stored *entities.Project) error {
		stored.Name = p.Name
		stored.Location = p.Location
		stored.Description = p.Description
		stored.OrderNumber = p.OrderNumber
		stored.IdentificationNumber = p.IdentificationNumber
		stored.ReceptionType = p.ReceptionType
		stored.CompanyResponsible = p.CompanyResponsible
		stored.ClientContactName = p.ClientContactName
		stored.ClientCompanyName = p.ClientCompanyName
		stored.CostCenter = p.CostCenter
		stored.StartDate = p.StartDate
		stored.EndDate = p.EndDate
		stored.UpdatedAt = p.UpdatedAt
		return nil
	})
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.projects, id)
	return nil
}

func (r *ProjectRepository) UpdateStatus(ctx context.Context, id string, expected entities.ProjectStatus, entry entities.HistoryEntry) (entities.Project, error) {
	return r.mutate(id, func(p *entities.Project) error {
		if p.Status != expected {
			return interfaces.ErrStaleStatus
		}
		p.Status = entities.ProjectStatus(entry.Status)
		p.StatusHistory = entities.AppendHistory(p.StatusHistory, entry)
		p.UpdatedAt = entry.ChangedAt
		return nil
	})
}

func (r *ProjectRepository) SetTechnician(ctx context.Context, id string, technicianID string) (entities.Project, error) {
	return r.mutate(id, func(p *entities.Project) error {
		p.Technician = technicianID
		return nil
	})
}

func (r *ProjectRepository) AddClient(ctx context.Context, id string, clientID string) (entities.Project, error) {
	return r.mutate(id, func(p *entities.Project) error {
		if p.HasClient(clientID) {
			return interfaces.ErrDuplicateKey
		}
		p.Clients = append(p.Clients, clientID)
		return nil
	})
}

func (r *ProjectRepository) AppendMilestone(ctx context.Context, id string, m entities.Milestone) (entities.Project, error) {
	return r.mutate(id, func(p *entities.Project) error {
		p.Milestones = append(p.Milestones, m)
		return nil
	})
}

func (r *ProjectRepository) SetMilestones(ctx context.Context, id string, milestones []entities.Milestone) (entities.Project, error) {
	return r.mutate(id, func(p *entities.Project) error {
		p.Milestones = slices.Clone(milestones)
		return nil
	})
}

func (r *ProjectRepository) AppendPhotos(ctx context.Context, id string, photos []entities.Photo) (entities.Project, error) {
	return r.mutate(id, func(p *entities.Project) error {
		p.Photos = append(p.Photos, photos...)
		return nil
	})
}

func (r *ProjectRepository) SetPhotos(ctx context.Context, id string, photos []entities.Photo) (entities.Project, error) {
	return r.mutate(id, func(p *entities.Project) error {
		p.Photos = slices.Clone(photos)
		return nil
	})
}

func (r *ProjectRepository) AppendDocuments(ctx context.Context, id string, docs []entities.Attachment) (entities.Project, error) {
	return r.mutate(id, func(p *entities.Project) error {
		p.Documents = append(p.Documents, docs...)
		return nil
	})
}

func (r *ProjectRepository) AppendLocationPoint(ctx context.Context, id string, lp entities.LocationPoint) (entities.Project, error) {
	return r.mutate(id, func(p *entities.Project) error {
		p.LocationPoints = append(p.LocationPoints, lp)
		return nil
	})
}

func (r *ProjectRepository) SetLocationPoints(ctx context.Context, id string, points []entities.LocationPoint) (entities.Project, error) {
	return r.mutate(id, func(p *entities.Project) error {
		p.LocationPoints = slices.Clone(points)
		return nil
	})
}

func (r *ProjectRepository) UpdateMetrics(ctx context.Context, id string, m entities.ProjectMetrics) error {
	_, err := r.mutate(id, func(p *entities.Project) error {
		p.Metrics = m
		return nil
	})
	return err
}

// mutate applies fn to a copy of the stored project and commits it when fn succeeds.
// A missing project yields a zero value.
func (r *ProjectRepository) mutate(id string, fn func(p *entities.Project) error) (entities.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.projects[id]
	if !ok {
		return entities.Project{}, nil
	}
	p := cloneProject(stored)
	if err := fn(&p); err != nil {
		return entities.Project{}, err
	}
	r.s.projects[id] = p
	return cloneProject(p), nil
}
