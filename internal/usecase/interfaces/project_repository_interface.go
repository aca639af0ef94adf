package interfaces

//go:generate mockgen -source=project_repository_interface.go -destination=mocks/project_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"fieldops/internal/domain/entities"
)

type ProjectFilter struct {
	Technician string
	Client     string
	Status     entities.ProjectStatus
	Search     string
	PageQuery
}

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// Lookups return a zero Project (empty ID) when nothing matches.
// Embedded lists are appended atomically; Set* replace a whole list (last write wins).
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Project, error)
	List(ctx context.Context, f ProjectFilter) ([]entities.Project, int, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, expected entities.ProjectStatus, entry entities.HistoryEntry) (entities.Project, error)
	SetTechnician(ctx context.Context, id string, technicianID string) (entities.Project, error)
	AddClient(ctx context.Context, id string, clientID string) (entities.Project, error)
	AppendMilestone(ctx context.Context, id string, milestone entities.Milestone) (entities.Project, error)
	SetMilestones(ctx context.Context, id string, milestones []entities.Milestone) (entities.Project, error)
	AppendPhotos(ctx context.Context, id string, photos []entities.Photo) (entities.Project, error)
	SetPhotos(ctx context.Context, id string, photos []entities.Photo) (entities.Project, error)
	AppendDocuments(ctx context.Context, id string, docs []entities.Attachment) (entities.Project, error)
	AppendLocationPoint(ctx context.Context, id string, lp entities.LocationPoint) (entities.Project, error)
	SetLocationPoints(ctx context.Context, id string, points []entities.LocationPoint) (entities.Project, error)
	UpdateMetrics(ctx context.Context, id string, projectMetrics entities.ProjectMetrics) error
}
