package interfaces

//go:generate mockgen -source=service_request_repository_interface.go -destination=mocks/service_request_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"fieldops/internal/domain/entities"
)

type ServiceRequestFilter struct {
	ProjectID   string
	RequestedBy string
	AssignedTo  string
	Status      entities.RequestStatus
	Priority    entities.Priority
	Search      string
	PageQuery
}

// IServiceRequestRepository abstracts DynamoDB persistence for ServiceRequest.
//
// Create fails with ErrDuplicateKey when the request number is already taken.
// UpdateStatus fails with ErrStaleStatus when the stored status is not the expected one.
type IServiceRequestRepository interface {
	Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	List(ctx context.Context, f ServiceRequestFilter) ([]entities.ServiceRequest, int, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.ServiceRequest, error)
	Update(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error)
	Delete(ctx context.Context, sr entities.ServiceRequest) error
	UpdateStatus(ctx context.Context, id string, expected entities.RequestStatus, entry entities.HistoryEntry, completedAt *time.Time) (entities.ServiceRequest, error)
	AppendComment(ctx context.Context, id string, c entities.Comment) (entities.ServiceRequest, error)
	AppendAttachments(ctx context.Context, id string, atts []entities.Attachment) (entities.ServiceRequest, error)
	LinkRendition(ctx context.Context, id string, renditionID string) (entities.ServiceRequest, error)
	LatestIdentifier(ctx context.Context) (string, error)
}
