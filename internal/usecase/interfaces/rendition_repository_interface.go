package interfaces

//go:generate mockgen -source=rendition_repository_interface.go -destination=mocks/rendition_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"fieldops/internal/domain/entities"
)

type RenditionFilter struct {
	Technician       string
	ServiceRequestID string
	ProjectID        string
	Status           entities.RenditionStatus
	From             *time.Time
	To               *time.Time
	PageQuery
}

// IRenditionRepository abstracts DynamoDB persistence for Rendition.
//
// CreateLinked writes the rendition, claims its folio and appends its id to the owning
// service request in one transaction. Writes taking an expected status are conditional on it
// and fail with ErrStaleStatus otherwise. submitted, when not nil, is the Pending -> Submitted
// ledger entry applied together with the append.
type IRenditionRepository interface {
	CreateLinked(ctx context.Context, r entities.Rendition) (entities.Rendition, error)
	GetByID(ctx context.Context, id string) (entities.Rendition, error)
	List(ctx context.Context, f RenditionFilter) ([]entities.Rendition, int, error)
	Update(ctx context.Context, r entities.Rendition, expected entities.RenditionStatus) (entities.Rendition, error)
	AppendExpense(ctx context.Context, id string, e entities.Expense, expected entities.RenditionStatus, submitted *entities.HistoryEntry) (entities.Rendition, error)
	AppendAttachments(ctx context.Context, id string, atts []entities.Attachment, expected entities.RenditionStatus, submitted *entities.HistoryEntry) (entities.Rendition, error)
	Delete(ctx context.Context, r entities.Rendition) error
	LatestIdentifier(ctx context.Context) (string, error)
}
