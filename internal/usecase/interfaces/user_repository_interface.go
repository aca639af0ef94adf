package interfaces

//go:generate mockgen -source=user_repository_interface.go -destination=mocks/user_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"fieldops/internal/domain/entities"
)

// IUserRepository abstracts persistence for User. Emails are stored lowercase and are
// unique: Create fails with ErrDuplicateKey on a taken email.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context, role entities.Role) ([]entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
