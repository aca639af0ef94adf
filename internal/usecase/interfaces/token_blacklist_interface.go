package interfaces

//go:generate mockgen -source=token_blacklist_interface.go -destination=mocks/token_blacklist_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"
)

// ITokenBlacklist remembers revoked JWT ids until they would have expired anyway.
type ITokenBlacklist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
