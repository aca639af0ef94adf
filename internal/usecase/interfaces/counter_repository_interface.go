package interfaces

//go:generate mockgen -source=counter_repository_interface.go -destination=mocks/counter_repository_interface_mock.go -package=mock_interfaces

import "context"

// ICounterRepository hands out sequence numbers. Next is an atomic fetch-and-add: the
// first call for a key returns 1.
type ICounterRepository interface {
	Next(ctx context.Context, key string) (int64, error)
}
