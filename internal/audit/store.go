package audit

import (
	"context"

	"tokenregistry/pkg/domain"
)

//go:generate mockgen -source=store.go -destination=mocks/store_mock.go -package=mocks

// Store persists audit records. Implementations must keep append order.
type Store interface {
	Append(ctx context.Context, records ...Record) error
	// ListByRegistry returns up to limit records of reg, newest first.
	ListByRegistry(ctx context.Context, reg domain.Address, limit int) ([]Record, error)
	// ListByToken returns the full history of one token, oldest first.
	ListByToken(ctx context.Context, reg domain.Address, id domain.TokenID) ([]Record, error)
}
