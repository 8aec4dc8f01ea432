package portal

import (
	"context"

	"loonbedrijf/internal/domain"
)

type ClientRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
}

type InvoiceRepositoryInterface interface {
	ListByClientID(ctx context.Context, clientID string) ([]domain.Invoice, error)
}

type OperationRepositoryInterface interface {
	ListByClientID(ctx context.Context, clientID string) ([]domain.PrecisionOperation, error)
}
