package repository

import (
	"context"

	"loonbedrijf/internal/domain"

	"gorm.io/gorm"
)

type OperationRepository struct {
	db *gorm.DB
}

func NewOperationRepository(db *gorm.DB) *OperationRepository {
	return &OperationRepository{db: db}
}

// ListByClientID returns a client's operations ordered by start date,
// newest first. Planned/completed classification happens in the portal
// service, not here.
func (r *OperationRepository) ListByClientID(ctx context.Context, clientID string) ([]domain.PrecisionOperation, error) {
	var ops []domain.PrecisionOperation
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("start_date DESC").
		Find(&ops).Error
	return ops, err
}
