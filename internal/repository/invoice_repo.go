package repository

import (
	"context"

	"loonbedrijf/internal/domain"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// ListByClientID returns a client's invoices, newest issued first.
func (r *InvoiceRepository) ListByClientID(ctx context.Context, clientID string) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("issued_date DESC").
		Find(&invoices).Error
	return invoices, err
}
