package repository

import (
	"context"
	"strings"

	"loonbedrijf/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var client domain.Client
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&client)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &client, nil
}

// GetByUserID resolves the one client row linked to a portal identity.
func (r *ClientRepository) GetByUserID(ctx context.Context, userID string) (*domain.Client, error) {
	var client domain.Client
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&client)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &client, nil
}

// List returns clients ordered by company name, optionally filtered by a
// search term over company name, contact person and phone.
func (r *ClientRepository) List(ctx context.Context, search string) ([]domain.Client, error) {
	q := r.db.WithContext(ctx).Model(&domain.Client{})
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(company_name) LIKE ? OR LOWER(contact_person) LIKE ? OR LOWER(phone) LIKE ?", like, like, like)
	}

	var clients []domain.Client
	err := q.Order("company_name ASC").Find(&clients).Error
	return clients, err
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// DB exposes the underlying handle for multi-row transactions.
func (r *ClientRepository) DB() *gorm.DB { return r.db }
