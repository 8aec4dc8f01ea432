package admin

import (
	"context"

	"loonbedrijf/internal/domain"

	"gorm.io/gorm"
)

// UserRepositoryInterface covers only the methods customer management uses.
type UserRepositoryInterface interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DB() *gorm.DB // for the two-row provisioning transaction
}

type ClientRepositoryInterface interface {
	List(ctx context.Context, search string) ([]domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
}
