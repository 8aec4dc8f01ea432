package upload

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, u *Upload) error
	GetByID(ctx context.Context, id string) (*Upload, error)
	Delete(ctx context.Context, id string) error
	ListByUserID(ctx context.Context, userID string) ([]*Upload, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, u *Upload) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *gormRepository) GetByID(ctx context.Context, id string) (*Upload, error) {
	var u Upload
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *gormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Upload{}).Error
}

func (r *gormRepository) ListByUserID(ctx context.Context, userID string) ([]*Upload, error) {
	var uploads []*Upload
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&uploads).Error
	return uploads, err
}
