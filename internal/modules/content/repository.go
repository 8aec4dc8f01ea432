package content

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	ListServices(ctx context.Context) ([]ServicePage, error)
	GetServiceBySlug(ctx context.Context, slug string) (*ServicePage, error)
	ListTestimonials(ctx context.Context) ([]Testimonial, error)
	ListGallery(ctx context.Context, category string) ([]GalleryItem, error)
	CreateInquiry(ctx context.Context, inq *Inquiry) error
	ListInquiries(ctx context.Context, status string) ([]Inquiry, error)
	GetInquiryByID(ctx context.Context, id string) (*Inquiry, error)
	UpdateInquiry(ctx context.Context, inq *Inquiry) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListServices(ctx context.Context) ([]ServicePage, error) {
	var pages []ServicePage
	err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Find(&pages).Error
	return pages, err
}

func (r *gormRepository) GetServiceBySlug(ctx context.Context, slug string) (*ServicePage, error) {
	var page ServicePage
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &page, nil
}

func (r *gormRepository) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	var items []Testimonial
	err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Find(&items).Error
	return items, err
}

func (r *gormRepository) ListGallery(ctx context.Context, category string) ([]GalleryItem, error) {
	q := r.db.WithContext(ctx).Order("sort_order ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []GalleryItem
	err := q.Find(&items).Error
	return items, err
}

func (r *gormRepository) CreateInquiry(ctx context.Context, inq *Inquiry) error {
	return r.db.WithContext(ctx).Create(inq).Error
}

func (r *gormRepository) ListInquiries(ctx context.Context, status string) ([]Inquiry, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var items []Inquiry
	err := q.Find(&items).Error
	return items, err
}

func (r *gormRepository) GetInquiryByID(ctx context.Context, id string) (*Inquiry, error) {
	var inq Inquiry
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&inq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	return &inq, nil
}

func (r *gormRepository) UpdateInquiry(ctx context.Context, inq *Inquiry) error {
	return r.db.WithContext(ctx).Save(inq).Error
}
