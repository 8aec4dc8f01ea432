package repository

import (
	"context"
	"strings"

	"loonbedrijf/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostSortFields lists the columns the list endpoints may sort on.
var PostSortFields = map[string]bool{
	"title":      true,
	"created_at": true,
	"published":  true,
}

// ListPostsParams drives the paged post query. Search and category are
// applied in the query itself, never against a partially fetched page.
type ListPostsParams struct {
	PublishedOnly bool
	Search        string
	Category      string
	SortField     string
	SortAsc       bool
	Limit         int
	Offset        int
}

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) scope(ctx context.Context, p ListPostsParams) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.BlogPost{})
	if p.PublishedOnly {
		q = q.Where("published = ?", true)
	}
	if s := strings.TrimSpace(p.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ?", like, like)
	}
	if p.Category != "" {
		q = q.Where("category = ?", p.Category)
	}
	return q
}

// List returns one page of posts plus the total row count for the filter.
func (r *PostRepository) List(ctx context.Context, p ListPostsParams) ([]domain.BlogPost, int64, error) {
	var total int64
	if err := r.scope(ctx, p).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	field := p.SortField
	if !PostSortFields[field] {
		field = "created_at"
	}
	dir := "DESC"
	if p.SortAsc {
		dir = "ASC"
	}

	var posts []domain.BlogPost
	err := r.scope(ctx, p).
		Order(field + " " + dir).
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Latest returns the newest published posts (home-page teaser).
func (r *PostRepository) Latest(ctx context.Context, limit int) ([]domain.BlogPost, error) {
	var posts []domain.BlogPost
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&post)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &post, nil
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.BlogPost, error) {
	q := r.db.WithContext(ctx).Where("slug = ?", slug)
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var post domain.BlogPost
	if err := q.First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetRelated returns published posts from the same category, newest first,
// excluding the post itself.
func (r *PostRepository) GetRelated(ctx context.Context, category, excludeID string, limit int) ([]domain.BlogPost, error) {
	var posts []domain.BlogPost
	err := r.db.WithContext(ctx).
		Where("published = ? AND category = ? AND id <> ?", true, category, excludeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.BlogPost{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Categories returns the distinct categories present in stored posts.
func (r *PostRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&domain.BlogPost{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *PostRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *PostRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.BlogPost{}).Error
}
