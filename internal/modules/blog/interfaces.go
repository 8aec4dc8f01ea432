package blog

import (
	"context"

	"loonbedrijf/internal/domain"
	"loonbedrijf/internal/repository"
)

// PostRepositoryInterface covers only the methods the blog service uses.
type PostRepositoryInterface interface {
	List(ctx context.Context, p repository.ListPostsParams) ([]domain.BlogPost, int64, error)
	Latest(ctx context.Context, limit int) ([]domain.BlogPost, error)
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.BlogPost, error)
	GetRelated(ctx context.Context, category, excludeID string, limit int) ([]domain.BlogPost, error)
	ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, post *domain.BlogPost) error
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
}
