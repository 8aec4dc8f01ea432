package blog

import (
	"context"
	"errors"
	"strings"

	"loonbedrijf/internal/domain"
	"loonbedrijf/internal/repository"

	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 12
	maxPageSize     = 50
	relatedLimit    = 2
	teaserLimit     = 3
)

// Service contains the blog business logic shared by the public and admin
// surfaces; the only difference between them is the publishedOnly flag.
type Service struct {
	posts     PostRepositoryInterface
	sanitizer *bluemonday.Policy
}

func NewService(posts PostRepositoryInterface) *Service {
	return &Service{
		posts:     posts,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// DeriveSlug turns a title into its URL identifier: lowercase, special
// characters stripped, words hyphenated. Recomputed on every save.
func DeriveSlug(title string) string {
	return slug.Make(title)
}

func (s *Service) List(ctx context.Context, q ListQuery, publishedOnly bool) (*PostPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	posts, total, err := s.posts.List(ctx, repository.ListPostsParams{
		PublishedOnly: publishedOnly,
		Search:        q.Search,
		Category:      q.Category,
		SortField:     q.SortField,
		SortAsc:       q.SortAsc,
		Limit:         pageSize,
		Offset:        (page - 1) * pageSize,
	})
	if err != nil {
		return nil, err
	}

	return &PostPage{
		Posts:    posts,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  len(posts) == pageSize && int64(page*pageSize) < total,
	}, nil
}

func (s *Service) Latest(ctx context.Context) ([]domain.BlogPost, error) {
	return s.posts.Latest(ctx, teaserLimit)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.posts.Categories(ctx)
}

// GetBySlug returns a published post plus up to two published posts from
// the same category. An unknown slug is an expected empty state.
func (s *Service) GetBySlug(ctx context.Context, slugStr string) (*PostWithRelated, error) {
	post, err := s.posts.GetBySlug(ctx, slugStr, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	related, err := s.posts.GetRelated(ctx, post.Category, post.ID, relatedLimit)
	if err != nil {
		return nil, err
	}

	return &PostWithRelated{Post: *post, Related: related}, nil
}

// Create stores a new post. The slug is derived from the title; the rich
// editor's HTML passes through the sanitizer before it is persisted.
func (s *Service) Create(ctx context.Context, authorID string, req SavePostRequest) (*domain.BlogPost, error) {
	if !domain.IsValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	newSlug := DeriveSlug(req.Title)
	taken, err := s.posts.ExistsBySlug(ctx, newSlug, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	post := &domain.BlogPost{
		Title:     strings.TrimSpace(req.Title),
		Slug:      newSlug,
		Excerpt:   req.Excerpt,
		Content:   s.sanitizer.Sanitize(req.Content),
		ImageURL:  req.ImageURL,
		Category:  req.Category,
		ReadTime:  req.ReadTime,
		AuthorID:  authorID,
		Published: req.Published,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update rewrites an existing post. The slug is re-derived from the
// current title, never reused from the stored row.
func (s *Service) Update(ctx context.Context, id, authorID string, req SavePostRequest) (*domain.BlogPost, error) {
	if !domain.IsValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	newSlug := DeriveSlug(req.Title)
	taken, err := s.posts.ExistsBySlug(ctx, newSlug, post.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Slug = newSlug
	post.Excerpt = req.Excerpt
	post.Content = s.sanitizer.Sanitize(req.Content)
	post.ImageURL = req.ImageURL
	post.Category = req.Category
	post.ReadTime = req.ReadTime
	post.Published = req.Published
	post.AuthorID = authorID

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.posts.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return s.posts.Delete(ctx, id)
}
