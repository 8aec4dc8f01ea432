package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loonbedrijf/internal/database"
	"loonbedrijf/internal/domain"
)

func setupPostRepo(t *testing.T) *PostRepository {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.BlogPost{}))

	repo := NewPostRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	posts := []domain.BlogPost{
		{Title: "Precisielandbouw in de praktijk", Slug: "precisielandbouw-in-de-praktijk", Excerpt: "GPS-gestuurde machines", Category: "Innovatie", Published: true, CreatedAt: base},
		{Title: "Slootonderhoud voor het najaar", Slug: "slootonderhoud-voor-het-najaar", Excerpt: "Baggeren en maaien", Category: "Agrarisch", Published: true, CreatedAt: base.AddDate(0, 0, 1)},
		{Title: "Onze nieuwe rupskraan", Slug: "onze-nieuwe-rupskraan", Excerpt: "25-tons rupskraan", Category: "Techniek", Published: true, CreatedAt: base.AddDate(0, 0, 2)},
		{Title: "Kruidenrijk grasland", Slug: "kruidenrijk-grasland", Excerpt: "Bodemleven", Category: "Agrarisch", Published: false, CreatedAt: base.AddDate(0, 0, 3)},
	}
	for i := range posts {
		require.NoError(t, repo.Create(ctx, &posts[i]))
	}
	return repo
}

func TestListPosts(t *testing.T) {
	ctx := context.Background()
	repo := setupPostRepo(t)

	t.Run("published only", func(t *testing.T) {
		posts, total, err := repo.List(ctx, ListPostsParams{PublishedOnly: true, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, posts, 3)
		for _, p := range posts {
			assert.True(t, p.Published)
		}
	})

	t.Run("search matches title and excerpt case-insensitively", func(t *testing.T) {
		posts, total, err := repo.List(ctx, ListPostsParams{Search: "BAGGEREN", Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, posts, 1)
		assert.Equal(t, "slootonderhoud-voor-het-najaar", posts[0].Slug)
	})

	t.Run("category filter includes drafts for admin", func(t *testing.T) {
		posts, total, err := repo.List(ctx, ListPostsParams{Category: "Agrarisch", Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, posts, 2)
	})

	t.Run("unknown sort field falls back to created_at desc", func(t *testing.T) {
		posts, _, err := repo.List(ctx, ListPostsParams{SortField: "slug); DROP TABLE blog_posts;--", Limit: 10})
		require.NoError(t, err)
		require.NotEmpty(t, posts)
		assert.Equal(t, "kruidenrijk-grasland", posts[0].Slug)
	})

	t.Run("sort by title ascending", func(t *testing.T) {
		posts, _, err := repo.List(ctx, ListPostsParams{SortField: "title", SortAsc: true, Limit: 10})
		require.NoError(t, err)
		require.Len(t, posts, 4)
		assert.Equal(t, "Kruidenrijk grasland", posts[0].Title)
	})

	t.Run("paging keeps total stable", func(t *testing.T) {
		posts, total, err := repo.List(ctx, ListPostsParams{PublishedOnly: true, Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, posts, 1)
	})
}

func TestLatestPosts(t *testing.T) {
	ctx := context.Background()
	repo := setupPostRepo(t)

	posts, err := repo.Latest(ctx, 3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	// newest published first; the draft never shows up
	assert.Equal(t, "onze-nieuwe-rupskraan", posts[0].Slug)
	for _, p := range posts {
		assert.True(t, p.Published)
	}
}

func TestGetBySlugVisibility(t *testing.T) {
	ctx := context.Background()
	repo := setupPostRepo(t)

	_, err := repo.GetBySlug(ctx, "kruidenrijk-grasland", true)
	assert.Error(t, err, "drafts are invisible on the public surface")

	post, err := repo.GetBySlug(ctx, "kruidenrijk-grasland", false)
	require.NoError(t, err)
	assert.False(t, post.Published)
}

func TestGetRelated(t *testing.T) {
	ctx := context.Background()
	repo := setupPostRepo(t)

	self, err := repo.GetBySlug(ctx, "slootonderhoud-voor-het-najaar", true)
	require.NoError(t, err)

	related, err := repo.GetRelated(ctx, "Agrarisch", self.ID, 2)
	require.NoError(t, err)
	// the only other Agrarisch post is a draft, so nothing qualifies
	assert.Empty(t, related)

	related, err = repo.GetRelated(ctx, "Techniek", self.ID, 2)
	require.NoError(t, err)
	assert.Len(t, related, 1)
}

func TestExistsBySlug(t *testing.T) {
	ctx := context.Background()
	repo := setupPostRepo(t)

	taken, err := repo.ExistsBySlug(ctx, "onze-nieuwe-rupskraan", "")
	require.NoError(t, err)
	assert.True(t, taken)

	self, err := repo.GetBySlug(ctx, "onze-nieuwe-rupskraan", true)
	require.NoError(t, err)

	// a post may keep its own slug on update
	taken, err = repo.ExistsBySlug(ctx, "onze-nieuwe-rupskraan", self.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	repo := setupPostRepo(t)

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Agrarisch", "Innovatie", "Techniek"}, categories)
}
