package repositories

import (
	"fmt"
	"testing"
	"time"

	"blogyetu/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPost(id, slug string, createdAt time.Time) *models.Post {
	return &models.Post{
		ID:        id,
		Title:     "Post " + id,
		Content:   "Content for " + id,
		AuthorID:  "author-1",
		Slug:      slug,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestPostRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewBadgerPostRepository(db)

	t.Run("create and get post", func(t *testing.T) {
		post := newPost("p1", "first-post", time.Now())
		post.CategoryIDs = []string{"c1", "c2"}

		require.NoError(t, repo.Create(post))

		retrieved, err := repo.GetByID("p1")
		require.NoError(t, err)
		assert.Equal(t, post.Title, retrieved.Title)
		assert.Equal(t, post.Content, retrieved.Content)
		assert.Equal(t, post.Slug, retrieved.Slug)
		assert.Equal(t, []string{"c1", "c2"}, retrieved.CategoryIDs)
	})

	t.Run("get missing post", func(t *testing.T) {
		_, err := repo.GetByID("nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("slug collision fails and persists nothing", func(t *testing.T) {
		require.NoError(t, repo.Create(newPost("p2", "taken-slug", time.Now())))

		err := repo.Create(newPost("p3", "taken-slug", time.Now()))
		assert.ErrorIs(t, err, ErrSlugTaken)

		_, err = repo.GetByID("p3")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update moves the slug index", func(t *testing.T) {
		post := newPost("p4", "before-rename", time.Now())
		require.NoError(t, repo.Create(post))

		post.Title = "Renamed"
		post.Slug = "after-rename"
		require.NoError(t, repo.Update(post))

		retrieved, err := repo.GetByID("p4")
		require.NoError(t, err)
		assert.Equal(t, "after-rename", retrieved.Slug)

		// The old slug is free again.
		require.NoError(t, repo.Create(newPost("p5", "before-rename", time.Now())))

		// But the new one is held.
		err = repo.Create(newPost("p6", "after-rename", time.Now()))
		assert.ErrorIs(t, err, ErrSlugTaken)
	})

	t.Run("update missing post", func(t *testing.T) {
		err := repo.Update(newPost("ghost", "ghost-slug", time.Now()))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete releases the slug", func(t *testing.T) {
		require.NoError(t, repo.Create(newPost("p7", "short-lived", time.Now())))
		require.NoError(t, repo.Delete("p7"))

		_, err := repo.GetByID("p7")
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, repo.Create(newPost("p8", "short-lived", time.Now())))
		assert.ErrorIs(t, repo.Delete("p7"), ErrNotFound)
	})

	t.Run("append comment", func(t *testing.T) {
		require.NoError(t, repo.Create(newPost("p9", "commented", time.Now())))

		comment := models.Comment{ID: "c1", UserID: "u2", Text: "first!", CreatedAt: time.Now()}
		require.NoError(t, repo.AppendComment("p9", comment))
		require.NoError(t, repo.AppendComment("p9", models.Comment{ID: "c2", UserID: "u3", Text: "second", CreatedAt: time.Now()}))

		retrieved, err := repo.GetByID("p9")
		require.NoError(t, err)
		require.Len(t, retrieved.Comments, 2)
		assert.Equal(t, "c1", retrieved.Comments[0].ID)
		assert.Equal(t, "first!", retrieved.Comments[0].Text)
		assert.Equal(t, "c2", retrieved.Comments[1].ID)
	})

	t.Run("append comment to missing post", func(t *testing.T) {
		err := repo.AppendComment("nope", models.Comment{ID: "c3", UserID: "u2", Text: "lost"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostRepositoryList(t *testing.T) {
	db := newTestDB(t)
	repo := NewBadgerPostRepository(db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("p%d", i)
		post := newPost(id, "slug-"+id, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repo.Create(post))
	}

	t.Run("orders newest first", func(t *testing.T) {
		posts, total, err := repo.List(10, 0)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, posts, 5)
		for i := 0; i < len(posts)-1; i++ {
			assert.True(t, !posts[i].CreatedAt.Before(posts[i+1].CreatedAt))
		}
		assert.Equal(t, "p4", posts[0].ID)
		assert.Equal(t, "p0", posts[4].ID)
	})

	t.Run("pages concatenate without gaps or duplicates", func(t *testing.T) {
		seen := make(map[string]bool)
		var order []string
		for offset := 0; offset < 5; offset += 2 {
			posts, total, err := repo.List(2, offset)
			require.NoError(t, err)
			assert.Equal(t, 5, total)
			for _, post := range posts {
				assert.False(t, seen[post.ID], "duplicate %s", post.ID)
				seen[post.ID] = true
				order = append(order, post.ID)
			}
		}
		assert.Equal(t, []string{"p4", "p3", "p2", "p1", "p0"}, order)
	})

	t.Run("offset past the end", func(t *testing.T) {
		posts, total, err := repo.List(2, 10)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Empty(t, posts)
	})

	t.Run("timestamp ties break on id", func(t *testing.T) {
		tie := base.Add(24 * time.Hour)
		require.NoError(t, repo.Create(newPost("tie-a", "tie-a", tie)))
		require.NoError(t, repo.Create(newPost("tie-b", "tie-b", tie)))

		first, _, err := repo.List(2, 0)
		require.NoError(t, err)
		require.Len(t, first, 2)
		assert.Equal(t, "tie-b", first[0].ID)
		assert.Equal(t, "tie-a", first[1].ID)
	})
}
