package seed

import (
	"testing"
	"time"

	"agencypro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureHelpersAreIdempotent(t *testing.T) {
	db := openTestDB(t)

	t.Run("category", func(t *testing.T) {
		first, created, err := EnsureBlogCategory(db, "guides", "Guides", "How-to guides")
		require.NoError(t, err)
		assert.True(t, created)

		second, created, err := EnsureBlogCategory(db, "guides", "Different Name", "ignored on lookup")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		// Never update: the original name survives
		assert.Equal(t, "Guides", second.Name)

		var count int64
		require.NoError(t, db.Model(&models.BlogCategory{}).Where("slug = ?", "guides").Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("author", func(t *testing.T) {
		first, created, err := EnsureAuthor(db, "sam@example.com", "Sam", "")
		require.NoError(t, err)
		assert.True(t, created)

		second, created, err := EnsureAuthor(db, "sam@example.com", "Samuel", "new bio")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)

		var count int64
		require.NoError(t, db.Model(&models.Author{}).Where("email = ?", "sam@example.com").Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("tag", func(t *testing.T) {
		first, created, err := EnsureTag(db, "go", "Go")
		require.NoError(t, err)
		assert.True(t, created)

		second, created, err := EnsureTag(db, "go", "Golang")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
	})
}

func TestTaxonomySeederRerunCreatesNothing(t *testing.T) {
	db := openTestDB(t)
	seeder := NewTaxonomySeeder()

	first, err := seeder.Execute(db)
	require.NoError(t, err)
	assert.Equal(t, len(blogCategories)+len(blogAuthors)+len(blogTags), first)

	second, err := seeder.Execute(db)
	require.NoError(t, err)
	assert.Zero(t, second)
}

func TestCreateBlogPostIdempotent(t *testing.T) {
	db := openTestDB(t)

	published := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	rec := BlogPostRecord{
		Slug:        "test-post",
		Title:       "Test Post",
		Excerpt:     "An excerpt",
		Content:     "Body",
		Status:      models.PostStatusPublished,
		PublishedAt: &published,
		Category:    categoryData{Slug: "news", Name: "News"},
		Author:      authorData{Email: "writer@example.com", Name: "Writer"},
		Tags: []tagData{
			{Slug: "alpha", Name: "Alpha"},
			{Slug: "beta", Name: "Beta"},
		},
	}

	firstID, created, err := CreateBlogPost(db, rec)
	require.NoError(t, err)
	assert.True(t, created)

	var joinCount int64
	require.NoError(t, db.Table("blog_post_tags").Count(&joinCount).Error)
	assert.EqualValues(t, 2, joinCount)

	secondID, created, err := CreateBlogPost(db, rec)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, firstID, secondID)

	var postCount int64
	require.NoError(t, db.Model(&models.BlogPost{}).Where("slug = ?", rec.Slug).Count(&postCount).Error)
	assert.EqualValues(t, 1, postCount)

	// Second call must not re-insert tag associations
	require.NoError(t, db.Table("blog_post_tags").Count(&joinCount).Error)
	assert.EqualValues(t, 2, joinCount)
}

func TestPostsSharingTagsConvergeOnOneRow(t *testing.T) {
	db := openTestDB(t)

	base := BlogPostRecord{
		Content:  "Body",
		Status:   models.PostStatusPublished,
		Category: categoryData{Slug: "news", Name: "News"},
		Author:   authorData{Email: "writer@example.com", Name: "Writer"},
		Tags:     []tagData{{Slug: "shared", Name: "Shared"}},
	}

	first := base
	first.Slug, first.Title = "post-one", "Post One"
	second := base
	second.Slug, second.Title = "post-two", "Post Two"

	_, _, err := CreateBlogPost(db, first)
	require.NoError(t, err)
	_, _, err = CreateBlogPost(db, second)
	require.NoError(t, err)

	var tagCount int64
	require.NoError(t, db.Model(&models.Tag{}).Where("slug = ?", "shared").Count(&tagCount).Error)
	assert.EqualValues(t, 1, tagCount)
}

func TestBlogPostsSeederClearKeepsTaxonomy(t *testing.T) {
	db := openTestDB(t)

	taxonomy := NewTaxonomySeeder()
	_, err := taxonomy.Execute(db)
	require.NoError(t, err)

	posts := NewBlogPostsSeeder()
	created, err := posts.Execute(db)
	require.NoError(t, err)
	assert.Equal(t, len(blogPostRecords), created)

	require.NoError(t, posts.Clear(db))

	var postCount, joinCount, tagCount int64
	require.NoError(t, db.Model(&models.BlogPost{}).Count(&postCount).Error)
	require.NoError(t, db.Table("blog_post_tags").Count(&joinCount).Error)
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.Zero(t, postCount)
	assert.Zero(t, joinCount)
	assert.EqualValues(t, len(blogTags), tagCount, "taxonomy belongs to the taxonomy seeder and must survive")
}
