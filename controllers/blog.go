// controllers/blog.go
package controllers

import (
	"errors"
	"net/http"

	"agencypro-backend/config"
	"agencypro-backend/models"
	"agencypro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetBlogPosts lists published posts, newest first. Optional
// ?category= and ?tag= filters by slug.
func GetBlogPosts(c *gin.Context) {
	query := config.DB.
		Preload("Category").
		Preload("Author").
		Preload("Tags").
		Where("blog_posts.status = ?", models.PostStatusPublished)

	if category := c.Query("category"); category != "" {
		query = query.
			Joins("JOIN blog_categories ON blog_categories.id = blog_posts.category_id").
			Where("blog_categories.slug = ?", category)
	}
	if tag := c.Query("tag"); tag != "" {
		query = query.
			Joins("JOIN blog_post_tags ON blog_post_tags.blog_post_id = blog_posts.id").
			Joins("JOIN tags ON tags.id = blog_post_tags.tag_id").
			Where("tags.slug = ?", tag)
	}

	var posts []models.BlogPost
	if err := query.Order("published_at DESC").Find(&posts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetBlogPostBySlug returns one published post with its taxonomy.
func GetBlogPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var post models.BlogPost
	err := config.DB.
		Preload("Category").
		Preload("Author").
		Preload("Tags").
		Where("slug = ? AND status = ?", slug, models.PostStatusPublished).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	c.JSON(http.StatusOK, post)
}
