package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog post statuses
const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)

type BlogCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
}

func (c *BlogCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

// Author is looked up by email, the natural key shared across posts.
type Author struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatarUrl"`
}

func (a *Author) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Slug string    `gorm:"uniqueIndex;not null" json:"slug"`
	Name string    `gorm:"not null" json:"name"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

type BlogPost struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Slug            string     `gorm:"uniqueIndex;not null" json:"slug"`
	Title           string     `gorm:"not null" json:"title"`
	Excerpt         string     `gorm:"type:text" json:"excerpt"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
	Content         string     `gorm:"type:text;not null" json:"content"` // markdown body
	Status          string     `gorm:"type:varchar(20);index;default:'draft'" json:"status"`
	PublishedAt     *time.Time `json:"publishedAt"`

	CategoryID uuid.UUID `gorm:"type:uuid;index;not null" json:"categoryId"`
	AuthorID   uuid.UUID `gorm:"type:uuid;index;not null" json:"authorId"`

	Category BlogCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Author   Author       `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Tags     []Tag        `gorm:"many2many:blog_post_tags" json:"tags,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
