package seed

import (
	"errors"
	"fmt"

	"agencypro-backend/models"

	"gorm.io/gorm"
)

// The ensure helpers implement the idempotent lookup-or-create pattern:
// select by natural key, insert only if absent, never update. Two posts
// referencing the same tag slug converge on one tag row regardless of
// which is seeded first.

// EnsureBlogCategory returns the category with the given slug, creating
// it if it does not exist. The bool reports whether a row was created.
func EnsureBlogCategory(db *gorm.DB, slug, name, description string) (*models.BlogCategory, bool, error) {
	var category models.BlogCategory
	err := db.Where("slug = ?", slug).First(&category).Error
	if err == nil {
		return &category, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("look up blog category %s: %w", slug, err)
	}

	category = models.BlogCategory{Slug: slug, Name: name, Description: description}
	if err := db.Create(&category).Error; err != nil {
		return nil, false, fmt.Errorf("create blog category %s: %w", slug, err)
	}
	return &category, true, nil
}

// EnsureAuthor returns the author with the given email, creating them if
// absent. Email is the natural key; name/bio are only used on insert.
func EnsureAuthor(db *gorm.DB, email, name, bio string) (*models.Author, bool, error) {
	var author models.Author
	err := db.Where("email = ?", email).First(&author).Error
	if err == nil {
		return &author, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("look up author %s: %w", email, err)
	}

	author = models.Author{Email: email, Name: name, Bio: bio}
	if err := db.Create(&author).Error; err != nil {
		return nil, false, fmt.Errorf("create author %s: %w", email, err)
	}
	return &author, true, nil
}

// EnsureTag returns the tag with the given slug, creating it if absent.
func EnsureTag(db *gorm.DB, slug, name string) (*models.Tag, bool, error) {
	var tag models.Tag
	err := db.Where("slug = ?", slug).First(&tag).Error
	if err == nil {
		return &tag, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("look up tag %s: %w", slug, err)
	}

	tag = models.Tag{Slug: slug, Name: name}
	if err := db.Create(&tag).Error; err != nil {
		return nil, false, fmt.Errorf("create tag %s: %w", slug, err)
	}
	return &tag, true, nil
}

type categoryData struct {
	Slug        string
	Name        string
	Description string
}

type authorData struct {
	Email string
	Name  string
	Bio   string
}

type tagData struct {
	Slug string
	Name string
}

var blogCategories = []categoryData{
	{Slug: "web-development", Name: "Web Development", Description: "Build notes, stack choices and lessons from client projects."},
	{Slug: "digital-marketing", Name: "Digital Marketing", Description: "What's working right now in search, ads and email."},
	{Slug: "small-business", Name: "Small Business", Description: "Practical growth advice for local business owners."},
}

var blogAuthors = []authorData{
	{Email: "maya@agencypro.dev", Name: "Maya Lindqvist", Bio: "Founder and lead strategist. Fifteen years helping local businesses grow online."},
	{Email: "jordan@agencypro.dev", Name: "Jordan Reyes", Bio: "Head of development. Writes about performance, tooling and shipping."},
}

var blogTags = []tagData{
	{Slug: "seo", Name: "SEO"},
	{Slug: "web-design", Name: "Web Design"},
	{Slug: "conversion", Name: "Conversion"},
	{Slug: "automation", Name: "Automation"},
	{Slug: "local-business", Name: "Local Business"},
}

// TaxonomySeeder pre-creates the shared blog taxonomy so the post
// seeder (and any future posts) have their categories, authors and tags
// in place. Safe to re-run: every insert goes through an ensure helper.
type TaxonomySeeder struct {
	cfg Config
}

func NewTaxonomySeeder() *TaxonomySeeder {
	return &TaxonomySeeder{
		cfg: Config{
			Name:        "blog-taxonomy",
			Order:       4,
			Description: "Blog categories, authors and tags",
		},
	}
}

func (s *TaxonomySeeder) Config() Config {
	return s.cfg
}

func (s *TaxonomySeeder) Execute(db *gorm.DB) (int, error) {
	created := 0
	for _, c := range blogCategories {
		_, wasCreated, err := EnsureBlogCategory(db, c.Slug, c.Name, c.Description)
		if err != nil {
			return created, err
		}
		if wasCreated {
			created++
		}
	}
	for _, a := range blogAuthors {
		_, wasCreated, err := EnsureAuthor(db, a.Email, a.Name, a.Bio)
		if err != nil {
			return created, err
		}
		if wasCreated {
			created++
		}
	}
	for _, t := range blogTags {
		_, wasCreated, err := EnsureTag(db, t.Slug, t.Name)
		if err != nil {
			return created, err
		}
		if wasCreated {
			created++
		}
	}
	return created, nil
}

// Clear removes all taxonomy rows. Posts reference these tables, so the
// runner clears blog posts first (registry order, reversed).
func (s *TaxonomySeeder) Clear(db *gorm.DB) error {
	session := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := session.Delete(&models.Tag{}).Error; err != nil {
		return fmt.Errorf("clear tags: %w", err)
	}
	if err := session.Delete(&models.Author{}).Error; err != nil {
		return fmt.Errorf("clear authors: %w", err)
	}
	if err := session.Delete(&models.BlogCategory{}).Error; err != nil {
		return fmt.Errorf("clear blog categories: %w", err)
	}
	return nil
}
