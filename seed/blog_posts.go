package seed

import (
	"errors"
	"fmt"
	"time"

	"agencypro-backend/models"
	"agencypro-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// BlogPostRecord is the hand-authored form of a post plus the natural
// keys of everything it depends on. Taxonomy is referenced by key, not
// id, so records can be written without knowing what else is seeded.
type BlogPostRecord struct {
	Slug            string
	Title           string
	Excerpt         string
	MetaTitle       string
	MetaDescription string
	Content         string
	Status          string
	PublishedAt     *time.Time

	Category categoryData
	Author   authorData
	Tags     []tagData
}

// CreateBlogPost inserts one post, ensuring its taxonomy first. Post
// idempotency is whole-post: if the slug already exists the existing id
// is returned untouched - no partial update, no re-inserted tags.
//
// Category, author and tags are independent reads/writes with no
// ordering dependency on each other, so they resolve concurrently; the
// post insert waits for all three.
func CreateBlogPost(db *gorm.DB, rec BlogPostRecord) (uuid.UUID, bool, error) {
	var existing models.BlogPost
	err := db.Where("slug = ?", rec.Slug).First(&existing).Error
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, fmt.Errorf("check existing post %s: %w", rec.Slug, err)
	}

	var (
		category *models.BlogCategory
		author   *models.Author
		tags     = make([]models.Tag, len(rec.Tags))
	)

	var g errgroup.Group
	g.Go(func() error {
		c, _, err := EnsureBlogCategory(db, rec.Category.Slug, rec.Category.Name, rec.Category.Description)
		if err != nil {
			return err
		}
		category = c
		return nil
	})
	g.Go(func() error {
		a, _, err := EnsureAuthor(db, rec.Author.Email, rec.Author.Name, rec.Author.Bio)
		if err != nil {
			return err
		}
		author = a
		return nil
	})
	g.Go(func() error {
		for i, t := range rec.Tags {
			tag, _, err := EnsureTag(db, t.Slug, t.Name)
			if err != nil {
				return err
			}
			tags[i] = *tag
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return uuid.Nil, false, err
	}

	post := models.BlogPost{
		Slug:            rec.Slug,
		Title:           rec.Title,
		Excerpt:         rec.Excerpt,
		MetaTitle:       rec.MetaTitle,
		MetaDescription: rec.MetaDescription,
		Content:         rec.Content,
		Status:          rec.Status,
		PublishedAt:     rec.PublishedAt,
		CategoryID:      category.ID,
		AuthorID:        author.ID,
		Tags:            tags,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&post).Error
	})
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("create post %s: %w", rec.Slug, err)
	}
	return post.ID, true, nil
}

// BlogPostsSeeder seeds the launch articles. Independent of the service
// catalog; each post ensures its own taxonomy.
type BlogPostsSeeder struct {
	cfg     Config
	records []BlogPostRecord
}

func NewBlogPostsSeeder() *BlogPostsSeeder {
	return &BlogPostsSeeder{
		cfg: Config{
			Name:        "blog-posts",
			Order:       5,
			Description: "Launch blog posts with their tag associations",
		},
		records: blogPostRecords,
	}
}

func (s *BlogPostsSeeder) Config() Config {
	return s.cfg
}

func (s *BlogPostsSeeder) Execute(db *gorm.DB) (int, error) {
	log := utils.GetLogger()
	created := 0
	for _, rec := range s.records {
		id, wasCreated, err := CreateBlogPost(db, rec)
		if err != nil {
			return created, err
		}
		if wasCreated {
			created++
			log.Debug("seeded blog post", zap.String("slug", rec.Slug), zap.String("id", id.String()))
		}
	}
	return created, nil
}

// Clear removes this module's posts and their tag associations; the
// taxonomy rows stay (they belong to the taxonomy seeder).
func (s *BlogPostsSeeder) Clear(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		slugs := make([]string, 0, len(s.records))
		for _, rec := range s.records {
			slugs = append(slugs, rec.Slug)
		}
		var ids []string
		if err := tx.Model(&models.BlogPost{}).Where("slug IN ?", slugs).Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("look up post ids: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Exec("DELETE FROM blog_post_tags WHERE blog_post_id IN ?", ids).Error; err != nil {
			return fmt.Errorf("delete post tag associations: %w", err)
		}
		if err := tx.Where("id IN ?", ids).Delete(&models.BlogPost{}).Error; err != nil {
			return fmt.Errorf("delete posts: %w", err)
		}
		return nil
	})
}

func timePtr(t time.Time) *time.Time { return &t }

var blogPostRecords = []BlogPostRecord{
	{
		Slug:            "how-much-does-a-website-cost-2026",
		Title:           "How Much Does a Website Really Cost in 2026?",
		Excerpt:         "The honest breakdown nobody publishes: what drives website pricing from $500 to $50,000, and how to know which bracket you actually need.",
		MetaTitle:       "Website Cost in 2026: The Honest Breakdown",
		MetaDescription: "What a professional website really costs in 2026, what drives the price, and how to avoid paying for things you don't need.",
		Content: `Every week someone asks us why one agency quoted $800 and another quoted $20,000 for "the same website." The short answer: they weren't quoting the same website.

## What actually drives the price

The biggest cost drivers are custom design versus templates, the amount of unique content, and anything interactive - booking, payments, members areas. A five-page brochure site on a quality template is a few thousand dollars. A custom-designed site with a CMS, blog and integrations is five figures, and it should be.

## Where cheap sites get expensive

Template sites bought on price tend to cost more over three years than custom builds: licence fees stack up, performance problems bleed ad spend, and sooner or later you pay someone to rebuild it properly anyway.

## What we recommend

Budget for the site your business will need in two years, not the one that gets you live cheapest this month. And whatever you spend, make sure you own the result outright.`,
		Status:      models.PostStatusPublished,
		PublishedAt: timePtr(time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)),
		Category:    categoryData{Slug: "small-business", Name: "Small Business", Description: "Practical growth advice for local business owners."},
		Author:      authorData{Email: "maya@agencypro.dev", Name: "Maya Lindqvist", Bio: "Founder and lead strategist. Fifteen years helping local businesses grow online."},
		Tags: []tagData{
			{Slug: "web-design", Name: "Web Design"},
			{Slug: "local-business", Name: "Local Business"},
		},
	},
	{
		Slug:            "local-seo-checklist",
		Title:           "The Local SEO Checklist We Use on Every Client",
		Excerpt:         "Twenty-three checks that decide whether you show up in the map pack. Steal our internal checklist.",
		MetaTitle:       "Local SEO Checklist: 23 Checks for Map Pack Rankings",
		MetaDescription: "The exact local SEO checklist our agency runs on every new client, from Google Business Profile basics to citation cleanup.",
		Content: `Local rankings are won on fundamentals that most businesses half-finish. Here is the checklist we run on every new client, in the order we run it.

## Google Business Profile

Claim it, verify it, pick the most specific primary category, fill every field, add photos monthly. Unfinished profiles are the single most common problem we find.

## Citations

Your name, address and phone number must match everywhere - character for character. We audit the top forty directories and fix or remove every inconsistent listing.

## Reviews

Velocity beats volume. Ten reviews spread over a year outperform thirty that arrived in one suspicious week. Build the ask into your job-completion process.

## On-site signals

A dedicated page per service per location, embedded map, local schema markup, and your phone number in crawlable text - not just an image in the header.`,
		Status:      models.PostStatusPublished,
		PublishedAt: timePtr(time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)),
		Category:    categoryData{Slug: "digital-marketing", Name: "Digital Marketing", Description: "What's working right now in search, ads and email."},
		Author:      authorData{Email: "maya@agencypro.dev", Name: "Maya Lindqvist", Bio: "Founder and lead strategist. Fifteen years helping local businesses grow online."},
		Tags: []tagData{
			{Slug: "seo", Name: "SEO"},
			{Slug: "local-business", Name: "Local Business"},
		},
	},
	{
		Slug:            "why-your-contact-form-is-losing-leads",
		Title:           "Why Your Contact Form Is Losing You Leads",
		Excerpt:         "We tested contact forms across forty client sites. The patterns that kill conversions - and the multi-step format that fixed them.",
		MetaTitle:       "Contact Form Conversion: What 40 Sites Taught Us",
		MetaDescription: "The contact form mistakes that quietly lose leads, and why multi-step forms consistently outperform single long forms.",
		Content: `Your contact form is the last step of every marketing dollar you spend, and it's probably leaking.

## The eleven-field monster

Every field you add costs conversions. Name, email, and one question about the project is enough to start a conversation - everything else can wait for the reply.

## Why multi-step forms win

Across our client sites, multi-step forms outperform long single forms by 30-60%. Asking for contact details *after* someone has picked a service and budget uses commitment psychology in your favor: they've already invested.

## The silent killers

Forms that fail on mobile keyboards, error messages that clear the whole form, no confirmation of what happens next. Test your own form on your phone this week - you might be surprised.`,
		Status:      models.PostStatusPublished,
		PublishedAt: timePtr(time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)),
		Category:    categoryData{Slug: "web-development", Name: "Web Development", Description: "Build notes, stack choices and lessons from client projects."},
		Author:      authorData{Email: "jordan@agencypro.dev", Name: "Jordan Reyes", Bio: "Head of development. Writes about performance, tooling and shipping."},
		Tags: []tagData{
			{Slug: "conversion", Name: "Conversion"},
			{Slug: "web-design", Name: "Web Design"},
		},
	},
	{
		Slug:            "automation-wins-for-service-businesses",
		Title:           "Five Automation Wins Any Service Business Can Ship This Month",
		Excerpt:         "No-code automations that reclaim hours every week: lead routing, review requests, invoice chasing and more.",
		MetaTitle:       "5 Easy Automation Wins for Service Businesses",
		MetaDescription: "Five practical automations - lead routing, review requests, invoice chasing - that service businesses can set up in under a month.",
		Content: `You don't need a custom platform to benefit from automation. These five workflows deliver the fastest payback we see, and every one can be live inside a month.

## 1. Instant lead acknowledgement

Reply to every enquiry within a minute, automatically, with a human follow-up promise. Response speed is the strongest predictor of which quote wins.

## 2. Review requests on job completion

Marking a job done in your system should trigger the review ask while the customer is happiest.

## 3. Invoice chasing

Polite, escalating reminders at 3, 10 and 21 days overdue. Nobody enjoys sending these; software doesn't mind.

## 4. Lead routing

Enquiries tagged by service and assigned to the right person with a deadline - no more shared inbox roulette.

## 5. Calendar-to-CRM sync

Every booked consultation creates a CRM deal automatically, so the pipeline is real without anyone doing data entry.`,
		Status:      models.PostStatusPublished,
		PublishedAt: timePtr(time.Date(2026, 4, 20, 9, 0, 0, 0, time.UTC)),
		Category:    categoryData{Slug: "small-business", Name: "Small Business", Description: "Practical growth advice for local business owners."},
		Author:      authorData{Email: "jordan@agencypro.dev", Name: "Jordan Reyes", Bio: "Head of development. Writes about performance, tooling and shipping."},
		Tags: []tagData{
			{Slug: "automation", Name: "Automation"},
			{Slug: "local-business", Name: "Local Business"},
		},
	},
	{
		Slug:            "core-web-vitals-for-business-owners",
		Title:           "Core Web Vitals, Explained for Business Owners",
		Excerpt:         "Google grades your site's speed and stability. Here's what the three scores mean and when to worry.",
		MetaTitle:       "Core Web Vitals Explained (No Jargon)",
		MetaDescription: "A business owner's plain-language guide to Core Web Vitals: what LCP, INP and CLS measure and when poor scores actually matter.",
		Content: `Google measures three things about every page: how fast the main content appears, how quickly the page responds to taps, and whether things jump around while loading. Together they're called Core Web Vitals.

## When to worry

If your scores are in the red and your rankings matter to you, fix them - slow pages lose both rankings and patience. If they're amber, prioritize based on where your traffic comes from: mobile-heavy audiences feel slowness most.

## The usual suspects

Oversized images, too many third-party scripts, and cheap shared hosting cause the majority of failing scores we audit. All three are fixable without a redesign.

This post is scheduled to publish alongside our site-speed service update.`,
		Status:      models.PostStatusScheduled,
		PublishedAt: timePtr(time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)),
		Category:    categoryData{Slug: "web-development", Name: "Web Development", Description: "Build notes, stack choices and lessons from client projects."},
		Author:      authorData{Email: "jordan@agencypro.dev", Name: "Jordan Reyes", Bio: "Head of development. Writes about performance, tooling and shipping."},
		Tags: []tagData{
			{Slug: "web-design", Name: "Web Design"},
			{Slug: "seo", Name: "SEO"},
		},
	},
}
