package seed

import (
	"fmt"

	"agencypro-backend/models"
	"agencypro-backend/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ServiceRecord is the denormalized, hand-authored form of a service and
// all of its child collections. Display order is the position in each
// slice; insertServiceTree turns that into an explicit 1-based SortOrder
// so the database never depends on insertion order.
type ServiceRecord struct {
	Slug             string
	Title            string
	ShortDescription string
	FullDescription  string
	Category         string
	Timeline         string
	FeaturedImage    string

	Features      []FeatureData
	Benefits      []string
	ProcessSteps  []ProcessStepData
	Deliverables  []string
	Technologies  []string
	GalleryImages []GalleryImageData
	PricingTiers  []PricingTierData
	Testimonial   *TestimonialData
	FAQs          []FAQData
}

type FeatureData struct {
	Title       string
	Description string
	Icon        string
}

type ProcessStepData struct {
	Title       string
	Description string
	Duration    string
}

type GalleryImageData struct {
	URL string
	Alt string
}

type PricingTierData struct {
	Name        string
	Price       string
	Description string
	Popular     bool
	Features    []string
}

type TestimonialData struct {
	Quote     string
	Author    string
	Company   string
	AvatarURL string
}

type FAQData struct {
	Question string
	Answer   string
}

// insertServiceTree inserts the parent service row and every child
// collection. Callers are expected to run it inside a transaction so a
// failure partway through a record does not leave it half-populated.
func insertServiceTree(tx *gorm.DB, rec ServiceRecord) error {
	service := models.Service{
		Slug:             rec.Slug,
		Title:            rec.Title,
		ShortDescription: rec.ShortDescription,
		FullDescription:  rec.FullDescription,
		Category:         rec.Category,
		Timeline:         rec.Timeline,
		FeaturedImage:    rec.FeaturedImage,
		IsActive:         true,
	}
	if err := tx.Create(&service).Error; err != nil {
		return fmt.Errorf("insert service %s: %w", rec.Slug, err)
	}

	for i, f := range rec.Features {
		feature := models.ServiceFeature{
			ServiceID:   service.ID,
			Title:       f.Title,
			Description: f.Description,
			Icon:        f.Icon,
			SortOrder:   i + 1,
		}
		if err := tx.Create(&feature).Error; err != nil {
			return fmt.Errorf("insert feature for %s: %w", rec.Slug, err)
		}
	}

	for i, b := range rec.Benefits {
		benefit := models.ServiceBenefit{ServiceID: service.ID, Title: b, SortOrder: i + 1}
		if err := tx.Create(&benefit).Error; err != nil {
			return fmt.Errorf("insert benefit for %s: %w", rec.Slug, err)
		}
	}

	for i, p := range rec.ProcessSteps {
		step := models.ProcessStep{
			ServiceID:   service.ID,
			StepNumber:  i + 1,
			Title:       p.Title,
			Description: p.Description,
			Duration:    p.Duration,
			SortOrder:   i + 1,
		}
		if err := tx.Create(&step).Error; err != nil {
			return fmt.Errorf("insert process step for %s: %w", rec.Slug, err)
		}
	}

	for i, d := range rec.Deliverables {
		deliverable := models.ServiceDeliverable{ServiceID: service.ID, Title: d, SortOrder: i + 1}
		if err := tx.Create(&deliverable).Error; err != nil {
			return fmt.Errorf("insert deliverable for %s: %w", rec.Slug, err)
		}
	}

	for i, name := range rec.Technologies {
		tech := models.ServiceTechnology{ServiceID: service.ID, Name: name, SortOrder: i + 1}
		if err := tx.Create(&tech).Error; err != nil {
			return fmt.Errorf("insert technology for %s: %w", rec.Slug, err)
		}
	}

	for i, g := range rec.GalleryImages {
		image := models.GalleryImage{ServiceID: service.ID, URL: g.URL, Alt: g.Alt, SortOrder: i + 1}
		if err := tx.Create(&image).Error; err != nil {
			return fmt.Errorf("insert gallery image for %s: %w", rec.Slug, err)
		}
	}

	for i, t := range rec.PricingTiers {
		tier := models.PricingTier{
			ServiceID:   service.ID,
			Name:        t.Name,
			Price:       t.Price,
			Description: t.Description,
			Popular:     t.Popular,
			SortOrder:   i + 1,
		}
		if err := tx.Create(&tier).Error; err != nil {
			return fmt.Errorf("insert pricing tier for %s: %w", rec.Slug, err)
		}
		for j, text := range t.Features {
			pf := models.PricingFeature{PricingTierID: tier.ID, Text: text, SortOrder: j + 1}
			if err := tx.Create(&pf).Error; err != nil {
				return fmt.Errorf("insert pricing feature for %s: %w", rec.Slug, err)
			}
		}
	}

	if rec.Testimonial != nil {
		testimonial := models.Testimonial{
			ServiceID: service.ID,
			Quote:     rec.Testimonial.Quote,
			Author:    rec.Testimonial.Author,
			Company:   rec.Testimonial.Company,
			AvatarURL: rec.Testimonial.AvatarURL,
		}
		if err := tx.Create(&testimonial).Error; err != nil {
			return fmt.Errorf("insert testimonial for %s: %w", rec.Slug, err)
		}
	}

	for i, f := range rec.FAQs {
		faq := models.ServiceFAQ{ServiceID: service.ID, Question: f.Question, Answer: f.Answer, SortOrder: i + 1}
		if err := tx.Create(&faq).Error; err != nil {
			return fmt.Errorf("insert faq for %s: %w", rec.Slug, err)
		}
	}

	return nil
}

// clearServicesBySlugs cascade-deletes every dependent row for the given
// slugs, grandchildren first, then relationship edges touching those ids
// from either side, then the service rows. The whole sequence runs in one
// transaction.
func clearServicesBySlugs(db *gorm.DB, slugs []string) error {
	if len(slugs) == 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&models.Service{}).Where("slug IN ?", slugs).Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("look up service ids: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		var tierIDs []string
		if err := tx.Model(&models.PricingTier{}).Where("service_id IN ?", ids).Pluck("id", &tierIDs).Error; err != nil {
			return fmt.Errorf("look up pricing tier ids: %w", err)
		}
		if len(tierIDs) > 0 {
			if err := tx.Where("pricing_tier_id IN ?", tierIDs).Delete(&models.PricingFeature{}).Error; err != nil {
				return fmt.Errorf("delete pricing features: %w", err)
			}
		}
		if err := tx.Where("service_id IN ?", ids).Delete(&models.PricingTier{}).Error; err != nil {
			return fmt.Errorf("delete pricing tiers: %w", err)
		}
		if err := tx.Where("service_id IN ?", ids).Delete(&models.ServiceFAQ{}).Error; err != nil {
			return fmt.Errorf("delete faqs: %w", err)
		}
		if err := tx.Where("service_id IN ?", ids).Delete(&models.Testimonial{}).Error; err != nil {
			return fmt.Errorf("delete testimonials: %w", err)
		}
		if err := tx.Where("service_id IN ?", ids).Delete(&models.GalleryImage{}).Error; err != nil {
			return fmt.Errorf("delete gallery images: %w", err)
		}
		if err := tx.Where("service_id IN ?", ids).Delete(&models.ServiceDeliverable{}).Error; err != nil {
			return fmt.Errorf("delete deliverables: %w", err)
		}
		if err := tx.Where("service_id IN ?", ids).Delete(&models.ServiceTechnology{}).Error; err != nil {
			return fmt.Errorf("delete technologies: %w", err)
		}
		if err := tx.Where("service_id IN ?", ids).Delete(&models.ProcessStep{}).Error; err != nil {
			return fmt.Errorf("delete process steps: %w", err)
		}
		if err := tx.Where("service_id IN ?", ids).Delete(&models.ServiceBenefit{}).Error; err != nil {
			return fmt.Errorf("delete benefits: %w", err)
		}
		if err := tx.Where("service_id IN ?", ids).Delete(&models.ServiceFeature{}).Error; err != nil {
			return fmt.Errorf("delete features: %w", err)
		}
		if err := tx.Where("service_id IN ? OR related_service_id IN ?", ids, ids).Delete(&models.RelatedService{}).Error; err != nil {
			return fmt.Errorf("delete relationship edges: %w", err)
		}
		if err := tx.Where("id IN ?", ids).Delete(&models.Service{}).Error; err != nil {
			return fmt.Errorf("delete services: %w", err)
		}
		return nil
	})
}

// CategorySeeder seeds one category's static service records. All five
// category modules share this skeleton and differ only in their data.
type CategorySeeder struct {
	cfg     Config
	records []ServiceRecord
}

func (s *CategorySeeder) Config() Config {
	return s.cfg
}

// Execute inserts every record whose slug is not already present. Each
// record's multi-table insert runs in its own transaction.
func (s *CategorySeeder) Execute(db *gorm.DB) (int, error) {
	log := utils.GetLogger()
	inserted := 0
	for _, rec := range s.records {
		var count int64
		if err := db.Model(&models.Service{}).Where("slug = ?", rec.Slug).Count(&count).Error; err != nil {
			return inserted, fmt.Errorf("check existing service %s: %w", rec.Slug, err)
		}
		if count > 0 {
			log.Debug("service already seeded, skipping", zap.String("slug", rec.Slug))
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			return insertServiceTree(tx, rec)
		})
		if err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// Clear removes this module's services and everything hanging off them.
// Deletes are scoped to the module's own slug set, so clearing several
// categories in any order is safe.
func (s *CategorySeeder) Clear(db *gorm.DB) error {
	return clearServicesBySlugs(db, s.slugs())
}

func (s *CategorySeeder) slugs() []string {
	slugs := make([]string, 0, len(s.records))
	for _, rec := range s.records {
		slugs = append(slugs, rec.Slug)
	}
	return slugs
}
