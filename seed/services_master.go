package seed

import (
	"fmt"

	"agencypro-backend/models"
	"agencypro-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// relationshipGroup maps one source service to the services its landing
// page should cross-link. Hand-maintained, so it may drift from the
// seeded catalog; unresolvable slugs are warned about and skipped.
type relationshipGroup struct {
	Source  string
	Targets []string
}

var serviceRelationships = []relationshipGroup{
	{Source: "custom-website-development", Targets: []string{"seo-optimization", "managed-wordpress-hosting", "ui-ux-design"}},
	{Source: "ecommerce-development", Targets: []string{"custom-website-development", "conversion-rate-optimization", "email-marketing-automation"}},
	{Source: "landing-page-design", Targets: []string{"google-ads-management", "conversion-rate-optimization"}},
	{Source: "website-redesign", Targets: []string{"ui-ux-design", "seo-optimization"}},
	{Source: "progressive-web-apps", Targets: []string{"custom-website-development", "api-integration-services"}},
	{Source: "seo-optimization", Targets: []string{"content-marketing", "local-seo"}},
	{Source: "google-ads-management", Targets: []string{"landing-page-design", "conversion-rate-optimization"}},
	{Source: "local-seo", Targets: []string{"seo-optimization", "review-management"}},
	{Source: "content-marketing", Targets: []string{"seo-optimization", "email-marketing-automation"}},
	{Source: "email-marketing-automation", Targets: []string{"crm-integration", "content-marketing"}},
	{Source: "crm-integration", Targets: []string{"workflow-automation", "api-integration-services"}},
	{Source: "workflow-automation", Targets: []string{"crm-integration", "api-integration-services"}},
	{Source: "api-integration-services", Targets: []string{"workflow-automation", "custom-website-development"}},
	{Source: "ui-ux-design", Targets: []string{"custom-website-development", "brand-identity-design"}},
	{Source: "brand-identity-design", Targets: []string{"ui-ux-design", "landing-page-design"}},
	{Source: "conversion-rate-optimization", Targets: []string{"landing-page-design", "google-ads-management"}},
	{Source: "review-management", Targets: []string{"local-seo"}},
	{Source: "managed-wordpress-hosting", Targets: []string{"custom-website-development", "website-redesign"}},
}

// ServicesMasterSeeder runs every category module, then wires the
// related-services graph in a second pass. The two-phase order matters:
// edges reference services from any category, so slugs can only be
// resolved once the full catalog is in.
type ServicesMasterSeeder struct {
	cfg     Config
	modules []*CategorySeeder
}

func NewServicesMasterSeeder() *ServicesMasterSeeder {
	return &ServicesMasterSeeder{
		cfg: Config{
			Name:        "services",
			Order:       3,
			Description: "Service catalog for all categories plus the related-services graph",
		},
		modules: []*CategorySeeder{
			NewWebServicesSeeder(),
			NewMarketingServicesSeeder(),
			NewAutomationServicesSeeder(),
			NewDesignServicesSeeder(),
			NewHostingServicesSeeder(),
		},
	}
}

func (s *ServicesMasterSeeder) Config() Config {
	return s.cfg
}

func (s *ServicesMasterSeeder) Execute(db *gorm.DB) (int, error) {
	log := utils.GetLogger()
	total := 0
	for _, m := range s.modules {
		count, err := m.Execute(db)
		total += count
		if err != nil {
			return total, fmt.Errorf("seed %s: %w", m.Config().Name, err)
		}
		log.Info("seeded service category",
			zap.String("module", m.Config().Name),
			zap.Int("inserted", count),
		)
	}

	// Edges are rebuilt from scratch on every run so re-executing the
	// master seed never duplicates them.
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.RelatedService{}).Error; err != nil {
		return total, fmt.Errorf("reset relationship edges: %w", err)
	}
	edges, err := linkRelatedServices(db, serviceRelationships)
	if err != nil {
		return total, fmt.Errorf("link related services: %w", err)
	}
	log.Info("linked related services", zap.Int("edges", edges))

	return total, nil
}

// Clear removes the edge table first (edges reference services across
// category boundaries), then delegates to each module.
func (s *ServicesMasterSeeder) Clear(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.RelatedService{}).Error; err != nil {
		return fmt.Errorf("clear relationship edges: %w", err)
	}
	for _, m := range s.modules {
		if err := m.Clear(db); err != nil {
			return fmt.Errorf("clear %s: %w", m.Config().Name, err)
		}
	}
	return nil
}

// linkRelatedServices resolves hand-authored slug pairs into directed id
// edges. The slug->id snapshot is taken over the full services table and
// rebuilt on every call; ids are not stable across databases, so caching
// it would be wrong. Missing slugs log a warning and are skipped rather
// than failing the run.
func linkRelatedServices(db *gorm.DB, groups []relationshipGroup) (int, error) {
	log := utils.GetLogger()

	var rows []struct {
		ID   uuid.UUID
		Slug string
	}
	if err := db.Model(&models.Service{}).Select("id", "slug").Find(&rows).Error; err != nil {
		return 0, fmt.Errorf("load slug map: %w", err)
	}
	idBySlug := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		idBySlug[row.Slug] = row.ID
	}

	var edges []models.RelatedService
	for _, group := range groups {
		sourceID, ok := idBySlug[group.Source]
		if !ok {
			log.Warn("related services: source slug not found, skipping group",
				zap.String("slug", group.Source))
			continue
		}
		for _, target := range group.Targets {
			targetID, ok := idBySlug[target]
			if !ok {
				log.Warn("related services: target slug not found, skipping",
					zap.String("source", group.Source),
					zap.String("target", target))
				continue
			}
			edges = append(edges, models.RelatedService{
				ServiceID:        sourceID,
				RelatedServiceID: targetID,
			})
		}
	}

	if len(edges) == 0 {
		return 0, nil
	}
	if err := db.Create(&edges).Error; err != nil {
		return 0, fmt.Errorf("insert relationship edges: %w", err)
	}
	return len(edges), nil
}
