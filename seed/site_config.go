package seed

import (
	"fmt"

	"agencypro-backend/models"

	"gorm.io/gorm"
)

// SiteConfigSeeder creates the singleton site configuration row. Unlike
// every other seeder this is not keyed by a natural key: the row is
// created only when the table is empty.
type SiteConfigSeeder struct {
	cfg Config
}

func NewSiteConfigSeeder() *SiteConfigSeeder {
	return &SiteConfigSeeder{
		cfg: Config{
			Name:        "site-config",
			Order:       1,
			Description: "Singleton site configuration (branding, contact, SEO defaults)",
		},
	}
}

func (s *SiteConfigSeeder) Config() Config {
	return s.cfg
}

func (s *SiteConfigSeeder) Execute(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.SiteConfig{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count site config rows: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	config := models.SiteConfig{
		SiteName:        "AgencyPro Digital",
		Tagline:         "Websites, marketing and automation for local businesses",
		ContactEmail:    "hello@agencypro.dev",
		ContactPhone:    "+15550137729",
		Address:         "214 Commerce Street, Suite 310",
		MetaTitle:       "AgencyPro Digital | Web Design & Digital Marketing",
		MetaDescription: "Full-service digital agency: custom websites, SEO, paid ads and business automation for local companies.",
		ThemeColors: models.JSONB{
			"primary":   "#1d4ed8",
			"secondary": "#0f172a",
			"accent":    "#f59e0b",
		},
		SocialLinks: models.JSONB{
			"linkedin":  "https://linkedin.com/company/agencypro-digital",
			"instagram": "https://instagram.com/agencypro.digital",
			"youtube":   "https://youtube.com/@agencyprodigital",
		},
	}
	if err := db.Create(&config).Error; err != nil {
		return 0, fmt.Errorf("create site config: %w", err)
	}
	return 1, nil
}

func (s *SiteConfigSeeder) Clear(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.SiteConfig{}).Error; err != nil {
		return fmt.Errorf("clear site config: %w", err)
	}
	return nil
}
