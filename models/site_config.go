package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteConfig is a singleton row: the seeder creates it only when the
// table is empty, so it is not keyed by a natural key like the rest.
type SiteConfig struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SiteName        string    `gorm:"not null" json:"siteName"`
	Tagline         string    `json:"tagline"`
	ContactEmail    string    `json:"contactEmail"`
	ContactPhone    string    `json:"contactPhone"`
	Address         string    `json:"address"`
	MetaTitle       string    `json:"metaTitle"`
	MetaDescription string    `json:"metaDescription"`
	ThemeColors     JSONB     `gorm:"type:jsonb;default:'{}'" json:"themeColors"`
	SocialLinks     JSONB     `gorm:"type:jsonb;default:'{}'" json:"socialLinks"`
}

func (s *SiteConfig) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// Custom JSONB type for theme colors and social links
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("type assertion to []byte failed")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, &j)
}
