package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service categories used across the catalog
const (
	CategoryDevelopment = "Development"
	CategoryMarketing   = "Marketing"
	CategorySupport     = "Support"
	CategoryDesign      = "Design"
)

type Service struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Slug             string    `gorm:"uniqueIndex;not null" json:"slug"`
	Title            string    `gorm:"not null" json:"title"`
	ShortDescription string    `json:"shortDescription"`
	FullDescription  string    `gorm:"type:text" json:"fullDescription"`
	Category         string    `gorm:"type:varchar(20);index;not null" json:"category"`
	Timeline         string    `json:"timeline"`
	FeaturedImage    string    `json:"featuredImage"`
	IsActive         bool      `gorm:"default:true" json:"isActive"`

	Features      []ServiceFeature     `gorm:"foreignKey:ServiceID" json:"features,omitempty"`
	Benefits      []ServiceBenefit     `gorm:"foreignKey:ServiceID" json:"benefits,omitempty"`
	ProcessSteps  []ProcessStep        `gorm:"foreignKey:ServiceID" json:"processSteps,omitempty"`
	Deliverables  []ServiceDeliverable `gorm:"foreignKey:ServiceID" json:"deliverables,omitempty"`
	Technologies  []ServiceTechnology  `gorm:"foreignKey:ServiceID" json:"technologies,omitempty"`
	GalleryImages []GalleryImage       `gorm:"foreignKey:ServiceID" json:"galleryImages,omitempty"`
	PricingTiers  []PricingTier        `gorm:"foreignKey:ServiceID" json:"pricingTiers,omitempty"`
	Testimonial   *Testimonial         `gorm:"foreignKey:ServiceID" json:"testimonial,omitempty"`
	FAQs          []ServiceFAQ         `gorm:"foreignKey:ServiceID" json:"faqs,omitempty"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

type ServiceFeature struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID   uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	SortOrder   int       `gorm:"not null" json:"sortOrder"`
}

func (f *ServiceFeature) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}

type ServiceBenefit struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	Title     string    `gorm:"not null" json:"title"`
	SortOrder int       `gorm:"not null" json:"sortOrder"`
}

func (b *ServiceBenefit) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

type ProcessStep struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID   uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	StepNumber  int       `gorm:"not null" json:"stepNumber"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"` // e.g. "1-2 weeks"
	SortOrder   int       `gorm:"not null" json:"sortOrder"`
}

func (p *ProcessStep) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

type ServiceDeliverable struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	Title     string    `gorm:"not null" json:"title"`
	SortOrder int       `gorm:"not null" json:"sortOrder"`
}

func (d *ServiceDeliverable) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}

type ServiceTechnology struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	Name      string    `gorm:"not null" json:"name"`
	SortOrder int       `gorm:"not null" json:"sortOrder"`
}

func (t *ServiceTechnology) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

type GalleryImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	URL       string    `gorm:"not null" json:"url"`
	Alt       string    `json:"alt"`
	SortOrder int       `gorm:"not null" json:"sortOrder"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}

// PricingTier price is free text on purpose: ranges ("$2,500 - $5,000")
// and suffixes ("$99/month") both appear in the catalog.
type PricingTier struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID   uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	Name        string    `gorm:"not null" json:"name"`
	Price       string    `gorm:"not null" json:"price"`
	Description string    `json:"description"`
	Popular     bool      `gorm:"default:false" json:"popular"`
	SortOrder   int       `gorm:"not null" json:"sortOrder"`

	Features []PricingFeature `gorm:"foreignKey:PricingTierID" json:"features,omitempty"`
}

func (p *PricingTier) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

type PricingFeature struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PricingTierID uuid.UUID `gorm:"type:uuid;index;not null" json:"pricingTierId"`
	Text          string    `gorm:"not null" json:"text"`
	SortOrder     int       `gorm:"not null" json:"sortOrder"`
}

func (p *PricingFeature) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// Testimonial is zero-or-one per service, not a collection.
type Testimonial struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"serviceId"`
	Quote     string    `gorm:"type:text;not null" json:"quote"`
	Author    string    `gorm:"not null" json:"author"`
	Company   string    `json:"company"`
	AvatarURL string    `json:"avatarUrl"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

type ServiceFAQ struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	Question  string    `gorm:"not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	SortOrder int       `gorm:"not null" json:"sortOrder"`
}

func (f *ServiceFAQ) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}

// RelatedService is a directed edge between two services. Edges are
// authored as slug pairs and resolved to ids at seed time; A->B does
// not imply B->A.
type RelatedService struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID        uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	RelatedServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"relatedServiceId"`
}

func (r *RelatedService) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
