package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead statuses
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusClosed    = "closed"
)

// Lead is a contact-form submission. The multi-step form collects
// contact details first, then project details, so everything past
// name/email is optional.
type Lead struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"index;not null" json:"email"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company"`
	ServiceSlug string    `gorm:"index" json:"serviceSlug"`
	Budget      string    `json:"budget"`
	Timeline    string    `json:"timeline"`
	Message     string    `gorm:"type:text" json:"message"`
	Status      string    `gorm:"type:varchar(20);index;default:'new'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
