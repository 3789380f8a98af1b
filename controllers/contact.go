// controllers/contact.go
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

// LeadNotifier alerts the agency about a freshly stored lead.
type LeadNotifier interface {
	NotifyNewLead(lead models.Lead)
}

var notifier LeadNotifier

// SetLeadNotifier installs the notifier for new leads. Wired from main
// after the environment is loaded so twilio credentials from .env are
// visible; nil leaves notifications off.
func SetLeadNotifier(n LeadNotifier) {
	notifier = n
}

// CreateLeadInput is the final payload of the multi-step contact form.
// Only the first step (name/email) is mandatory; project details are
// collected in later steps and may be empty.
type CreateLeadInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	ServiceSlug string `json:"serviceSlug"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Message     string `json:"message"`
}

// CreateLead stores a contact-form submission and alerts the agency.
func CreateLead(c *gin.Context) {
	var input CreateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	// The service picker is populated from the live catalog, so an
	// unknown slug means a stale client or a tampered request.
	if input.ServiceSlug != "" {
		if !utils.ValidateSlug(input.ServiceSlug) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service slug")
			return
		}
		var count int64
		if err := config.DB.Model(&models.Service{}).Where("slug = ?", input.ServiceSlug).Count(&count).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if count == 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown service")
			return
		}
	}

	lead := models.Lead{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Company:     input.Company,
		ServiceSlug: input.ServiceSlug,
		Budget:      input.Budget,
		Timeline:    input.Timeline,
		Message:     input.Message,
		Status:      models.LeadStatusNew,
	}
	if err := config.DB.Create(&lead).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save enquiry")
		return
	}

	// Best-effort; never blocks or fails the submission.
	if notifier != nil {
		go notifier.NotifyNewLead(lead)
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      lead.ID,
		"message": "Thanks - we'll be in touch within one business day.",
	})
}

// GetContactOptions returns the data the contact form needs to render:
// the service picker list.
func GetContactOptions(c *gin.Context) {
	var picker []struct {
		Slug  string `json:"slug"`
		Title string `json:"title"`
	}
	err := config.DB.Model(&models.Service{}).
		Select("slug", "title").
		Where("is_active = ?", true).
		Order("title ASC").
		Find(&picker).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": picker})
}

// GetSiteConfig returns the singleton site configuration.
func GetSiteConfig(c *gin.Context) {
	var cfg models.SiteConfig
	if err := config.DB.First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Site config not seeded")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch site config")
		return
	}

	c.JSON(http.StatusOK, cfg)
}
