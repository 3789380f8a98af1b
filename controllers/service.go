// controllers/service.go
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

func sortByOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// GetServices lists active services for landing pages and the contact
// form's service picker. Optional ?category= filter.
func GetServices(c *gin.Context) {
	query := config.DB.Where("is_active = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var services []models.Service
	if err := query.Order("title ASC").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetServiceBySlug returns one service with every child collection,
// each in its seeded display order.
func GetServiceBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var service models.Service
	err := config.DB.
		Preload("Features", sortByOrder).
		Preload("Benefits", sortByOrder).
		Preload("ProcessSteps", sortByOrder).
		Preload("Deliverables", sortByOrder).
		Preload("Technologies", sortByOrder).
		Preload("GalleryImages", sortByOrder).
		Preload("PricingTiers", sortByOrder).
		Preload("PricingTiers.Features", sortByOrder).
		Preload("Testimonial").
		Preload("FAQs", sortByOrder).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// GetServiceFAQs returns just the FAQ entries for a service, used by
// the standalone FAQ component.
func GetServiceFAQs(c *gin.Context) {
	slug := c.Param("slug")

	var service models.Service
	if err := config.DB.Select("id").Where("slug = ?", slug).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch service")
		return
	}

	var faqs []models.ServiceFAQ
	if err := config.DB.Where("service_id = ?", service.ID).Order("sort_order ASC").Find(&faqs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch FAQs")
		return
	}

	c.JSON(http.StatusOK, faqs)
}

// GetRelatedServices follows the directed related-services edges out of
// the given service.
func GetRelatedServices(c *gin.Context) {
	slug := c.Param("slug")

	var service models.Service
	if err := config.DB.Select("id").Where("slug = ?", slug).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch service")
		return
	}

	var related []models.Service
	err := config.DB.
		Joins("JOIN related_services ON related_services.related_service_id = services.id").
		Where("related_services.service_id = ? AND services.is_active = ?", service.ID, true).
		Find(&related).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch related services")
		return
	}

	c.JSON(http.StatusOK, related)
}
