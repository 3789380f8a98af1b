// controllers/admin.go
package controllers

import (
	"errors"
	"net/http"

	"agencypro-backend/config"
	"agencypro-backend/models"
	"agencypro-backend/seed"
	"agencypro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetLeads lists contact-form submissions for the admin dashboard.
// Optional ?status= filter.
func GetLeads(c *gin.Context) {
	query := config.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var leads []models.Lead
	if err := query.Find(&leads).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch leads")
		return
	}

	c.JSON(http.StatusOK, leads)
}

type UpdateLeadStatusInput struct {
	Status string `json:"status" binding:"required,oneof=new contacted closed"`
}

// UpdateLeadStatus moves a lead through the pipeline.
func UpdateLeadStatus(c *gin.Context) {
	var input UpdateLeadStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var lead models.Lead
	if err := config.DB.Where("id = ?", c.Param("id")).First(&lead).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if err := config.DB.Model(&lead).Update("status", input.Status).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// GetDashboardOverview returns the counts shown on the admin home.
func GetDashboardOverview(c *gin.Context) {
	var serviceCount, postCount, leadCount, newLeadCount int64

	if err := config.DB.Model(&models.Service{}).Count(&serviceCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	config.DB.Model(&models.BlogPost{}).Where("status = ?", models.PostStatusPublished).Count(&postCount)
	config.DB.Model(&models.Lead{}).Count(&leadCount)
	config.DB.Model(&models.Lead{}).Where("status = ?", models.LeadStatusNew).Count(&newLeadCount)

	c.JSON(http.StatusOK, gin.H{
		"services":       serviceCount,
		"publishedPosts": postCount,
		"leads":          leadCount,
		"newLeads":       newLeadCount,
	})
}

// ListSeeders exposes the seed registry so the dashboard can show the
// available operations.
func ListSeeders(c *gin.Context) {
	configs := []seed.Config{}
	for _, s := range seed.Registry() {
		configs = append(configs, s.Config())
	}
	c.JSON(http.StatusOK, configs)
}

// RunSeeder executes one named seed operation.
func RunSeeder(c *gin.Context) {
	seeder, ok := seed.Lookup(c.Param("name"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Unknown seed operation")
		return
	}

	count, err := seeder.Execute(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Seed failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": seeder.Config().Name, "inserted": count})
}

// ClearSeeder clears one named seed operation's data.
func ClearSeeder(c *gin.Context) {
	seeder, ok := seed.Lookup(c.Param("name"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Unknown seed operation")
		return
	}

	if err := seeder.Clear(config.DB); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Clear failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": seeder.Config().Name, "cleared": true})
}
