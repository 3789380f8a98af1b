package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agencypro-backend/config"
	"agencypro-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.All()...))
	config.DB = db

	service := models.Service{
		Slug:             "seo-optimization",
		Title:            "SEO Optimization",
		ShortDescription: "Climb the rankings.",
		Category:         models.CategoryMarketing,
		IsActive:         true,
	}
	require.NoError(t, db.Create(&service).Error)

	r := gin.New()
	r.POST("/api/contact", CreateLead)
	r.GET("/api/contact/options", GetContactOptions)
	r.GET("/api/services/:slug", GetServiceBySlug)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateLead(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(r, "/api/contact", gin.H{
		"name":        "Jamie Fox",
		"email":       "jamie@example.com",
		"serviceSlug": "seo-optimization",
		"budget":      "$2,000 - $5,000",
		"message":     "Need help ranking locally.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var lead models.Lead
	require.NoError(t, config.DB.Where("email = ?", "jamie@example.com").First(&lead).Error)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Equal(t, "seo-optimization", lead.ServiceSlug)
}

func TestCreateLeadValidation(t *testing.T) {
	r := setupTestRouter(t)

	t.Run("missing email", func(t *testing.T) {
		w := postJSON(r, "/api/contact", gin.H{"name": "No Email"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad phone", func(t *testing.T) {
		w := postJSON(r, "/api/contact", gin.H{
			"name":  "Bad Phone",
			"email": "bad@example.com",
			"phone": "not-a-number",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed service slug", func(t *testing.T) {
		w := postJSON(r, "/api/contact", gin.H{
			"name":        "Tampered Request",
			"email":       "tampered@example.com",
			"serviceSlug": "Not A Slug!",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown service slug", func(t *testing.T) {
		w := postJSON(r, "/api/contact", gin.H{
			"name":        "Stale Client",
			"email":       "stale@example.com",
			"serviceSlug": "deleted-service",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

type recordingNotifier struct {
	leads chan models.Lead
}

func (n *recordingNotifier) NotifyNewLead(lead models.Lead) {
	n.leads <- lead
}

// The notifier is injected from main after the environment is loaded;
// a stored lead must reach whatever notifier is installed.
func TestCreateLeadNotifiesInstalledNotifier(t *testing.T) {
	r := setupTestRouter(t)

	rec := &recordingNotifier{leads: make(chan models.Lead, 1)}
	SetLeadNotifier(rec)
	t.Cleanup(func() { SetLeadNotifier(nil) })

	w := postJSON(r, "/api/contact", gin.H{
		"name":        "Robin Vale",
		"email":       "robin@example.com",
		"serviceSlug": "seo-optimization",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	select {
	case lead := <-rec.leads:
		assert.Equal(t, "robin@example.com", lead.Email)
		assert.Equal(t, "seo-optimization", lead.ServiceSlug)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never called for the new lead")
	}
}

func TestGetContactOptions(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/contact/options", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Services []struct {
			Slug  string `json:"slug"`
			Title string `json:"title"`
		} `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "seo-optimization", resp.Services[0].Slug)
}

func TestGetServiceBySlugNotFound(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/services/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
