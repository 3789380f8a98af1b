// services/publisher_service.go
package services

import (
	"time"

	"agencypro-backend/models"
	"agencypro-backend/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PublisherService promotes scheduled blog posts to published once
// their publish time has passed.
type PublisherService struct {
	db *gorm.DB
}

func NewPublisherService(db *gorm.DB) *PublisherService {
	return &PublisherService{db: db}
}

// StartScheduler runs the publish check every 5 minutes, plus once at
// startup so posts due while the server was down go out immediately.
func (s *PublisherService) StartScheduler() {
	c := cron.New()

	c.AddFunc("*/5 * * * *", s.PublishDuePosts)

	s.PublishDuePosts()
	c.Start()
	utils.GetLogger().Info("post publisher scheduler started")
}

func (s *PublisherService) PublishDuePosts() {
	log := utils.GetLogger()

	result := s.db.Model(&models.BlogPost{}).
		Where("status = ? AND published_at IS NOT NULL AND published_at <= ?", models.PostStatusScheduled, time.Now()).
		Update("status", models.PostStatusPublished)
	if result.Error != nil {
		log.Error("failed to publish scheduled posts", zap.Error(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		log.Info("published scheduled posts", zap.Int64("count", result.RowsAffected))
	}
}
