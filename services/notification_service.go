// services/notification_service.go
package services

import (
	"fmt"
	"os"

	"agencypro-backend/models"
	"agencypro-backend/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// NotificationService sends SMS alerts to the agency when a new lead
// comes in. Notifications are best-effort: a failure is logged and never
// propagated to the request that created the lead.
type NotificationService struct {
	client *twilio.RestClient
	from   string
	to     string
}

func NewNotificationService() *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_FROM_NUMBER"),
		to:   os.Getenv("LEAD_NOTIFY_NUMBER"),
	}
}

// NotifyNewLead texts the agency contact number about a fresh enquiry.
func (s *NotificationService) NotifyNewLead(lead models.Lead) {
	log := utils.GetLogger()

	if os.Getenv("TWILIO_ACCOUNT_SID") == "" || s.from == "" || s.to == "" {
		log.Debug("twilio not configured, skipping lead notification",
			zap.String("leadId", lead.ID.String()))
		return
	}

	body := fmt.Sprintf("New lead: %s (%s)", lead.Name, lead.Email)
	if lead.ServiceSlug != "" {
		body += fmt.Sprintf(" - interested in %s", lead.ServiceSlug)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(s.to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Error("failed to send lead notification",
			zap.String("leadId", lead.ID.String()),
			zap.Error(err))
		return
	}
	log.Info("lead notification sent", zap.String("leadId", lead.ID.String()))
}
