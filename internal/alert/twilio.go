package alert

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/shenikar/fire_risk_alert/internal/config"
)

// TwilioSender - реализация Sender поверх Twilio REST API
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSender создает клиент Twilio с таймаутом отправки из конфигурации
func NewTwilioSender(cfg *config.Config) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	client.SetTimeout(cfg.SMSSendTimeout)

	return &TwilioSender{
		client: client,
		from:   cfg.TwilioFromNumber,
	}
}

// Send отправляет SMS на указанный номер
func (s *TwilioSender) Send(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS via Twilio: %w", err)
	}
	return nil
}
