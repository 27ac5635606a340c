package notify

import (
	"strings"

	"github.com/SergeyBogomolovv/order-intake/internal/config"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const whatsappPrefix = "whatsapp:"

// MessageAPI is the part of the Twilio REST client used for chat messages.
type MessageAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// NewTwilioMessageAPI returns the Twilio messages API, or nil when the chat
// channel has no credentials.
func NewTwilioMessageAPI(cfg config.Chat) MessageAPI {
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return nil
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return client.Api
}

func whatsappAddress(number string) string {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, whatsappPrefix) {
		return number
	}
	return whatsappPrefix + number
}
