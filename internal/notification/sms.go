package notification

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSSender sends session reminders over Twilio. It is optional: without
// credentials every send is a logged no-op.
type SMSSender struct {
	client *twilio.RestClient
	from   string
}

func NewSMSSender(accountSID, authToken, from string) *SMSSender {
	s := &SMSSender{from: from}
	if accountSID != "" && authToken != "" && from != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	}
	return s
}

func (s *SMSSender) Enabled() bool { return s.client != nil }

func (s *SMSSender) SendSessionReminder(phone, clientName, date, startTime string) error {
	body := fmt.Sprintf("Hi %s, a reminder of your photo session on %s", clientName, date)
	if startTime != "" {
		body += " at " + startTime
	}
	body += "."

	if s.client == nil {
		log.Printf("sms_mock to=%s body=%q", phone, body)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
