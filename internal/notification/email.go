package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const resendAPI = "https://api.resend.com/emails"

// EmailSender delivers transactional mail through the Resend HTTP API.
// Without an API key it degrades to logging the message, so local runs and
// tests never reach the network.
type EmailSender struct {
	apiKey string
	from   string
	client *http.Client
}

func NewEmailSender(apiKey, from string) *EmailSender {
	return &EmailSender{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type resendEmail struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
	Text    string `json:"text,omitempty"`
}

func (s *EmailSender) send(to, subject, htmlBody, textBody string) error {
	if s.apiKey == "" {
		log.Printf("email_mock to=%s subject=%q", to, subject)
		return nil
	}

	payload := resendEmail{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    htmlBody,
		Text:    textBody,
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, resendAPI, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("resend API error: %s", resp.Status)
	}
	return nil
}

func (s *EmailSender) SendDeliverableReady(clientEmail, clientName, portalURL string) error {
	html := fmt.Sprintf(`
		<h2>Your photos are ready!</h2>
		<p>Hi %s,</p>
		<p>Your deliverables have been unlocked. View and download them here:</p>
		<p><a href="%s">%s</a></p>
	`, clientName, portalURL, portalURL)
	return s.send(clientEmail, "Your deliverables are ready", html,
		"Your deliverables are ready: "+portalURL)
}

func (s *EmailSender) SendPaymentReceived(clientEmail, clientName string, amount float64, invoiceNumber string) error {
	html := fmt.Sprintf(`
		<h2>Payment received</h2>
		<p>Hi %s,</p>
		<p>We received your payment of $%.2f for invoice %s. Thank you!</p>
	`, clientName, amount, invoiceNumber)
	return s.send(clientEmail, fmt.Sprintf("Payment received for invoice %s", invoiceNumber), html,
		fmt.Sprintf("Payment of $%.2f received for invoice %s", amount, invoiceNumber))
}

func (s *EmailSender) SendSessionReminder(clientEmail, clientName, date, startTime, location string) error {
	when := date
	if startTime != "" {
		when = date + " at " + startTime
	}
	where := ""
	if location != "" {
		where = fmt.Sprintf("<p>Location: %s</p>", location)
	}
	html := fmt.Sprintf(`
		<h2>Session reminder</h2>
		<p>Hi %s,</p>
		<p>This is a reminder of your upcoming photo session on %s.</p>
		%s
	`, clientName, when, where)
	return s.send(clientEmail, "Reminder: your photo session on "+date, html,
		"Reminder: your photo session on "+when)
}
