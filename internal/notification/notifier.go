package notification

import (
	"context"
	"log"
)

// Notifier fans a domain event out to email and the dashboard hub. Every
// delivery is best effort: failures are logged and never propagate to the
// operation that triggered them.
type Notifier struct {
	email *EmailSender
	hub   *Hub
}

func NewNotifier(email *EmailSender, hub *Hub) *Notifier {
	return &Notifier{email: email, hub: hub}
}

func (n *Notifier) Hub() *Hub { return n.hub }

func (n *Notifier) DeliverableReady(ctx context.Context, accountID, clientEmail, clientName, portalURL string) {
	if clientEmail != "" {
		if err := n.email.SendDeliverableReady(clientEmail, clientName, portalURL); err != nil {
			log.Printf("notify_failed kind=deliverable_ready to=%s err=%v", clientEmail, err)
		}
	}
	if n.hub != nil {
		n.hub.Publish(accountID, EventDeliverableUnlocked, map[string]any{"portal_url": portalURL})
	}
}

func (n *Notifier) PaymentReceived(ctx context.Context, accountID, clientEmail, clientName string, amount float64, invoiceNumber string) {
	if clientEmail != "" {
		if err := n.email.SendPaymentReceived(clientEmail, clientName, amount, invoiceNumber); err != nil {
			log.Printf("notify_failed kind=payment_received to=%s err=%v", clientEmail, err)
		}
	}
	if n.hub != nil {
		n.hub.Publish(accountID, EventPaymentRecorded, map[string]any{
			"amount":         amount,
			"invoice_number": invoiceNumber,
		})
	}
}

func (n *Notifier) JobEvent(accountID string, t EventType, data map[string]any) {
	if n.hub != nil {
		n.hub.Publish(accountID, t, data)
	}
}
