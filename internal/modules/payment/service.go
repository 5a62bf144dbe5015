package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
	"shootsuite/internal/notification"
)

type Service struct {
	payments     PaymentRepository
	invoices     InvoiceRepository
	jobs         JobReader
	deliverables DeliverableUnlocker
	notify       notifier

	checkoutBaseURL string
	checkoutSecret  string
	portalBaseURL   string
}

func NewService(
	payments PaymentRepository,
	invoices InvoiceRepository,
	jobs JobReader,
	deliverables DeliverableUnlocker,
	notify notifier,
	checkoutBaseURL, checkoutSecret, portalBaseURL string,
) *Service {
	return &Service{
		payments:        payments,
		invoices:        invoices,
		jobs:            jobs,
		deliverables:    deliverables,
		notify:          notify,
		checkoutBaseURL: checkoutBaseURL,
		checkoutSecret:  checkoutSecret,
		portalBaseURL:   portalBaseURL,
	}
}

// Record stores a manual payment and settles it against the invoice when one
// is referenced. A refund applies negatively. When the invoice reaches a zero
// balance every locked deliverable of the job is unlocked and the client is
// notified.
func (s *Service) Record(ctx context.Context, accountID string, req RecordPaymentRequest) (*domain.Payment, error) {
	if _, err := s.jobs.GetByID(ctx, accountID, req.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	var inv *domain.Invoice
	if req.InvoiceID != nil {
		var err error
		inv, err = s.invoices.GetByID(ctx, accountID, *req.InvoiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvoiceNotFound
			}
			return nil, err
		}
	}

	p := &domain.Payment{
		AccountID:     accountID,
		JobID:         req.JobID,
		InvoiceID:     req.InvoiceID,
		Amount:        req.Amount,
		Type:          domain.PaymentType(req.Type),
		Method:        domain.PaymentMethod(req.Method),
		Status:        domain.PaymentCompleted,
		Date:          req.Date,
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	if inv != nil {
		applied := req.Amount
		if p.Type == domain.PaymentRefund {
			applied = -applied
		}
		updated, err := s.invoices.ApplyPayment(ctx, inv.ID, applied)
		if err != nil {
			return nil, err
		}
		s.afterSettlement(ctx, accountID, req.JobID, updated, req.Amount)
	}

	return p, nil
}

func (s *Service) ListByJob(ctx context.Context, accountID, jobID string) ([]domain.Payment, error) {
	if _, err := s.jobs.GetByID(ctx, accountID, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return s.payments.ListByJob(ctx, jobID)
}

// CreateCheckoutSession builds a signed hosted-checkout URL for an invoice's
// outstanding balance. The signature covers session id, invoice id and
// amount, so the redirect target cannot be tampered with.
func (s *Service) CreateCheckoutSession(ctx context.Context, accountID string, req CheckoutSessionRequest) (*CheckoutSessionResponse, error) {
	inv, err := s.invoices.GetByID(ctx, accountID, req.InvoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	if inv.Balance <= 0 {
		return nil, ErrNothingDue
	}

	sessionID := uuid.NewString()
	amount := strconv.FormatFloat(inv.Balance, 'f', 2, 64)

	u := url.Values{}
	u.Set("session_id", sessionID)
	u.Set("invoice_id", inv.ID)
	u.Set("amount", amount)
	u.Set("signature", s.signCheckout(sessionID, inv.ID, amount))

	return &CheckoutSessionResponse{
		SessionID:   sessionID,
		CheckoutURL: s.checkoutBaseURL + "?" + u.Encode(),
		Amount:      inv.Balance,
	}, nil
}

// HandleWebhook settles a provider-confirmed payment. Retries are idempotent
// on the transaction id: a replay records nothing and reports success.
func (s *Service) HandleWebhook(ctx context.Context, payload WebhookPayload) error {
	if payload.EventType != "checkout.completed" {
		return ErrUnknownEvent
	}

	seen, err := s.payments.ExistsTransaction(ctx, payload.TransactionID)
	if err != nil {
		return err
	}
	if seen {
		return nil
	}

	inv, err := s.invoices.GetBare(ctx, payload.InvoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvoiceNotFound
		}
		return err
	}

	p := &domain.Payment{
		AccountID:     inv.AccountID,
		JobID:         inv.JobID,
		InvoiceID:     &inv.ID,
		Amount:        payload.Amount,
		Type:          domain.PaymentFinal,
		Method:        domain.MethodStripe,
		Status:        domain.PaymentCompleted,
		Date:          time.Now().Format("2006-01-02"),
		TransactionID: payload.TransactionID,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return err
	}

	updated, err := s.invoices.ApplyPayment(ctx, inv.ID, payload.Amount)
	if err != nil {
		return err
	}
	s.afterSettlement(ctx, inv.AccountID, inv.JobID, updated, payload.Amount)
	return nil
}

// afterSettlement runs the unlock and notification fan-out once an invoice
// payment has been applied. The unlock is part of the payment transition and
// always runs on a fully paid invoice; only the notifications are best effort.
func (s *Service) afterSettlement(ctx context.Context, accountID, jobID string, inv *domain.Invoice, amount float64) {
	var unlocked []domain.Deliverable
	if inv.Status == domain.InvoicePaid {
		var err error
		unlocked, err = s.deliverables.UnlockAllForJob(ctx, jobID)
		if err != nil {
			log.Printf("unlock_failed job=%s err=%v", jobID, err)
		}
	}

	if s.notify == nil {
		return
	}

	var clientEmail, clientName string
	if job, err := s.jobs.GetForPortal(ctx, jobID); err == nil && job.Client != nil {
		clientEmail = job.Client.Email
		clientName = job.Client.Name
	}

	s.notify.PaymentReceived(ctx, accountID, clientEmail, clientName, amount, inv.InvoiceNumber)

	if inv.Status != domain.InvoicePaid {
		return
	}

	s.notify.JobEvent(accountID, notification.EventInvoicePaid, map[string]any{
		"invoice_id":     inv.ID,
		"invoice_number": inv.InvoiceNumber,
	})

	if len(unlocked) == 0 {
		return
	}
	portalURL := fmt.Sprintf("%s/%s", s.portalBaseURL, jobID)
	s.notify.DeliverableReady(ctx, accountID, clientEmail, clientName, portalURL)
}

func (s *Service) signCheckout(sessionID, invoiceID, amount string) string {
	mac := hmac.New(sha256.New, []byte(s.checkoutSecret))
	fmt.Fprintf(mac, "%s:%s:%s", sessionID, invoiceID, amount)
	return hex.EncodeToString(mac.Sum(nil))
}
