package payment

import (
	"context"

	"shootsuite/internal/domain"
	"shootsuite/internal/notification"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListByJob(ctx context.Context, jobID string) ([]domain.Payment, error)
	ExistsTransaction(ctx context.Context, transactionID string) (bool, error)
}

type InvoiceRepository interface {
	GetByID(ctx context.Context, accountID, id string) (*domain.Invoice, error)
	GetBare(ctx context.Context, id string) (*domain.Invoice, error)
	ApplyPayment(ctx context.Context, id string, amount float64) (*domain.Invoice, error)
}

type JobReader interface {
	GetByID(ctx context.Context, accountID, id string) (*domain.Job, error)
	GetForPortal(ctx context.Context, id string) (*domain.Job, error)
}

type DeliverableUnlocker interface {
	UnlockAllForJob(ctx context.Context, jobID string) ([]domain.Deliverable, error)
}

type notifier interface {
	PaymentReceived(ctx context.Context, accountID, clientEmail, clientName string, amount float64, invoiceNumber string)
	DeliverableReady(ctx context.Context, accountID, clientEmail, clientName, portalURL string)
	JobEvent(accountID string, t notification.EventType, data map[string]any)
}
