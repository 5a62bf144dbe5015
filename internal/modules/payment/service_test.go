package payment

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shootsuite/internal/domain"
	"shootsuite/internal/notification"
)

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPaymentRepo) ListByJob(ctx context.Context, jobID string) ([]domain.Payment, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *mockPaymentRepo) ExistsTransaction(ctx context.Context, transactionID string) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

type mockInvoiceRepo struct {
	mock.Mock
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, accountID, id string) (*domain.Invoice, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) GetBare(ctx context.Context, id string) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) ApplyPayment(ctx context.Context, id string, amount float64) (*domain.Invoice, error) {
	args := m.Called(ctx, id, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

type mockJobReader struct {
	mock.Mock
}

func (m *mockJobReader) GetByID(ctx context.Context, accountID, id string) (*domain.Job, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *mockJobReader) GetForPortal(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

type mockUnlocker struct {
	mock.Mock
}

func (m *mockUnlocker) UnlockAllForJob(ctx context.Context, jobID string) ([]domain.Deliverable, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deliverable), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) PaymentReceived(ctx context.Context, accountID, clientEmail, clientName string, amount float64, invoiceNumber string) {
	m.Called(accountID, clientEmail, clientName, amount, invoiceNumber)
}

func (m *mockNotifier) DeliverableReady(ctx context.Context, accountID, clientEmail, clientName, portalURL string) {
	m.Called(accountID, clientEmail, clientName, portalURL)
}

func (m *mockNotifier) JobEvent(accountID string, t notification.EventType, data map[string]any) {
	m.Called(accountID, t, data)
}

func newTestService(payments *mockPaymentRepo, invoices *mockInvoiceRepo, jobs *mockJobReader, unlocker *mockUnlocker, notify *mockNotifier) *Service {
	var n notifier
	if notify != nil {
		n = notify
	}
	return NewService(payments, invoices, jobs, unlocker, n,
		"https://checkout.example.com/session", "hook-secret", "http://localhost:3000/p")
}

func TestService_Webhook_FullPaymentUnlocksDeliverables(t *testing.T) {
	payments := new(mockPaymentRepo)
	invoices := new(mockInvoiceRepo)
	jobs := new(mockJobReader)
	unlocker := new(mockUnlocker)
	notify := new(mockNotifier)
	svc := newTestService(payments, invoices, jobs, unlocker, notify)

	payments.On("ExistsTransaction", mock.Anything, "txn-1").Return(false, nil)
	invoices.On("GetBare", mock.Anything, "inv-1").Return(&domain.Invoice{
		ID:            "inv-1",
		AccountID:     "acc-1",
		JobID:         "job-1",
		InvoiceNumber: "INV-2026-0001",
		TotalAmount:   500,
		Balance:       500,
		Status:        domain.InvoiceSent,
	}, nil)
	payments.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Amount == 500 && p.Method == domain.MethodStripe && p.TransactionID == "txn-1"
	})).Return(nil)
	invoices.On("ApplyPayment", mock.Anything, "inv-1", 500.0).Return(&domain.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-2026-0001",
		TotalAmount:   500,
		PaidAmount:    500,
		Balance:       0,
		Status:        domain.InvoicePaid,
	}, nil)
	jobs.On("GetForPortal", mock.Anything, "job-1").Return(&domain.Job{
		ID:     "job-1",
		Client: &domain.Client{Name: "Anna", Email: "anna@example.com"},
	}, nil)
	notify.On("PaymentReceived", "acc-1", "anna@example.com", "Anna", 500.0, "INV-2026-0001").Return()
	notify.On("JobEvent", "acc-1", notification.EventInvoicePaid, mock.Anything).Return()
	unlocker.On("UnlockAllForJob", mock.Anything, "job-1").Return([]domain.Deliverable{
		{ID: "del-1", Locked: false},
	}, nil)
	notify.On("DeliverableReady", "acc-1", "anna@example.com", "Anna", "http://localhost:3000/p/job-1").Return()

	err := svc.HandleWebhook(context.Background(), WebhookPayload{
		EventType:     "checkout.completed",
		TransactionID: "txn-1",
		InvoiceID:     "inv-1",
		Amount:        500,
	})

	assert.NoError(t, err)
	payments.AssertExpectations(t)
	invoices.AssertExpectations(t)
	unlocker.AssertExpectations(t)
	notify.AssertExpectations(t)
}

func TestService_Webhook_UnlocksWithoutNotifier(t *testing.T) {
	payments := new(mockPaymentRepo)
	invoices := new(mockInvoiceRepo)
	jobs := new(mockJobReader)
	unlocker := new(mockUnlocker)
	svc := newTestService(payments, invoices, jobs, unlocker, nil)

	payments.On("ExistsTransaction", mock.Anything, "txn-3").Return(false, nil)
	invoices.On("GetBare", mock.Anything, "inv-1").Return(&domain.Invoice{
		ID:        "inv-1",
		AccountID: "acc-1",
		JobID:     "job-1",
		Balance:   500,
		Status:    domain.InvoiceSent,
	}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	invoices.On("ApplyPayment", mock.Anything, "inv-1", 500.0).Return(&domain.Invoice{
		ID:         "inv-1",
		PaidAmount: 500,
		Balance:    0,
		Status:     domain.InvoicePaid,
	}, nil)
	unlocker.On("UnlockAllForJob", mock.Anything, "job-1").Return([]domain.Deliverable{
		{ID: "del-1", Locked: false},
	}, nil)

	err := svc.HandleWebhook(context.Background(), WebhookPayload{
		EventType:     "checkout.completed",
		TransactionID: "txn-3",
		InvoiceID:     "inv-1",
		Amount:        500,
	})

	assert.NoError(t, err)
	unlocker.AssertCalled(t, "UnlockAllForJob", mock.Anything, "job-1")
}

func TestService_Webhook_ReplayIsIdempotent(t *testing.T) {
	payments := new(mockPaymentRepo)
	svc := newTestService(payments, new(mockInvoiceRepo), new(mockJobReader), new(mockUnlocker), nil)

	payments.On("ExistsTransaction", mock.Anything, "txn-1").Return(true, nil)

	err := svc.HandleWebhook(context.Background(), WebhookPayload{
		EventType:     "checkout.completed",
		TransactionID: "txn-1",
		InvoiceID:     "inv-1",
		Amount:        500,
	})

	assert.NoError(t, err)
	payments.AssertNotCalled(t, "Create")
}

func TestService_Webhook_PartialPaymentDoesNotUnlock(t *testing.T) {
	payments := new(mockPaymentRepo)
	invoices := new(mockInvoiceRepo)
	jobs := new(mockJobReader)
	unlocker := new(mockUnlocker)
	notify := new(mockNotifier)
	svc := newTestService(payments, invoices, jobs, unlocker, notify)

	payments.On("ExistsTransaction", mock.Anything, "txn-2").Return(false, nil)
	invoices.On("GetBare", mock.Anything, "inv-1").Return(&domain.Invoice{
		ID:        "inv-1",
		AccountID: "acc-1",
		JobID:     "job-1",
		Balance:   500,
		Status:    domain.InvoiceSent,
	}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	invoices.On("ApplyPayment", mock.Anything, "inv-1", 200.0).Return(&domain.Invoice{
		ID:         "inv-1",
		PaidAmount: 200,
		Balance:    300,
		Status:     domain.InvoicePartiallyPaid,
	}, nil)
	jobs.On("GetForPortal", mock.Anything, "job-1").Return(&domain.Job{ID: "job-1"}, nil)
	notify.On("PaymentReceived", "acc-1", "", "", 200.0, "").Return()

	err := svc.HandleWebhook(context.Background(), WebhookPayload{
		EventType:     "checkout.completed",
		TransactionID: "txn-2",
		InvoiceID:     "inv-1",
		Amount:        200,
	})

	assert.NoError(t, err)
	unlocker.AssertNotCalled(t, "UnlockAllForJob")
	notify.AssertNotCalled(t, "DeliverableReady")
}

func TestService_Record_RefundAppliesNegatively(t *testing.T) {
	payments := new(mockPaymentRepo)
	invoices := new(mockInvoiceRepo)
	jobs := new(mockJobReader)
	notify := new(mockNotifier)
	svc := newTestService(payments, invoices, jobs, new(mockUnlocker), notify)

	invoiceID := "inv-1"
	jobs.On("GetByID", mock.Anything, "acc-1", "job-1").Return(&domain.Job{ID: "job-1"}, nil)
	invoices.On("GetByID", mock.Anything, "acc-1", "inv-1").Return(&domain.Invoice{
		ID: "inv-1", AccountID: "acc-1", JobID: "job-1",
	}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	invoices.On("ApplyPayment", mock.Anything, "inv-1", -100.0).Return(&domain.Invoice{
		ID:      "inv-1",
		Balance: 100,
		Status:  domain.InvoicePartiallyPaid,
	}, nil)
	jobs.On("GetForPortal", mock.Anything, "job-1").Return(&domain.Job{ID: "job-1"}, nil)
	notify.On("PaymentReceived", "acc-1", "", "", 100.0, "").Return()

	p, err := svc.Record(context.Background(), "acc-1", RecordPaymentRequest{
		JobID:     "job-1",
		InvoiceID: &invoiceID,
		Amount:    100,
		Type:      string(domain.PaymentRefund),
		Method:    string(domain.MethodCash),
		Date:      "2026-09-12",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentRefund, p.Type)
	invoices.AssertExpectations(t)
}

func TestService_CreateCheckoutSession_SignedURL(t *testing.T) {
	invoices := new(mockInvoiceRepo)
	svc := newTestService(new(mockPaymentRepo), invoices, new(mockJobReader), new(mockUnlocker), nil)

	invoices.On("GetByID", mock.Anything, "acc-1", "inv-1").Return(&domain.Invoice{
		ID:      "inv-1",
		Balance: 350,
	}, nil)

	session, err := svc.CreateCheckoutSession(context.Background(), "acc-1", CheckoutSessionRequest{
		InvoiceID: "inv-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, 350.0, session.Amount)
	assert.True(t, strings.HasPrefix(session.CheckoutURL, "https://checkout.example.com/session?"))

	parsed, err := url.Parse(session.CheckoutURL)
	assert.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "inv-1", q.Get("invoice_id"))
	assert.Equal(t, "350.00", q.Get("amount"))
	assert.Equal(t, svc.signCheckout(q.Get("session_id"), "inv-1", "350.00"), q.Get("signature"))
}

func TestService_CreateCheckoutSession_NothingDue(t *testing.T) {
	invoices := new(mockInvoiceRepo)
	svc := newTestService(new(mockPaymentRepo), invoices, new(mockJobReader), new(mockUnlocker), nil)

	invoices.On("GetByID", mock.Anything, "acc-1", "inv-1").Return(&domain.Invoice{
		ID:      "inv-1",
		Balance: 0,
		Status:  domain.InvoicePaid,
	}, nil)

	_, err := svc.CreateCheckoutSession(context.Background(), "acc-1", CheckoutSessionRequest{
		InvoiceID: "inv-1",
	})

	assert.ErrorIs(t, err, ErrNothingDue)
}

func TestService_Webhook_UnknownEventIgnored(t *testing.T) {
	svc := newTestService(new(mockPaymentRepo), new(mockInvoiceRepo), new(mockJobReader), new(mockUnlocker), nil)

	err := svc.HandleWebhook(context.Background(), WebhookPayload{
		EventType:     "checkout.expired",
		TransactionID: "txn-9",
		InvoiceID:     "inv-1",
		Amount:        1,
	})

	assert.ErrorIs(t, err, ErrUnknownEvent)
}
