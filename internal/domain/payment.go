package domain

import "time"

type PaymentType string

const (
	PaymentDeposit PaymentType = "Deposit"
	PaymentFinal   PaymentType = "Final"
	PaymentRefund  PaymentType = "Refund"
)

type PaymentMethod string

const (
	MethodStripe       PaymentMethod = "Stripe"
	MethodPayPal       PaymentMethod = "PayPal"
	MethodCash         PaymentMethod = "Cash"
	MethodCheck        PaymentMethod = "Check"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
)

type PaymentState string

const (
	PaymentCompleted PaymentState = "Completed"
	PaymentFailed    PaymentState = "Failed"
)

type Payment struct {
	ID            string        `json:"id" gorm:"type:uuid;primaryKey"`
	AccountID     string        `json:"account_id" gorm:"index"`
	JobID         string        `json:"job_id" gorm:"index"`
	InvoiceID     *string       `json:"invoice_id,omitempty" gorm:"type:uuid;index"`
	Amount        float64       `json:"amount" validate:"gt=0"`
	Type          PaymentType   `json:"type"`
	Method        PaymentMethod `json:"method"`
	Status        PaymentState  `json:"status"`
	Date          string        `json:"date" validate:"required,datetime=2006-01-02"`
	TransactionID string        `json:"transaction_id,omitempty" gorm:"index"`
	Notes         string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time     `json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
