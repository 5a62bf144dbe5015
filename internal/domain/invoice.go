package domain

import "time"

type InvoiceStatus string

const (
	InvoiceDraft         InvoiceStatus = "Draft"
	InvoiceSent          InvoiceStatus = "Sent"
	InvoicePartiallyPaid InvoiceStatus = "Partially Paid"
	InvoicePaid          InvoiceStatus = "Paid"
	InvoiceOverdue       InvoiceStatus = "Overdue"
)

// Invoice belongs to exactly one job. Balance = TotalAmount - PaidAmount and
// is maintained by the payment module on every recorded payment; nothing else
// writes it.
type Invoice struct {
	ID            string        `json:"id" gorm:"type:uuid;primaryKey"`
	AccountID     string        `json:"account_id" gorm:"index;uniqueIndex:idx_invoice_account_number"`
	JobID         string        `json:"job_id" gorm:"index"`
	InvoiceNumber string        `json:"invoice_number" gorm:"uniqueIndex:idx_invoice_account_number"`
	TotalAmount   float64       `json:"total_amount" validate:"gte=0"`
	PaidAmount    float64       `json:"paid_amount"`
	Balance       float64       `json:"balance"`
	Status        InvoiceStatus `json:"status"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	Notes         string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:InvoiceID"`
}

func (Invoice) TableName() string { return "invoices" }
