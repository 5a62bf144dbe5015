package portal

import "shootsuite/internal/modules/deliverable"

type UnlockRequest struct {
	Password string `json:"password" binding:"required"`
}

type UnlockResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// View is everything the client-facing portal page shows for one job.
type View struct {
	Job          JobSummary        `json:"job"`
	Invoices     InvoiceSummary    `json:"invoices"`
	Deliverables []DeliverableView `json:"deliverables"`
}

type JobSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title,omitempty"`
	ClientName string `json:"client_name,omitempty"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Location   string `json:"location,omitempty"`
}

type InvoiceSummary struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
	Balance     float64 `json:"balance"`
	IsPaid      bool    `json:"is_paid"`
}

// DeliverableView exposes the URL only when the gate allows it.
type DeliverableView struct {
	ID       string               `json:"id"`
	Title    string               `json:"title,omitempty"`
	URL      string               `json:"url,omitempty"`
	Decision deliverable.Decision `json:"access"`
}
