package payment

type RecordPaymentRequest struct {
	JobID         string  `json:"job_id" binding:"required"`
	InvoiceID     *string `json:"invoice_id"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Type          string  `json:"type" binding:"required,oneof=Deposit Final Refund"`
	Method        string  `json:"method" binding:"required,oneof=Stripe PayPal Cash Check 'Bank Transfer'"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	TransactionID string  `json:"transaction_id"`
	Notes         string  `json:"notes"`
}

type CheckoutSessionRequest struct {
	InvoiceID string `json:"invoice_id" binding:"required"`
}

type CheckoutSessionResponse struct {
	SessionID   string  `json:"session_id"`
	CheckoutURL string  `json:"checkout_url"`
	Amount      float64 `json:"amount"`
}

// WebhookPayload is what the payment provider posts back after checkout. The
// raw request is authenticated by the signature middleware before it reaches
// the handler.
type WebhookPayload struct {
	EventType     string  `json:"event_type" binding:"required"`
	TransactionID string  `json:"transaction_id" binding:"required"`
	InvoiceID     string  `json:"invoice_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
}
