package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shootsuite/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/payments")
	{
		group.POST("", h.Record)
		group.POST("/checkout-session", h.CreateCheckoutSession)
	}

	protected.GET("/jobs/:id/payments", h.ListByJob)
}

// RegisterWebhookRoutes goes on a public group wrapped by the signature
// middleware; there is no bearer token on provider callbacks.
func (h *Handler) RegisterWebhookRoutes(webhooks *gin.RouterGroup) {
	webhooks.POST("/payment", h.HandleWebhook)
}

func (h *Handler) Record(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Record(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrJobNotFound), errors.Is(err, ErrInvoiceNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job or invoice not found")
		default:
			response.Error(c, http.StatusInternalServerError, "RECORD_FAILED", "Failed to record payment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"payment": p})
}

func (h *Handler) ListByJob(c *gin.Context) {
	payments, err := h.service.ListByJob(c.Request.Context(), c.GetString("account_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load payments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}

func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	var req CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	session, err := h.service.CreateCheckoutSession(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvoiceNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		case errors.Is(err, ErrNothingDue):
			response.Error(c, http.StatusConflict, "NOTHING_DUE", "Invoice has no outstanding balance")
		default:
			response.Error(c, http.StatusInternalServerError, "CHECKOUT_FAILED", "Failed to create checkout session")
		}
		return
	}

	response.Success(c, http.StatusCreated, session)
}

func (h *Handler) HandleWebhook(c *gin.Context) {
	var payload WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid webhook payload")
		return
	}

	if err := h.service.HandleWebhook(c.Request.Context(), payload); err != nil {
		switch {
		case errors.Is(err, ErrUnknownEvent):
			// acknowledged so the provider stops retrying
			response.Success(c, http.StatusOK, gin.H{"ignored": true})
		case errors.Is(err, ErrInvoiceNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		default:
			response.Error(c, http.StatusInternalServerError, "WEBHOOK_FAILED", "Failed to process webhook")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"processed": true})
}
