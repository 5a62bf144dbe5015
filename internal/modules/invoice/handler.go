package invoice

import (
	"errors"
	"fmt"
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
	group := protected.Group("/invoices")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.GET("/:id/pdf", h.DownloadPDF)
		group.PATCH("/:id/status", h.UpdateStatus)
	}

	protected.GET("/jobs/:id/invoices", h.ListByJob)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	inv, err := h.service.Create(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create invoice")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"invoice": inv})
}

func (h *Handler) List(c *gin.Context) {
	var q ListInvoicesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	invoices, err := h.service.List(c.Request.Context(), c.GetString("account_id"), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load invoices")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"invoices": invoices})
}

func (h *Handler) ListByJob(c *gin.Context) {
	invoices, err := h.service.ListByJob(c.Request.Context(), c.GetString("account_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load invoices")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"invoices": invoices})
}

func (h *Handler) Get(c *gin.Context) {
	inv, err := h.service.Get(c.Request.Context(), c.GetString("account_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load invoice")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"invoice": inv})
}

func (h *Handler) DownloadPDF(c *gin.Context) {
	pdf, inv, err := h.service.RenderPDF(c.Request.Context(), c.GetString("account_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PDF_FAILED", "Failed to render invoice")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", inv.InvoiceNumber))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	inv, err := h.service.UpdateStatus(c.Request.Context(), c.GetString("account_id"), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Paid statuses are derived from payments")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update invoice")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"invoice": inv})
}
