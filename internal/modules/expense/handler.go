package expense

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
	protected.POST("/expenses", h.Create)
	protected.DELETE("/expenses/:id", h.Delete)
	protected.GET("/jobs/:id/expenses", h.ListByJob)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Create(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to record expense")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"expense": e})
}

func (h *Handler) ListByJob(c *gin.Context) {
	expenses, err := h.service.ListByJob(c.Request.Context(), c.GetString("account_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load expenses")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"expenses": expenses})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("account_id"), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Expense not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete expense")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
