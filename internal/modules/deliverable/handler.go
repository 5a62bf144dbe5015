package deliverable

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
	group := protected.Group("/deliverables")
	{
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.PATCH("/:id/lock", h.ToggleLock)
		group.DELETE("/:id", h.Delete)
	}

	protected.GET("/jobs/:id/deliverables", h.ListByJob)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.Create(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create deliverable")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"deliverable": d})
}

func (h *Handler) ListByJob(c *gin.Context) {
	list, err := h.service.ListByJob(c.Request.Context(), c.GetString("account_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load deliverables")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deliverables": list})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.Update(c.Request.Context(), c.GetString("account_id"), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Deliverable not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update deliverable")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deliverable": d})
}

func (h *Handler) ToggleLock(c *gin.Context) {
	var req ToggleLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.ToggleLock(c.Request.Context(), c.GetString("account_id"), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Deliverable not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to toggle lock")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deliverable": d})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("account_id"), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Deliverable not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete deliverable")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
