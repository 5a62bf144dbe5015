package job

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
	group := protected.Group("/jobs")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/calendar", h.Calendar)
		group.POST("/check-conflict", h.CheckConflict)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.PATCH("/:id/status", h.UpdateStatus)
		group.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingConflict):
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "The booking conflicts with an existing job")
		case errors.Is(err, ErrInvalidTimeRange):
			response.Error(c, http.StatusBadRequest, "INVALID_TIME_RANGE", "Start time must be before end time")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create job")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"job": created})
}

func (h *Handler) List(c *gin.Context) {
	var q ListJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	jobs, err := h.service.List(c.Request.Context(), c.GetString("account_id"), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load jobs")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"jobs": jobs})
}

func (h *Handler) Calendar(c *gin.Context) {
	var q CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from and to dates are required")
		return
	}

	cal, err := h.service.Calendar(c.Request.Context(), c.GetString("account_id"), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load calendar")
		return
	}

	response.Success(c, http.StatusOK, cal)
}

func (h *Handler) CheckConflict(c *gin.Context) {
	var req CheckConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.CheckConflict(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CHECK_FAILED", "Failed to check for conflicts")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	found, err := h.service.Get(c.Request.Context(), c.GetString("account_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load job")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": found})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.GetString("account_id"), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
		case errors.Is(err, ErrBookingConflict):
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "The booking conflicts with an existing job")
		case errors.Is(err, ErrInvalidTimeRange):
			response.Error(c, http.StatusBadRequest, "INVALID_TIME_RANGE", "Start time must be before end time")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update job")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": updated})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), c.GetString("account_id"), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown job status")
		case errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusConflict, "TERMINAL_STATUS", "Completed or cancelled jobs cannot change status")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": updated})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("account_id"), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete job")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
