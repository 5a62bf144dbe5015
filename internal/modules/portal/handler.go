package portal

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shootsuite/internal/pkg/response"
)

// UnlockHeader carries the portal unlock token on page requests.
const UnlockHeader = "X-Portal-Unlock"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the portal outside the authenticated API surface.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	group := r.Group("/p")
	{
		group.GET("/:jobID", h.View)
		group.POST("/:jobID/unlock", h.Unlock)
	}
}

func (h *Handler) View(c *gin.Context) {
	view, err := h.service.View(c.Request.Context(), c.Param("jobID"), c.GetHeader(UnlockHeader))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Portal page not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load portal page")
		return
	}

	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Unlock(c *gin.Context) {
	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Password is required")
		return
	}

	result, err := h.service.Unlock(c.Request.Context(), c.Param("jobID"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Portal page not found")
		case errors.Is(err, ErrWrongPassword):
			response.Error(c, http.StatusUnauthorized, "WRONG_PASSWORD", "The password is incorrect")
		default:
			response.Error(c, http.StatusInternalServerError, "UNLOCK_FAILED", "Failed to unlock")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}
