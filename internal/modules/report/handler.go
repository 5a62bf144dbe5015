package report

import (
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
	protected.GET("/reports/finance", h.Finance)
}

func (h *Handler) Finance(c *gin.Context) {
	var q FinanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from and to dates are required")
		return
	}

	summary, err := h.service.Finance(c.Request.Context(), c.GetString("account_id"), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REPORT_FAILED", "Failed to build finance report")
		return
	}

	response.Success(c, http.StatusOK, summary)
}
