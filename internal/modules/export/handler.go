package export

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
	protected.GET("/export/:entity", h.Export)
}

func (h *Handler) Export(c *gin.Context) {
	data, filename, err := h.service.Export(c.Request.Context(), c.GetString("account_id"), c.Param("entity"))
	if err != nil {
		if errors.Is(err, ErrUnknownEntity) {
			response.Error(c, http.StatusBadRequest, "UNKNOWN_ENTITY", "Export supports jobs, clients and payments")
			return
		}
		response.Error(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to export data")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
