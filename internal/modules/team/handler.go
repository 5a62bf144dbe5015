package team

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
	group := protected.Group("/team")
	{
		group.POST("/members", h.CreateMember)
		group.GET("/members", h.ListMembers)
		group.PUT("/members/:id", h.UpdateMember)
		group.DELETE("/members/:id", h.DeleteMember)
	}

	jobs := protected.Group("/jobs/:id/assignments")
	{
		jobs.GET("", h.ListAssignments)
		jobs.POST("", h.Assign)
		jobs.DELETE("/:memberID", h.Unassign)
	}
}

func (h *Handler) CreateMember(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	member, err := h.service.CreateMember(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		h.writeError(c, err, "CREATE_FAILED", "Failed to create team member")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"member": member})
}

func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.service.ListMembers(c.Request.Context(), c.GetString("account_id"))
	if err != nil {
		h.writeError(c, err, "FETCH_FAILED", "Failed to load team members")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"members": members})
}

func (h *Handler) UpdateMember(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	member, err := h.service.UpdateMember(c.Request.Context(), c.GetString("account_id"), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err, "UPDATE_FAILED", "Failed to update team member")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"member": member})
}

func (h *Handler) DeleteMember(c *gin.Context) {
	if err := h.service.DeleteMember(c.Request.Context(), c.GetString("account_id"), c.Param("id")); err != nil {
		h.writeError(c, err, "DELETE_FAILED", "Failed to delete team member")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	assignment, err := h.service.Assign(c.Request.Context(), c.GetString("account_id"), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrAlreadyAssigned) {
			response.Error(c, http.StatusConflict, "ALREADY_ASSIGNED", "Member is already assigned to this job")
			return
		}
		h.writeError(c, err, "ASSIGN_FAILED", "Failed to assign team member")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"assignment": assignment})
}

func (h *Handler) Unassign(c *gin.Context) {
	err := h.service.Unassign(c.Request.Context(), c.GetString("account_id"), c.Param("id"), c.Param("memberID"))
	if err != nil {
		h.writeError(c, err, "UNASSIGN_FAILED", "Failed to remove assignment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListAssignments(c *gin.Context) {
	assignments, err := h.service.ListAssignments(c.Request.Context(), c.GetString("account_id"), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "FETCH_FAILED", "Failed to load assignments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assignments": assignments})
}

func (h *Handler) writeError(c *gin.Context, err error, code, msg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, ErrCompanyOnly):
		response.Error(c, http.StatusForbidden, "COMPANY_ONLY", "Team management requires a company account")
	default:
		response.Error(c, http.StatusInternalServerError, code, msg)
	}
}
