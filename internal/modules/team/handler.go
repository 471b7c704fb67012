package team

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"turfbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("/join-team/:teamId", h.Join)
		bookings.POST("/manage-team/:teamId", h.Manage)
		bookings.GET("/manage-team/:teamId", h.PendingRequests)
	}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/fields/:id/teams", h.OpenTeams)
}

// OpenTeams lists formations still recruiting on upcoming bookings for a
// field.
func (h *Handler) OpenTeams(c *gin.Context) {
	fieldID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid field ID")
		return
	}

	teams, err := h.service.OpenTeams(c.Request.Context(), fieldID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load teams")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"teams": teams, "count": len(teams)})
}

func (h *Handler) Join(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Param("teamId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid team ID")
		return
	}

	var body JoinRequestBody
	if err := c.ShouldBindJSON(&body); err != nil && c.Request.ContentLength > 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	jr, err := h.service.Join(c.Request.Context(), c.GetInt64("user_id"), teamID, body.Message)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Team formation not found")
		case errors.Is(err, ErrOwnTeam):
			response.Error(c, http.StatusConflict, "OWN_TEAM", "You cannot join your own team")
		case errors.Is(err, ErrAlreadyRequested):
			response.Error(c, http.StatusConflict, "ALREADY_REQUESTED", "You have already sent a join request for this team")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to send join request")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"join_request": jr})
}

func (h *Handler) Manage(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Param("teamId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid team ID")
		return
	}

	var body ManageRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	jr, err := h.service.Manage(c.Request.Context(), c.GetInt64("user_id"), teamID, body)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Team formation not found")
		case errors.Is(err, ErrRequestNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Join request not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the team owner can manage requests")
		case errors.Is(err, ErrAlreadyDecided):
			response.Error(c, http.StatusConflict, "ALREADY_DECIDED", "This request has already been decided")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Action must be accept or reject")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to manage join request")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"join_request": jr})
}

func (h *Handler) PendingRequests(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Param("teamId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid team ID")
		return
	}

	requests, err := h.service.PendingRequests(c.Request.Context(), c.GetInt64("user_id"), teamID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Team formation not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the team owner can view requests")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load join requests")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"join_requests": requests})
}
