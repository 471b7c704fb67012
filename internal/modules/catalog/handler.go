package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"turfbook/internal/pkg/response"
	"turfbook/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	fields := rg.Group("/fields")
	{
		fields.GET("", h.List)
		fields.GET("/search", h.Search)
		fields.GET("/search/advanced", h.AdvancedSearch)
		fields.GET("/:id", h.Detail)
	}
}

func (h *Handler) RegisterOwnerRoutes(rg *gin.RouterGroup) {
	fields := rg.Group("/fields")
	{
		fields.GET("", h.MyFields)
		fields.POST("", h.CreateField)
		fields.PUT("/:id", h.UpdateField)
		fields.DELETE("/:id", h.DeactivateField)
		fields.GET("/:id/slots", h.ListSlots)
		fields.PUT("/:id/slots/:slotId", h.SetSlotAvailability)
		fields.GET("/:id/bookings", h.FieldBookings)
	}
}

func (h *Handler) List(c *gin.Context) {
	filter := repository.FieldFilter{
		FieldType:    c.Query("field_type"),
		Availability: c.Query("availability_type"),
		WomenOnly:    c.Query("women_only") == "true",
		Location:     c.Query("location"),
	}

	fields, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load fields")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"fields": fields, "count": len(fields)})
}

func (h *Handler) Search(c *gin.Context) {
	fields, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Search failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"fields": fields, "count": len(fields)})
}

func (h *Handler) AdvancedSearch(c *gin.Context) {
	filter := repository.AdvancedFilter{
		FieldFilter: repository.FieldFilter{
			FieldType:    c.Query("field_type"),
			Availability: c.Query("availability_type"),
			WomenOnly:    c.Query("women_only") == "true",
			Location:     c.Query("location"),
		},
		Amenity:       c.Query("amenity"),
		AvailableDate: c.Query("date"),
		AvailableTime: c.Query("time"),
		SortBy:        c.Query("sort_by"),
	}

	if v := c.Query("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "min_price must be a number")
			return
		}
		filter.MinPrice = &p
	}
	if v := c.Query("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "max_price must be a number")
			return
		}
		filter.MaxPrice = &p
	}
	if v := c.Query("min_rating"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "min_rating must be a number")
			return
		}
		filter.MinRating = &r
	}
	if v := c.Query("min_capacity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "min_capacity must be a number")
			return
		}
		filter.MinCapacity = &n
	}

	fields, err := h.service.AdvancedSearch(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Search failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"fields": fields, "count": len(fields)})
}

func (h *Handler) Detail(c *gin.Context) {
	fieldID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid field ID")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), fieldID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Field not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load field")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) CreateField(c *gin.Context) {
	var req CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field data")
		return
	}

	field, err := h.service.CreateField(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field type, availability or price")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create field")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"field": field})
}

func (h *Handler) UpdateField(c *gin.Context) {
	fieldID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid field ID")
		return
	}

	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field data")
		return
	}

	field, err := h.service.UpdateField(c.Request.Context(), c.GetInt64("user_id"), fieldID, req)
	if err != nil {
		h.ownerError(c, err, "Failed to update field")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"field": field})
}

func (h *Handler) DeactivateField(c *gin.Context) {
	fieldID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid field ID")
		return
	}

	if err := h.service.DeactivateField(c.Request.Context(), c.GetInt64("user_id"), fieldID); err != nil {
		h.ownerError(c, err, "Failed to deactivate field")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *Handler) MyFields(c *gin.Context) {
	fields, err := h.service.MyFields(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load fields")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"fields": fields, "count": len(fields)})
}

func (h *Handler) ListSlots(c *gin.Context) {
	fieldID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid field ID")
		return
	}

	slots, err := h.service.ListSlots(c.Request.Context(), c.GetInt64("user_id"), fieldID)
	if err != nil {
		h.ownerError(c, err, "Failed to load time slots")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"time_slots": slots})
}

func (h *Handler) SetSlotAvailability(c *gin.Context) {
	fieldID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid field ID")
		return
	}
	slotID, err := strconv.ParseInt(c.Param("slotId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid slot ID")
		return
	}

	var req SlotAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAvailable == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "is_available is required")
		return
	}

	if err := h.service.SetSlotAvailability(c.Request.Context(), c.GetInt64("user_id"), fieldID, slotID, *req.IsAvailable); err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Time slot not found")
			return
		}
		h.ownerError(c, err, "Failed to update time slot")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) FieldBookings(c *gin.Context) {
	fieldID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid field ID")
		return
	}

	bookings, err := h.service.FieldBookings(c.Request.Context(), c.GetInt64("user_id"), fieldID)
	if err != nil {
		h.ownerError(c, err, "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) ownerError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Field not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "This field belongs to another owner")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
