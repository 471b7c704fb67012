package payment

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
		bookings.POST("/payment/:bookingId", h.Pay)
		bookings.GET("/payment/:bookingId", h.GetPayment)
	}
}

func (h *Handler) Pay(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Pay(c.Request.Context(), c.GetInt64("user_id"), bookingID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidMethod):
			response.Error(c, http.StatusBadRequest, "INVALID_METHOD", "Invalid payment method")
		case errors.Is(err, ErrInvalidMobile):
			response.Error(c, http.StatusBadRequest, "INVALID_MOBILE", "Invalid mobile number format")
		case errors.Is(err, ErrInvalidPin):
			response.Error(c, http.StatusBadRequest, "INVALID_PIN", "PIN must be 4 digits")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only pay for your own bookings")
		case errors.Is(err, ErrNoPaymentRequired):
			response.Error(c, http.StatusConflict, "NO_PAYMENT_REQUIRED", "This is a free field, no payment required")
		case errors.Is(err, ErrNotPayable):
			response.Error(c, http.StatusConflict, "NOT_PAYABLE", "This booking cannot be paid")
		default:
			response.Error(c, http.StatusInternalServerError, "PAYMENT_FAILED", "Payment processing failed")
		}
		return
	}

	status := http.StatusCreated
	if result.AlreadyPaid {
		status = http.StatusOK
	}
	response.Success(c, status, gin.H{
		"payment":        result.Payment,
		"payment_method": result.MethodName,
		"already_paid":   result.AlreadyPaid,
	})
}

func (h *Handler) GetPayment(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	p, err := h.service.GetForBooking(c.Request.Context(), c.GetInt64("user_id"), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "This booking belongs to another user")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": p})
}
