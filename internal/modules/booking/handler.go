package booking

import (
	"errors"
	"net/http"
	"strconv"

	"batoo/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the public quote endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/quote", h.Quote)
}

// RegisterProtectedRoutes registers the endpoints that require authentication.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/my", h.GetMyBookings)
	rg.GET("/owner/bookings", h.GetOwnerBookings)
}

// Quote handles GET /api/v1/bookings/quote?listing_id=&start_date=&end_date=&num_guests=
func (h *Handler) Quote(c *gin.Context) {
	listingID, err := strconv.ParseInt(c.Query("listing_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return
	}

	numGuests := 1
	if v := c.Query("num_guests"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			numGuests = n
		}
	}

	quote, err := h.service.Quote(c.Request.Context(), listingID, c.Query("start_date"), c.Query("end_date"), numGuests)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be in YYYY-MM-DD format")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute quote")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quote": quote})
}

// CreateBooking handles POST /api/v1/bookings (protected)
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking date range")
		case errors.Is(err, ErrUnavailable):
			response.Error(c, http.StatusConflict, "LISTING_UNAVAILABLE", "Listing is not available for booking")
		case errors.Is(err, ErrClashUnconfirmed):
			response.Error(c, http.StatusConflict, "AVAILABILITY_CLASH", "Selected dates clash with the listing's calendar; resubmit with confirm_clash to proceed")
		case errors.Is(err, ErrOverlap):
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Listing is already booked for the selected dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

// GetMyBookings handles GET /api/v1/bookings/my (protected)
func (h *Handler) GetMyBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	bookings, err := h.service.GetMyBookings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

// GetOwnerBookings handles GET /api/v1/owner/bookings (protected). It returns
// the bookings placed against any listing the caller owns.
func (h *Handler) GetOwnerBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	bookings, err := h.service.GetOwnerBookings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}
