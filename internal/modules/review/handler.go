package review

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

// RegisterRoutes registers the public review routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/listings/:id/reviews", h.ListByListing)
	rg.GET("/listings/:id/reviews/summary", h.GetSummary)
}

// RegisterProtectedRoutes registers the review-writing route.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/listings/:id/reviews", h.Create)
}

// Create handles POST /api/v1/listings/:id/reviews (protected)
func (h *Handler) Create(c *gin.Context) {
	listingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	r, err := h.service.Create(c.Request.Context(), userID, listingID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusBadRequest, "INVALID_RATING", "Rating must be between 1 and 5")
		case errors.Is(err, ErrListingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": r})
}

// ListByListing handles GET /api/v1/listings/:id/reviews
func (h *Handler) ListByListing(c *gin.Context) {
	listingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return
	}

	reviews, err := h.service.ListByListing(c.Request.Context(), listingID)
	if err != nil {
		if errors.Is(err, ErrListingNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

// GetSummary handles GET /api/v1/listings/:id/reviews/summary
func (h *Handler) GetSummary(c *gin.Context) {
	listingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return
	}

	summary, err := h.service.GetSummary(c.Request.Context(), listingID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get review summary")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}
