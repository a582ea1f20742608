package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentadmin/internal/errors"
	"rentadmin/internal/models"
	"rentadmin/internal/pagination"
	"rentadmin/internal/services"
)

// ListingHandler handles listing-related requests
type ListingHandler struct {
	listingService services.ListingServicer
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(listingService services.ListingServicer) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// UpdateListingRequest represents the request payload for editing a listing.
// All mutable fields are overwritten at once.
type UpdateListingRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Brand       string  `json:"brand" binding:"required"`
	Model       string  `json:"model" binding:"required"`
	Year        int     `json:"year" binding:"required"`
	PricePerDay float64 `json:"price_per_day" binding:"required"`
	Location    string  `json:"location" binding:"required"`
}

// ChangeStatusRequest represents the request payload for a status transition
type ChangeStatusRequest struct {
	Status models.ListingStatus `json:"status" binding:"required,listing_status"`
}

// ListingResponse represents a listing in the response
type ListingResponse struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Brand       string               `json:"brand"`
	Model       string               `json:"model"`
	Year        int                  `json:"year"`
	PricePerDay float64              `json:"price_per_day"`
	Location    string               `json:"location"`
	Status      models.ListingStatus `json:"status"`
}

// GetListings handles the paginated listing overview
// @Summary     List listings
// @Description Get a paginated list of listings, newest first, optionally filtered by status
// @Tags        listings
// @Accept      json
// @Produce     json
// @Param       page query int false "Page number (1-based)"
// @Param       page_size query int false "Page size (default 10)"
// @Param       status query string false "Filter by status (pending/approved/rejected/all)"
// @Success     200 {object} pagination.PageResponse[models.Listing] "Paginated listings"
// @Failure     400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /listings [get]
func (h *ListingHandler) GetListings(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.listingService.GetListings(c.Query("status"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetListingByID handles the retrieval of a single listing
// @Summary     Get listing by ID
// @Description Get a specific listing by ID
// @Tags        listings
// @Accept      json
// @Produce     json
// @Param       id path int true "Listing ID"
// @Success     200 {object} ListingResponse "Listing details"
// @Failure     400 {object} ErrorResponse "Invalid listing ID"
// @Failure     404 {object} ErrorResponse "Listing not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /listings/{id} [get]
func (h *ListingHandler) GetListingByID(c *gin.Context) {
	listingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	listing, err := h.listingService.GetListingByID(listingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

// UpdateListing handles editing a listing's details
// @Summary     Update listing
// @Description Overwrite a listing's details and record an audit entry
// @Tags        listings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Listing ID"
// @Param       request body UpdateListingRequest true "Updated listing details"
// @Success     200 {object} ListingResponse "Updated listing"
// @Failure     400 {object} ErrorResponse "Invalid input or listing ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Listing not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /listings/{id} [put]
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	adminID, err := getAdminID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	listingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	listing, err := h.listingService.UpdateListing(listingID, services.ListingFields{
		Title:       req.Title,
		Description: req.Description,
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		PricePerDay: req.PricePerDay,
		Location:    req.Location,
	}, adminID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

// ChangeStatus handles a moderation decision on a listing
// @Summary     Change listing status
// @Description Transition a listing to pending, approved, or rejected and record an audit entry
// @Tags        listings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Listing ID"
// @Param       request body ChangeStatusRequest true "Target status"
// @Success     200 {object} ListingResponse "Updated listing"
// @Failure     400 {object} ErrorResponse "Invalid status or listing ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Listing not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /listings/{id}/status [patch]
func (h *ListingHandler) ChangeStatus(c *gin.Context) {
	adminID, err := getAdminID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	listingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidStatus, "Status must be one of pending, approved, or rejected"))
		return
	}

	listing, err := h.listingService.ChangeStatus(listingID, req.Status, adminID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}
