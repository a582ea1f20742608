package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "rentadmin/internal/errors"
	"rentadmin/internal/models"
	"rentadmin/internal/pagination"
)

// listingService handles listing reads, edits, and status transitions.
type listingService struct {
	db    *gorm.DB
	audit AuditServicer
}

// NewListingService creates a new ListingServicer.
func NewListingService(db *gorm.DB, audit AuditServicer) ListingServicer {
	return &listingService{db: db, audit: audit}
}

// GetListings retrieves a paginated list of listings, newest first.
// An empty status or "all" returns every listing; anything else is an
// exact match on the status column.
func (s *listingService) GetListings(status string, page pagination.PageRequest) (*pagination.PageResponse[models.Listing], error) {
	page.Defaults()

	base := s.db.Model(&models.Listing{})
	if status != "" && status != "all" {
		base = base.Where("status = ?", status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var listings []models.Listing
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&listings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(listings, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetListingByID retrieves a listing by ID
func (s *listingService) GetListingByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &listing, nil
}

// ChangeStatus applies a moderation decision to a listing. The status
// update and its audit row are written in one transaction: a failed audit
// insert rolls the transition back. The action label on the audit row is
// the new status itself.
func (s *listingService) ChangeStatus(listingID uint, newStatus models.ListingStatus, adminID uint) (*models.Listing, error) {
	if !newStatus.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	listing, err := s.GetListingByID(listingID)
	if err != nil {
		return nil, err
	}
	oldStatus := listing.Status

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(listing).Update("status", newStatus).Error; err != nil {
			return err
		}
		return s.audit.Record(tx, listing.ID, adminID, string(newStatus), &oldStatus, &newStatus)
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetListingByID(listingID)
}

// UpdateListing overwrites all mutable fields of a listing and records an
// "updated" audit entry. The listing's status is never touched here. The
// existence check up front turns an edit of a missing id into a 404
// instead of a silent zero-row UPDATE.
func (s *listingService) UpdateListing(listingID uint, fields ListingFields, adminID uint) (*models.Listing, error) {
	listing, err := s.GetListingByID(listingID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":         fields.Title,
			"description":   fields.Description,
			"brand":         fields.Brand,
			"model":         fields.Model,
			"year":          fields.Year,
			"price_per_day": fields.PricePerDay,
			"location":      fields.Location,
		}
		if err := tx.Model(listing).Updates(updates).Error; err != nil {
			return err
		}
		return s.audit.Record(tx, listing.ID, adminID, "updated", nil, nil)
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetListingByID(listingID)
}
