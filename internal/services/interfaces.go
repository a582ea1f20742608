package services

import (
	"time"

	"gorm.io/gorm"

	"rentadmin/internal/models"
	"rentadmin/internal/pagination"
)

// AdminServicer defines the contract for admin credential checks.
type AdminServicer interface {
	GetAdminByUsername(username string) (*models.Admin, error)
	GetAdminByID(id uint) (*models.Admin, error)
	VerifyPassword(admin *models.Admin, password string) bool
	AttemptLogin(username, password string) (*models.Admin, error)
}

// ListingFields holds the mutable fields of a listing. Edits overwrite all
// of them at once; there is no partial merge.
type ListingFields struct {
	Title       string
	Description string
	Brand       string
	Model       string
	Year        int
	PricePerDay float64
	Location    string
}

// ListingServicer defines the contract for listing reads, edits, and
// status transitions.
type ListingServicer interface {
	GetListings(status string, page pagination.PageRequest) (*pagination.PageResponse[models.Listing], error)
	GetListingByID(id uint) (*models.Listing, error)
	ChangeStatus(listingID uint, newStatus models.ListingStatus, adminID uint) (*models.Listing, error)
	UpdateListing(listingID uint, fields ListingFields, adminID uint) (*models.Listing, error)
}

// AuditLogEntry is an audit log row joined with the acting admin's username.
type AuditLogEntry struct {
	ID        uint                  `json:"id"`
	ListingID uint                  `json:"listing_id"`
	AdminID   uint                  `json:"admin_id"`
	Action    string                `json:"action"`
	OldStatus *models.ListingStatus `json:"old_status"`
	NewStatus *models.ListingStatus `json:"new_status"`
	Timestamp time.Time             `json:"timestamp"`
	Username  string                `json:"username"`
}

// AuditServicer defines the contract for the append-only audit trail.
// Record takes the caller's database handle so a status transition can
// write its audit row inside the same transaction as the update.
type AuditServicer interface {
	Record(db *gorm.DB, listingID, adminID uint, action string, oldStatus, newStatus *models.ListingStatus) error
	ListRecent(limit int) ([]AuditLogEntry, error)
}
