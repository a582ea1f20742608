package models

// ListingStatus represents the moderation state of a listing
type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusApproved ListingStatus = "approved"
	ListingStatusRejected ListingStatus = "rejected"
)

// Valid reports whether the status is one of the three moderation states.
func (s ListingStatus) Valid() bool {
	switch s {
	case ListingStatusPending, ListingStatusApproved, ListingStatusRejected:
		return true
	}
	return false
}

// Listing represents a car-rental offering awaiting or having received
// moderation. Listings are submitted externally; this API only reads,
// edits, and transitions them.
type Listing struct {
	Base
	Title       string        `gorm:"not null" json:"title"`
	Description string        `json:"description"`
	Brand       string        `gorm:"not null" json:"brand"`
	Model       string        `gorm:"not null" json:"model"`
	Year        int           `gorm:"not null" json:"year"`
	PricePerDay float64       `gorm:"not null" json:"price_per_day"`
	Location    string        `gorm:"not null" json:"location"`
	Status      ListingStatus `gorm:"not null;default:pending;index" json:"status"`
}
