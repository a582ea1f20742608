package models

import "time"

// AuditLog records one administrative action on a listing. Rows are
// append-only: nothing in the API updates or deletes them.
type AuditLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ListingID uint           `gorm:"index" json:"listing_id"`
	AdminID   uint           `gorm:"index" json:"admin_id"`
	Action    string         `gorm:"not null" json:"action"`
	OldStatus *ListingStatus `json:"old_status"`
	NewStatus *ListingStatus `json:"new_status"`
	Timestamp time.Time      `gorm:"autoCreateTime;index" json:"timestamp"`
}
