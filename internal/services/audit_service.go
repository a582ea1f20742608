package services

import (
	"gorm.io/gorm"

	apperrors "rentadmin/internal/errors"
	"rentadmin/internal/models"
)

// defaultAuditLimit caps ListRecent when no limit is requested.
const defaultAuditLimit = 100

// auditService handles the append-only audit trail.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Record appends one audit entry through the given handle. Passing the
// caller's transaction ties the entry's fate to the operation it records.
// The action tag is free-form; the transition and edit paths use the new
// status value and "updated" respectively.
func (s *auditService) Record(db *gorm.DB, listingID, adminID uint, action string, oldStatus, newStatus *models.ListingStatus) error {
	entry := &models.AuditLog{
		ListingID: listingID,
		AdminID:   adminID,
		Action:    action,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	}

	if err := db.Create(entry).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListRecent returns the most recent audit entries joined with the acting
// admin's username, newest first. A non-positive limit falls back to the
// default of 100.
func (s *auditService) ListRecent(limit int) ([]AuditLogEntry, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}

	var entries []AuditLogEntry
	err := s.db.Table("audit_logs").
		Select("audit_logs.*, users.username").
		Joins("LEFT JOIN users ON users.id = audit_logs.admin_id").
		Order("audit_logs.timestamp DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if entries == nil {
		entries = []AuditLogEntry{}
	}
	return entries, nil
}
