package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"rentadmin/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// TestPassword is the plaintext password every test admin is created with.
const TestPassword = "admin123"

// CreateTestAdmin creates an admin with a hashed password and unique username.
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.Admin {
	t.Helper()
	username := fmt.Sprintf("admin%d", nextID())
	return CreateTestAdminWithUsername(t, db, username)
}

// CreateTestAdminWithUsername creates an admin with the given username.
func CreateTestAdminWithUsername(t *testing.T, db *gorm.DB, username string) *models.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	admin := &models.Admin{
		Username: username,
		Password: string(hash),
		Role:     "admin",
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("failed to create test admin: %v", err)
	}
	return admin
}

// CreateTestListing creates a listing with the given status. Each listing
// gets a distinct creation time so ordering assertions are deterministic.
func CreateTestListing(t *testing.T, db *gorm.DB, status models.ListingStatus) *models.Listing {
	t.Helper()

	n := nextID()
	listing := &models.Listing{
		Title:       fmt.Sprintf("Test Listing %d", n),
		Description: "A test car rental listing.",
		Brand:       "Toyota",
		Model:       "Camry",
		Year:        2022,
		PricePerDay: 45.00,
		Location:    "New York, NY",
		Status:      status,
	}
	listing.CreatedAt = time.Now().Add(-time.Hour + time.Duration(n)*time.Second)
	listing.UpdatedAt = listing.CreatedAt
	if err := db.Create(listing).Error; err != nil {
		t.Fatalf("failed to create test listing: %v", err)
	}
	return listing
}

// CreateTestAuditLog creates an audit entry with an explicit timestamp so
// ordering assertions are deterministic.
func CreateTestAuditLog(t *testing.T, db *gorm.DB, listingID, adminID uint, action string) *models.AuditLog {
	t.Helper()

	entry := &models.AuditLog{
		ListingID: listingID,
		AdminID:   adminID,
		Action:    action,
		Timestamp: time.Now().Add(-time.Hour + time.Duration(nextID())*time.Second),
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test audit log: %v", err)
	}
	return entry
}

// CountAuditLogs returns the number of audit rows in the database.
func CountAuditLogs(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.AuditLog{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count audit logs: %v", err)
	}
	return count
}
