package services

import (
	"testing"
	"time"

	"rentadmin/internal/models"
	"rentadmin/internal/testutil"
)

func TestRecord(t *testing.T) {
	t.Run("appends_entry_with_statuses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		admin := testutil.CreateTestAdmin(t, db)
		listing := testutil.CreateTestListing(t, db, models.ListingStatusPending)

		oldStatus := models.ListingStatusPending
		newStatus := models.ListingStatusApproved
		err := svc.Record(db, listing.ID, admin.ID, "approved", &oldStatus, &newStatus)
		testutil.AssertNoError(t, err)

		var entry models.AuditLog
		if err := db.First(&entry).Error; err != nil {
			t.Fatalf("failed to load audit entry: %v", err)
		}
		if entry.ListingID != listing.ID || entry.AdminID != admin.ID {
			t.Errorf("expected listing %d admin %d, got %d %d", listing.ID, admin.ID, entry.ListingID, entry.AdminID)
		}
		if entry.Action != "approved" {
			t.Errorf("expected action approved, got %s", entry.Action)
		}
		if entry.Timestamp.IsZero() {
			t.Error("expected timestamp to be set")
		}
	})

	t.Run("accepts_any_action_tag", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		err := svc.Record(db, 1, 1, "bulk-import", nil, nil)
		testutil.AssertNoError(t, err)

		if got := testutil.CountAuditLogs(t, db); got != 1 {
			t.Errorf("expected 1 audit entry, got %d", got)
		}
	})
}

func TestListRecent(t *testing.T) {
	t.Run("joins_username_and_orders_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		admin := testutil.CreateTestAdmin(t, db)
		listing := testutil.CreateTestListing(t, db, models.ListingStatusPending)

		testutil.CreateTestAuditLog(t, db, listing.ID, admin.ID, "approved")
		testutil.CreateTestAuditLog(t, db, listing.ID, admin.ID, "updated")
		testutil.CreateTestAuditLog(t, db, listing.ID, admin.ID, "rejected")

		entries, err := svc.ListRecent(0)
		testutil.AssertNoError(t, err)

		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		want := []string{"rejected", "updated", "approved"}
		for i, e := range entries {
			if e.Action != want[i] {
				t.Errorf("position %d: expected action %s, got %s", i, want[i], e.Action)
			}
			if e.Username != admin.Username {
				t.Errorf("expected username %s, got %s", admin.Username, e.Username)
			}
		}
		for i := 1; i < len(entries); i++ {
			if entries[i].Timestamp.After(entries[i-1].Timestamp) {
				t.Errorf("entries not in descending timestamp order at position %d", i)
			}
		}
	})

	t.Run("caps_at_requested_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		admin := testutil.CreateTestAdmin(t, db)
		listing := testutil.CreateTestListing(t, db, models.ListingStatusPending)

		for i := 0; i < 5; i++ {
			testutil.CreateTestAuditLog(t, db, listing.ID, admin.ID, "approved")
		}

		entries, err := svc.ListRecent(2)
		testutil.AssertNoError(t, err)

		if len(entries) != 2 {
			t.Errorf("expected 2 entries, got %d", len(entries))
		}
	})

	t.Run("missing_admin_still_returned", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		listing := testutil.CreateTestListing(t, db, models.ListingStatusPending)
		testutil.CreateTestAuditLog(t, db, listing.ID, 4242, "approved")

		entries, err := svc.ListRecent(0)
		testutil.AssertNoError(t, err)

		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Username != "" {
			t.Errorf("expected empty username for unknown admin, got %q", entries[0].Username)
		}
	})

	t.Run("empty_trail_returns_empty_slice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		entries, err := svc.ListRecent(0)
		testutil.AssertNoError(t, err)

		if entries == nil || len(entries) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", entries)
		}
	})
}

// Timestamps written by Record come from the database clock; sanity check
// they are recent rather than asserting exact values.
func TestRecordTimestampIsRecent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	before := time.Now().Add(-time.Minute)
	err := svc.Record(db, 1, 1, "approved", nil, nil)
	testutil.AssertNoError(t, err)

	var entry models.AuditLog
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("failed to load audit entry: %v", err)
	}
	if entry.Timestamp.Before(before) {
		t.Errorf("expected a recent timestamp, got %v", entry.Timestamp)
	}
}
