package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "rentadmin/internal/errors"
	"rentadmin/internal/models"
	"rentadmin/internal/pagination"
	"rentadmin/internal/services"
	"rentadmin/internal/validator"
)

func init() {
	validator.Register()
}

// --- mock listing service ---

type mockListingService struct {
	getListingsFn    func(status string, page pagination.PageRequest) (*pagination.PageResponse[models.Listing], error)
	getListingByIDFn func(id uint) (*models.Listing, error)
	changeStatusFn   func(listingID uint, newStatus models.ListingStatus, adminID uint) (*models.Listing, error)
	updateListingFn  func(listingID uint, fields services.ListingFields, adminID uint) (*models.Listing, error)
}

func (m *mockListingService) GetListings(status string, page pagination.PageRequest) (*pagination.PageResponse[models.Listing], error) {
	if m.getListingsFn != nil {
		return m.getListingsFn(status, page)
	}
	resp := pagination.NewPageResponse([]models.Listing{}, 1, 10, 0)
	return &resp, nil
}

func (m *mockListingService) GetListingByID(id uint) (*models.Listing, error) {
	if m.getListingByIDFn != nil {
		return m.getListingByIDFn(id)
	}
	return &models.Listing{}, nil
}

func (m *mockListingService) ChangeStatus(listingID uint, newStatus models.ListingStatus, adminID uint) (*models.Listing, error) {
	if m.changeStatusFn != nil {
		return m.changeStatusFn(listingID, newStatus, adminID)
	}
	return &models.Listing{}, nil
}

func (m *mockListingService) UpdateListing(listingID uint, fields services.ListingFields, adminID uint) (*models.Listing, error) {
	if m.updateListingFn != nil {
		return m.updateListingFn(listingID, fields, adminID)
	}
	return &models.Listing{}, nil
}

var _ services.ListingServicer = (*mockListingService)(nil)

func setupListingRouter(handler *ListingHandler) *gin.Engine {
	r := gin.New()
	r.GET("/listings", handler.GetListings)
	r.GET("/listings/:id", handler.GetListingByID)
	auth := r.Group("", injectAdminID(7))
	auth.PUT("/listings/:id", handler.UpdateListing)
	auth.PATCH("/listings/:id/status", handler.ChangeStatus)
	return r
}

const validListingBody = `{"title":"Tesla Model 3","description":"EV","brand":"Tesla","model":"Model 3","year":2023,"price_per_day":95.5,"location":"Austin, TX"}`

func TestListingHandler_GetListings(t *testing.T) {
	t.Run("returns 200 and passes the status filter through", func(t *testing.T) {
		var gotStatus string
		var gotPage pagination.PageRequest
		listingSvc := &mockListingService{
			getListingsFn: func(status string, page pagination.PageRequest) (*pagination.PageResponse[models.Listing], error) {
				gotStatus = status
				gotPage = page
				resp := pagination.NewPageResponse([]models.Listing{
					{Base: models.Base{ID: 1}, Title: "Car", Status: models.ListingStatusApproved},
				}, 2, 10, 11)
				return &resp, nil
			},
		}
		handler := NewListingHandler(listingSvc)
		r := setupListingRouter(handler)

		rec := doRequest(r, "GET", "/listings?page=2&status=approved", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotStatus != "approved" {
			t.Errorf("expected status filter approved, got %q", gotStatus)
		}
		if gotPage.Page != 2 {
			t.Errorf("expected page 2, got %d", gotPage.Page)
		}
		result := parseJSON(t, rec)
		if result["total_pages"].(float64) != 2 {
			t.Errorf("expected total_pages 2, got %v", result["total_pages"])
		}
	})

	t.Run("returns 400 on invalid page", func(t *testing.T) {
		handler := NewListingHandler(&mockListingService{})
		r := setupListingRouter(handler)

		rec := doRequest(r, "GET", "/listings?page=0", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestListingHandler_GetListingByID(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		listingSvc := &mockListingService{
			getListingByIDFn: func(id uint) (*models.Listing, error) {
				return &models.Listing{Base: models.Base{ID: id}, Title: "Car"}, nil
			},
		}
		handler := NewListingHandler(listingSvc)
		r := setupListingRouter(handler)

		rec := doRequest(r, "GET", "/listings/5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		listing := result["listing"].(map[string]interface{})
		if listing["id"].(float64) != 5 {
			t.Errorf("expected listing id 5, got %v", listing["id"])
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		listingSvc := &mockListingService{
			getListingByIDFn: func(id uint) (*models.Listing, error) {
				return nil, apperrors.ErrListingNotFound
			},
		}
		handler := NewListingHandler(listingSvc)
		r := setupListingRouter(handler)

		rec := doRequest(r, "GET", "/listings/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "LISTING_NOT_FOUND")
	})

	t.Run("returns 400 on non-numeric id", func(t *testing.T) {
		handler := NewListingHandler(&mockListingService{})
		r := setupListingRouter(handler)

		rec := doRequest(r, "GET", "/listings/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestListingHandler_UpdateListing(t *testing.T) {
	t.Run("returns 200 and forwards all fields", func(t *testing.T) {
		var gotFields services.ListingFields
		var gotAdminID uint
		listingSvc := &mockListingService{
			updateListingFn: func(listingID uint, fields services.ListingFields, adminID uint) (*models.Listing, error) {
				gotFields = fields
				gotAdminID = adminID
				return &models.Listing{Base: models.Base{ID: listingID}, Title: fields.Title}, nil
			},
		}
		handler := NewListingHandler(listingSvc)
		r := setupListingRouter(handler)

		rec := doRequest(r, "PUT", "/listings/3", validListingBody)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFields.Brand != "Tesla" || gotFields.Year != 2023 {
			t.Errorf("expected Tesla 2023, got %s %d", gotFields.Brand, gotFields.Year)
		}
		if gotAdminID != 7 {
			t.Errorf("expected acting admin 7, got %d", gotAdminID)
		}
	})

	t.Run("returns 400 on missing required fields", func(t *testing.T) {
		handler := NewListingHandler(&mockListingService{})
		r := setupListingRouter(handler)

		rec := doRequest(r, "PUT", "/listings/3", `{"title":"Only a title"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		listingSvc := &mockListingService{
			updateListingFn: func(listingID uint, fields services.ListingFields, adminID uint) (*models.Listing, error) {
				return nil, apperrors.ErrListingNotFound
			},
		}
		handler := NewListingHandler(listingSvc)
		r := setupListingRouter(handler)

		rec := doRequest(r, "PUT", "/listings/999", validListingBody)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns 401 without identity in context", func(t *testing.T) {
		updateCalled := false
		listingSvc := &mockListingService{
			updateListingFn: func(listingID uint, fields services.ListingFields, adminID uint) (*models.Listing, error) {
				updateCalled = true
				return &models.Listing{}, nil
			},
		}
		handler := NewListingHandler(listingSvc)
		r := gin.New()
		r.PUT("/listings/:id", handler.UpdateListing)

		rec := doRequest(r, "PUT", "/listings/3", validListingBody)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if updateCalled {
			t.Error("expected no service call without identity")
		}
	})
}

func TestListingHandler_ChangeStatus(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotStatus models.ListingStatus
		listingSvc := &mockListingService{
			changeStatusFn: func(listingID uint, newStatus models.ListingStatus, adminID uint) (*models.Listing, error) {
				gotStatus = newStatus
				return &models.Listing{Base: models.Base{ID: listingID}, Status: newStatus}, nil
			},
		}
		handler := NewListingHandler(listingSvc)
		r := setupListingRouter(handler)

		rec := doRequest(r, "PATCH", "/listings/1/status", `{"status":"approved"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotStatus != models.ListingStatusApproved {
			t.Errorf("expected approved, got %s", gotStatus)
		}
		result := parseJSON(t, rec)
		listing := result["listing"].(map[string]interface{})
		if listing["status"] != "approved" {
			t.Errorf("expected status approved, got %v", listing["status"])
		}
	})

	t.Run("returns 400 on invalid status", func(t *testing.T) {
		changeCalled := false
		listingSvc := &mockListingService{
			changeStatusFn: func(listingID uint, newStatus models.ListingStatus, adminID uint) (*models.Listing, error) {
				changeCalled = true
				return &models.Listing{}, nil
			},
		}
		handler := NewListingHandler(listingSvc)
		r := setupListingRouter(handler)

		rec := doRequest(r, "PATCH", "/listings/1/status", `{"status":"archived"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_STATUS")
		if changeCalled {
			t.Error("expected no service call for invalid status")
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		listingSvc := &mockListingService{
			changeStatusFn: func(listingID uint, newStatus models.ListingStatus, adminID uint) (*models.Listing, error) {
				return nil, apperrors.ErrListingNotFound
			},
		}
		handler := NewListingHandler(listingSvc)
		r := setupListingRouter(handler)

		rec := doRequest(r, "PATCH", "/listings/999/status", `{"status":"approved"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns 401 without identity in context", func(t *testing.T) {
		changeCalled := false
		listingSvc := &mockListingService{
			changeStatusFn: func(listingID uint, newStatus models.ListingStatus, adminID uint) (*models.Listing, error) {
				changeCalled = true
				return &models.Listing{}, nil
			},
		}
		handler := NewListingHandler(listingSvc)
		r := gin.New()
		r.PATCH("/listings/:id/status", handler.ChangeStatus)

		rec := doRequest(r, "PATCH", "/listings/1/status", `{"status":"approved"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if changeCalled {
			t.Error("expected no service call without identity")
		}
	})
}
