package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rentadmin/internal/config"
	"rentadmin/internal/handlers"
	"rentadmin/internal/logger"
	"rentadmin/internal/middleware"
	"rentadmin/internal/models"
	"rentadmin/internal/services"
	"rentadmin/internal/testutil"
	"rentadmin/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	config.Set(&config.Config{
		Port:             "8080",
		JWTSecret:        "integration-test-secret",
		JWTExpirationDur: 24 * time.Hour,
	})
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Admin{},
		&models.Listing{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	adminService := services.NewAdminService(db)
	auditService := services.NewAuditService(db)
	listingService := services.NewListingService(db, auditService)

	// Handlers
	authHandler := handlers.NewAuthHandler(adminService)
	listingHandler := handlers.NewListingHandler(listingService)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/listings", listingHandler.GetListings)
	v1.GET("/listings/:id", listingHandler.GetListingByID)
	v1.GET("/audit-logs", auditHandler.GetAuditLogs)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/listings/:id", listingHandler.UpdateListing)
	protected.PATCH("/listings/:id/status", listingHandler.ChangeStatus)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// requestWithRawAuth makes a request with an Authorization header set verbatim.
func (app *testApp) requestWithRawAuth(method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", authHeader)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// seedAdmin creates an admin and logs in through the API, returning the
// admin record and a bearer token.
func (app *testApp) seedAdmin(t *testing.T) (*models.Admin, string) {
	t.Helper()

	admin := testutil.CreateTestAdmin(t, app.DB)
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, admin.Username, testutil.TestPassword)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return admin, result["token"].(string)
}
