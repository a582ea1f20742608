package main

import (
	"fmt"
	"os"

	"rentadmin/internal/database"
	"rentadmin/internal/logger"
	"rentadmin/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// sampleListings mirror the demo data the console ships with, covering all
// three moderation states.
var sampleListings = []models.Listing{
	{
		Title:       "Toyota Camry 2022 - Perfect for City Drives",
		Description: "A reliable and comfortable sedan perfect for business trips and city driving.",
		Brand:       "Toyota",
		Model:       "Camry",
		Year:        2022,
		PricePerDay: 45.00,
		Location:    "New York, NY",
		Status:      models.ListingStatusPending,
	},
	{
		Title:       "BMW X5 2021 - Luxury SUV Experience",
		Description: "Premium SUV with advanced features and spacious interior.",
		Brand:       "BMW",
		Model:       "X5",
		Year:        2021,
		PricePerDay: 85.00,
		Location:    "Los Angeles, CA",
		Status:      models.ListingStatusApproved,
	},
	{
		Title:       "Honda Civic 2023 - Fuel Efficient Compact",
		Description: "Brand new Honda Civic with excellent fuel economy.",
		Brand:       "Honda",
		Model:       "Civic",
		Year:        2023,
		PricePerDay: 35.00,
		Location:    "Chicago, IL",
		Status:      models.ListingStatusRejected,
	},
	{
		Title:       "Mercedes-Benz C-Class 2022",
		Description: "Elegant and powerful sedan for special occasions.",
		Brand:       "Mercedes-Benz",
		Model:       "C-Class",
		Year:        2022,
		PricePerDay: 75.00,
		Location:    "Miami, FL",
		Status:      models.ListingStatusPending,
	},
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	db := dbManager.DB()

	username := getEnv("SEED_ADMIN_USERNAME", "admin")
	password := getEnv("SEED_ADMIN_PASSWORD", "admin123")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.Admin{Username: username, Password: string(hash), Role: "admin"}
	result := db.Where(models.Admin{Username: username}).Attrs(admin).FirstOrCreate(&admin)
	if result.Error != nil {
		return fmt.Errorf("failed to seed admin user: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		log.Infof("Seeded admin user %q (id=%d)", admin.Username, admin.ID)
	} else {
		log.Infof("Admin user %q already exists (id=%d)", admin.Username, admin.ID)
	}

	// Sample listings are only inserted into an empty table so reseeding
	// never duplicates them.
	var count int64
	if err := db.Model(&models.Listing{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count listings: %w", err)
	}
	if count > 0 {
		log.Infof("Listings table already has %d rows, skipping sample data", count)
		return nil
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		for i := range sampleListings {
			if err := tx.Create(&sampleListings[i]).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to seed listings: %w", err)
	}

	log.Infof("Seeded %d sample listings", len(sampleListings))
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
