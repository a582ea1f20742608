package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "rentadmin/internal/errors"
	"rentadmin/internal/models"
)

// adminService handles admin credential checks.
type adminService struct {
	db *gorm.DB
}

// NewAdminService creates a new AdminServicer.
func NewAdminService(db *gorm.DB) AdminServicer {
	return &adminService{db: db}
}

// GetAdminByUsername retrieves an admin by username
func (s *adminService) GetAdminByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &admin, nil
}

// GetAdminByID retrieves an admin by ID
func (s *adminService) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &admin, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *adminService) VerifyPassword(admin *models.Admin, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password))
	return err == nil
}

// AttemptLogin verifies a username/password pair. An unknown username and
// a wrong password produce the same error so login failures do not reveal
// which accounts exist.
func (s *adminService) AttemptLogin(username, password string) (*models.Admin, error) {
	admin, err := s.GetAdminByUsername(username)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrAdminNotFound.Code {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.VerifyPassword(admin, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return admin, nil
}
