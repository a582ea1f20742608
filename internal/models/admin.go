package models

// Admin represents an administrator account. Admins are created at seed
// time and never modified through the API.
type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:admin" json:"role"`
}

// TableName keeps the table name used by the original console schema.
func (Admin) TableName() string {
	return "users"
}
