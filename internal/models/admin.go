package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Administrator governs operational actions on accounts. It carries no balance.
type Administrator struct {
	AdminID      string    `gorm:"type:varchar(100);primaryKey" json:"admin_id"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	PhoneNumber  string    `gorm:"type:varchar(20);not null" json:"phone_number"`
	Role         string    `gorm:"type:varchar(50)" json:"role"`
	BankName     string    `gorm:"type:varchar(100)" json:"bank_name"`
	BranchIFSC   string    `gorm:"type:varchar(11)" json:"branch_ifsc"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// AdminIDForUsername derives the admin identity from the username
func AdminIDForUsername(username string) string {
	return "admin_" + strings.ToLower(username)
}

// BeforeCreate hook for Administrator
func (a *Administrator) BeforeCreate(tx *gorm.DB) error {
	if a.AdminID == "" {
		a.AdminID = AdminIDForUsername(a.Username)
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Administrator
func (a *Administrator) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the administrator fields
func (a *Administrator) Validate() error {
	if strings.TrimSpace(a.Username) == "" {
		return errors.New("username cannot be empty")
	}

	if a.AdminID == "" {
		return errors.New("admin ID is required")
	}

	if a.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	return nil
}

// TableName returns the table name for Administrator
func (a *Administrator) TableName() string {
	return "admins"
}
