package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ravishankar2114/banking-simulator/internal/models"
)

var (
	ErrAdminExists   = errors.New("administrator already exists")
	ErrAdminNotFound = errors.New("administrator not found")
)

// adminRepository implements AdminRepositoryInterface
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new administrator repository
func NewAdminRepository(db *gorm.DB) AdminRepositoryInterface {
	return &adminRepository{
		db: db,
	}
}

// Create registers a new administrator
func (r *adminRepository) Create(admin *models.Administrator) error {
	if err := r.db.Create(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAdminExists
		}
		return fmt.Errorf("failed to create administrator: %w", err)
	}
	return nil
}

// GetByUsername retrieves an administrator by username
func (r *adminRepository) GetByUsername(username string) (*models.Administrator, error) {
	var admin models.Administrator
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get administrator: %w", err)
	}
	return &admin, nil
}

// GetByAdminID retrieves an administrator by admin ID
func (r *adminRepository) GetByAdminID(adminID string) (*models.Administrator, error) {
	var admin models.Administrator
	if err := r.db.Where("admin_id = ?", adminID).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get administrator by ID: %w", err)
	}
	return &admin, nil
}
