package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ravishankar2114/banking-simulator/internal/models"
)

var (
	ErrPayeeExists   = errors.New("payee already registered for this account")
	ErrPayeeNotFound = errors.New("payee not found")
)

// payeeRepository implements PayeeRepositoryInterface
type payeeRepository struct {
	db *gorm.DB
}

// NewPayeeRepository creates a new payee repository
func NewPayeeRepository(db *gorm.DB) PayeeRepositoryInterface {
	return &payeeRepository{
		db: db,
	}
}

// Create registers a payee. The (owner, payee account) pair is unique;
// a second registration of the same pair fails with ErrPayeeExists.
func (r *payeeRepository) Create(payee *models.Payee) error {
	if err := r.db.Create(payee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrPayeeExists
		}
		return fmt.Errorf("failed to create payee: %w", err)
	}
	return nil
}

// ListByOwner retrieves all payees registered by an account
func (r *payeeRepository) ListByOwner(ownerAccountNumber string) ([]models.Payee, error) {
	var payees []models.Payee
	if err := r.db.Where("owner_account_number = ?", ownerAccountNumber).
		Order("created_at ASC").Find(&payees).Error; err != nil {
		return nil, fmt.Errorf("failed to list payees: %w", err)
	}
	return payees, nil
}

// GetOwned retrieves a payee by ID, scoped to its owner
func (r *payeeRepository) GetOwned(id uint, ownerAccountNumber string) (*models.Payee, error) {
	var payee models.Payee
	if err := r.db.Where("id = ? AND owner_account_number = ?", id, ownerAccountNumber).
		First(&payee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPayeeNotFound
		}
		return nil, fmt.Errorf("failed to get payee: %w", err)
	}
	return &payee, nil
}

// DeleteOwned removes a payee, scoped to its owner. A payee belonging to
// another account is indistinguishable from a missing one.
func (r *payeeRepository) DeleteOwned(id uint, ownerAccountNumber string) error {
	result := r.db.Where("id = ? AND owner_account_number = ?", id, ownerAccountNumber).
		Delete(&models.Payee{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete payee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPayeeNotFound
	}
	return nil
}
