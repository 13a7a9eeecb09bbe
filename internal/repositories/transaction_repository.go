package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ravishankar2114/banking-simulator/internal/models"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create appends a transaction record to the ledger
func (r *transactionRepository) Create(record *models.TransactionRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create transaction record: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction record by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.TransactionRecord, error) {
	var record models.TransactionRecord
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction record: %w", err)
	}
	return &record, nil
}

// ListByAccount retrieves records touching an account, newest first.
// A limit of zero or less returns the full history.
func (r *transactionRepository) ListByAccount(accountNumber string, limit int) ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord

	query := r.db.
		Where("from_account_number = ? OR to_account_number = ?", accountNumber, accountNumber).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions for account: %w", err)
	}
	return records, nil
}

// ListAll retrieves every record in the ledger, newest first
func (r *transactionRepository) ListAll() ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord
	if err := r.db.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return records, nil
}
