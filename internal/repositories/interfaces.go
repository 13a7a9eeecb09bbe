package repositories

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ravishankar2114/banking-simulator/internal/models"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByAccountNumber(accountNumber string) (*models.Account, error)
	ListAll() ([]models.Account, error)
	Update(account *models.Account) error
	CheckAccountNumberExists(accountNumber string) (bool, error)
	GenerateUniqueAccountNumber() (string, error)
	Deposit(accountNumber string, amount decimal.Decimal) (*models.Account, *models.TransactionRecord, error)
	Withdraw(accountNumber string, amount decimal.Decimal) (*models.Account, *models.TransactionRecord, error)
	ExecuteAtomicTransfer(fromAccountNumber, toAccountNumber string, amount decimal.Decimal) (*models.TransactionRecord, error)
}

// TransactionRepositoryInterface defines the contract for transaction record operations
type TransactionRepositoryInterface interface {
	Create(record *models.TransactionRecord) error
	GetByID(id uuid.UUID) (*models.TransactionRecord, error)
	ListByAccount(accountNumber string, limit int) ([]models.TransactionRecord, error)
	ListAll() ([]models.TransactionRecord, error)
}

// PayeeRepositoryInterface defines the contract for payee registry operations
type PayeeRepositoryInterface interface {
	Create(payee *models.Payee) error
	ListByOwner(ownerAccountNumber string) ([]models.Payee, error)
	GetOwned(id uint, ownerAccountNumber string) (*models.Payee, error)
	DeleteOwned(id uint, ownerAccountNumber string) error
}

// AdminRepositoryInterface defines the contract for administrator operations
type AdminRepositoryInterface interface {
	Create(admin *models.Administrator) error
	GetByUsername(username string) (*models.Administrator, error)
	GetByAdminID(adminID string) (*models.Administrator, error)
}
