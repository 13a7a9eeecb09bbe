package repositories

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/ravishankar2114/banking-simulator/internal/errors"
	"github.com/ravishankar2114/banking-simulator/internal/models"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountNumberExists = errors.New("account number already exists")
	ErrAccountNotActive    = errors.New("account is not active")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountNumberExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByAccountNumber retrieves an account by account number
func (r *accountRepository) GetByAccountNumber(accountNumber string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("account_number = ?", accountNumber).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by number: %w", err)
	}
	return &account, nil
}

// ListAll retrieves all accounts ordered by creation time
func (r *accountRepository) ListAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Update persists changes to an account
func (r *accountRepository) Update(account *models.Account) error {
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// CheckAccountNumberExists checks if an account number is already taken
func (r *accountRepository) CheckAccountNumberExists(accountNumber string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).
		Where("account_number = ?", accountNumber).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account number existence: %w", err)
	}
	return count > 0, nil
}

// GenerateUniqueAccountNumber generates an account number not yet in use.
// The existence probe is best effort; the unique constraint on the accounts
// table is what actually guarantees uniqueness, and callers retry on it.
func (r *accountRepository) GenerateUniqueAccountNumber() (string, error) {
	maxAttempts := 10
	for i := 0; i < maxAttempts; i++ {
		accountNumber := models.GenerateAccountNumber()

		exists, err := r.CheckAccountNumberExists(accountNumber)
		if err != nil {
			return "", err
		}
		if !exists {
			return accountNumber, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique account number after %d attempts", maxAttempts)
}

// lockAccountQuery builds the SELECT ... FOR UPDATE read for one account row.
// SQLite ignores the locking clause; its transactions serialize writes anyway.
func lockAccountQuery(tx *gorm.DB, accountNumber string, dest *models.Account) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_number = ?", accountNumber).
		First(dest)
}

// lockAccount reads an account row for update within a transaction
func lockAccount(tx *gorm.DB, accountNumber string) (*models.Account, error) {
	var account models.Account
	// Row-level locking prevents concurrent balance modifications
	if err := lockAccountQuery(tx, accountNumber, &account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return &account, nil
}

// Deposit atomically credits an account and appends the ledger record
func (r *accountRepository) Deposit(accountNumber string, amount decimal.Decimal) (*models.Account, *models.TransactionRecord, error) {
	var account *models.Account
	var record *models.TransactionRecord

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = lockAccount(tx, accountNumber)
		if err != nil {
			return err
		}

		if !account.IsActive() {
			return ErrAccountNotActive
		}

		if err := account.Credit(amount); err != nil {
			return err
		}

		if err := tx.Model(account).Update("balance", account.Balance).Error; err != nil {
			return fmt.Errorf("failed to credit account: %w", err)
		}

		record = models.NewDepositRecord(accountNumber, amount)
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create deposit record: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return account, record, nil
}

// Withdraw atomically debits an account and appends the ledger record.
// Rejects the debit with the current balance when funds are insufficient.
func (r *accountRepository) Withdraw(accountNumber string, amount decimal.Decimal) (*models.Account, *models.TransactionRecord, error) {
	var account *models.Account
	var record *models.TransactionRecord

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = lockAccount(tx, accountNumber)
		if err != nil {
			return err
		}

		if !account.IsActive() {
			return ErrAccountNotActive
		}

		if !account.CanWithdraw(amount) {
			return &apperrors.InsufficientFundsError{Balance: account.Balance}
		}

		if err := account.Debit(amount); err != nil {
			return err
		}

		if err := tx.Model(account).Update("balance", account.Balance).Error; err != nil {
			return fmt.Errorf("failed to debit account: %w", err)
		}

		record = models.NewWithdrawRecord(accountNumber, amount)
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create withdraw record: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return account, record, nil
}

// ExecuteAtomicTransfer moves funds between two accounts and appends a single
// transfer record. Both rows are locked in account-number order so two
// opposite-direction transfers cannot deadlock.
func (r *accountRepository) ExecuteAtomicTransfer(fromAccountNumber, toAccountNumber string, amount decimal.Decimal) (*models.TransactionRecord, error) {
	var record *models.TransactionRecord

	err := r.db.Transaction(func(tx *gorm.DB) error {
		first, second := fromAccountNumber, toAccountNumber
		if second < first {
			first, second = second, first
		}

		locked := make(map[string]*models.Account, 2)
		for _, number := range []string{first, second} {
			account, err := lockAccount(tx, number)
			if err != nil {
				return err
			}
			locked[number] = account
		}

		fromAcct := locked[fromAccountNumber]
		toAcct := locked[toAccountNumber]

		if !fromAcct.IsActive() || !toAcct.IsActive() {
			return ErrAccountNotActive
		}

		if !fromAcct.CanWithdraw(amount) {
			return &apperrors.InsufficientFundsError{Balance: fromAcct.Balance}
		}

		if err := fromAcct.Debit(amount); err != nil {
			return err
		}
		if err := toAcct.Credit(amount); err != nil {
			return err
		}

		if err := tx.Model(fromAcct).Update("balance", fromAcct.Balance).Error; err != nil {
			return fmt.Errorf("failed to debit source account: %w", err)
		}
		if err := tx.Model(toAcct).Update("balance", toAcct.Balance).Error; err != nil {
			return fmt.Errorf("failed to credit destination account: %w", err)
		}

		record = models.NewTransferRecord(fromAccountNumber, toAccountNumber, amount)
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create transfer record: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}
