package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/ravishankar2114/banking-simulator/internal/errors"
	"github.com/ravishankar2114/banking-simulator/internal/models"
	"github.com/ravishankar2114/banking-simulator/internal/repositories"
)

// MiniStatementLength is the number of most recent records in a mini statement
const MiniStatementLength = 5

// LedgerService moves money between accounts and reads the transaction ledger
type LedgerService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
	metrics         MetricsRecorderInterface
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) LedgerServiceInterface {
	return &LedgerService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
		metrics:         metrics,
	}
}

// Deposit credits an account and appends a DEPOSIT record
func (ls *LedgerService) Deposit(accountNumber string, amount decimal.Decimal) (*models.Account, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	start := time.Now()
	account, _, err := ls.accountRepo.Deposit(accountNumber, amount)
	if err != nil {
		ls.recordOutcome("deposit", start, err)
		return nil, ls.translateAccountError(accountNumber, err)
	}

	ls.recordOutcome("deposit", start, nil)
	ls.logger.Info("deposit completed", "account_number", accountNumber, "amount", amount.String())
	return account, nil
}

// Withdraw debits an account and appends a WITHDRAW record. A debit that
// would overdraw the account fails carrying the current balance.
func (ls *LedgerService) Withdraw(accountNumber string, amount decimal.Decimal) (*models.Account, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	start := time.Now()
	account, _, err := ls.accountRepo.Withdraw(accountNumber, amount)
	if err != nil {
		ls.recordOutcome("withdraw", start, err)
		return nil, ls.translateAccountError(accountNumber, err)
	}

	ls.recordOutcome("withdraw", start, nil)
	ls.logger.Info("withdrawal completed", "account_number", accountNumber, "amount", amount.String())
	return account, nil
}

// Transfer moves funds between two accounts atomically, appending a single
// TRANSFER record visible in both parties' histories.
func (ls *LedgerService) Transfer(fromAccountNumber, toAccountNumber string, amount decimal.Decimal) (*models.TransactionRecord, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if fromAccountNumber == toAccountNumber {
		return nil, apperrors.NewValidationError(apperrors.TransactionSelfTransfer)
	}

	source, err := ls.accountRepo.GetByAccountNumber(fromAccountNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, &apperrors.AccountNotFoundError{Key: fromAccountNumber}
		}
		return nil, err
	}
	if !source.IsActive() {
		return nil, apperrors.NewValidationError(apperrors.AccountNotActive)
	}

	start := time.Now()
	record, err := ls.accountRepo.ExecuteAtomicTransfer(fromAccountNumber, toAccountNumber, amount)
	if err != nil {
		ls.recordOutcome("transfer", start, err)
		// The source was present above; a miss under lock is the destination
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.NewValidationError(apperrors.TransactionDestMissing)
		}
		if errors.Is(err, repositories.ErrAccountNotActive) {
			if source.IsActive() {
				return nil, apperrors.NewValidationError(apperrors.TransactionDestInactive)
			}
			return nil, apperrors.NewValidationError(apperrors.AccountNotActive)
		}
		return nil, err
	}

	ls.recordOutcome("transfer", start, nil)
	amountValue, _ := amount.Float64()
	ls.metrics.RecordGauge("transfer_amount", amountValue, nil)
	ls.logger.Info("transfer completed",
		"from", fromAccountNumber,
		"to", toAccountNumber,
		"amount", amount.String(),
	)
	return record, nil
}

// Balance returns the current balance of an account
func (ls *LedgerService) Balance(accountNumber string) (decimal.Decimal, error) {
	account, err := ls.accountRepo.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return decimal.Zero, &apperrors.AccountNotFoundError{Key: accountNumber}
		}
		return decimal.Zero, apperrors.NewStorageError("read balance", err)
	}
	return account.Balance, nil
}

// MiniStatement returns the most recent records touching an account
func (ls *LedgerService) MiniStatement(accountNumber string) ([]models.TransactionRecord, error) {
	return ls.listRecords(accountNumber, MiniStatementLength)
}

// History returns the full descending transaction history of an account
func (ls *LedgerService) History(accountNumber string) ([]models.TransactionRecord, error) {
	return ls.listRecords(accountNumber, 0)
}

func (ls *LedgerService) listRecords(accountNumber string, limit int) ([]models.TransactionRecord, error) {
	if _, err := ls.accountRepo.GetByAccountNumber(accountNumber); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, &apperrors.AccountNotFoundError{Key: accountNumber}
		}
		return nil, apperrors.NewStorageError("read account", err)
	}

	records, err := ls.transactionRepo.ListByAccount(accountNumber, limit)
	if err != nil {
		return nil, apperrors.NewStorageError("list transactions", err)
	}
	return records, nil
}

func (ls *LedgerService) translateAccountError(accountNumber string, err error) error {
	if errors.Is(err, repositories.ErrAccountNotFound) {
		return &apperrors.AccountNotFoundError{Key: accountNumber}
	}
	if errors.Is(err, repositories.ErrAccountNotActive) {
		return apperrors.NewValidationError(apperrors.AccountNotActive)
	}
	return err
}

func (ls *LedgerService) recordOutcome(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	ls.metrics.IncrementCounter("ledger_operation", map[string]string{
		"operation": operation,
		"status":    status,
	})
	ls.metrics.RecordProcessingTime("ledger_operation", time.Since(start))
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return apperrors.NewValidationError(apperrors.TransactionInvalidAmount)
	}
	return nil
}
