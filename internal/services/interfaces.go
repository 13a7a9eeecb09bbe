package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ravishankar2114/banking-simulator/internal/models"
)

// AccountServiceInterface defines the contract for account lifecycle operations
type AccountServiceInterface interface {
	Register(params RegisterAccountParams) (*models.Account, error)
	Login(accountNumber, password string) (*models.Account, error)
	Freeze(accountNumber string) (*models.Account, error)
	Unfreeze(accountNumber string) (*models.Account, error)
	UpdateProfile(accountNumber string, params UpdateProfileParams) (*models.Account, error)
	ChangePassword(accountNumber, currentPassword, newPassword string) error
}

// LedgerServiceInterface defines the contract for balance-moving operations
type LedgerServiceInterface interface {
	Deposit(accountNumber string, amount decimal.Decimal) (*models.Account, error)
	Withdraw(accountNumber string, amount decimal.Decimal) (*models.Account, error)
	Transfer(fromAccountNumber, toAccountNumber string, amount decimal.Decimal) (*models.TransactionRecord, error)
	Balance(accountNumber string) (decimal.Decimal, error)
	MiniStatement(accountNumber string) ([]models.TransactionRecord, error)
	History(accountNumber string) ([]models.TransactionRecord, error)
}

// PayeeServiceInterface defines the contract for the payee registry
type PayeeServiceInterface interface {
	Add(ownerAccountNumber, payeeName, payeeAccountNumber, payeeIFSC string) (*models.Payee, error)
	List(ownerAccountNumber string) ([]models.Payee, error)
	Remove(ownerAccountNumber string, payeeID uint) error
}

// AdminServiceInterface defines the contract for administrator operations
type AdminServiceInterface interface {
	CreateAdmin(params CreateAdminParams) (*models.Administrator, error)
	Login(username, password string) (*models.Administrator, error)
	ListAllAccounts() ([]models.Account, error)
	SearchAccount(accountNumber string) (*models.Account, error)
	FreezeAccount(accountNumber string) (*models.Account, error)
	UnfreezeAccount(accountNumber string) (*models.Account, error)
	ListAllTransactions() ([]models.TransactionRecord, error)
}

// OTPServiceInterface defines the contract for the one-time code challenge
type OTPServiceInterface interface {
	Issue(phoneNumber string) (string, error)
	Verify(expected, supplied string) bool
}

// TokenServiceInterface defines the contract for session token handling
type TokenServiceInterface interface {
	Issue(principal *models.Principal) (string, time.Time, error)
	Validate(tokenString string) (*models.Principal, error)
}

// PasswordServiceInterface defines the contract for password hashing and policy
type PasswordServiceInterface interface {
	ValidatePolicy(password string) error
	Hash(password string) (string, error)
	Compare(password, hash string) bool
}

// SMSSenderInterface abstracts the SMS delivery transport
type SMSSenderInterface interface {
	SendSMS(toNumber, body string) error
}

// MetricsRecorderInterface abstracts metrics recording
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
