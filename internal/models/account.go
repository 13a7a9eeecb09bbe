package models

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeSavings  = "SAVINGS"
	AccountTypeChecking = "CHECKING"

	SecurityLevelStandard  = "STANDARD"
	SecurityLevelSecureOTP = "SECURE_OTP"

	AccountStatusActive = "ACTIVE"
	AccountStatusFrozen = "FROZEN"
	AccountStatusClosed = "CLOSED"

	AccountNumberLength = 12
)

var (
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrInvalidAccountStatus = errors.New("invalid account status")
	ErrInvalidSecurityLevel = errors.New("invalid security level")
	ErrNegativeBalance      = errors.New("balance cannot be negative")
	ErrAccountNotActive     = errors.New("account is not active")
	ErrInsufficientFunds    = errors.New("insufficient funds")
)

// Account represents a customer account. The account number is the identity;
// balance and status are mutated only through the lifecycle and ledger
// operations, never directly.
type Account struct {
	AccountNumber string          `gorm:"type:varchar(12);primaryKey" json:"account_number"`
	HolderName    string          `gorm:"type:varchar(100);not null" json:"holder_name"`
	PasswordHash  string          `gorm:"type:varchar(255);not null" json:"-"`
	Email         string          `gorm:"type:varchar(255);not null" json:"email"`
	PhoneNumber   string          `gorm:"type:varchar(20);not null" json:"phone_number"`
	FullAddress   string          `gorm:"type:text" json:"full_address"`
	PANNumber     string          `gorm:"type:varchar(10)" json:"pan_number,omitempty"`
	AadharNumber  string          `gorm:"type:varchar(12)" json:"aadhar_number,omitempty"`
	IFSCCode      string          `gorm:"type:varchar(11)" json:"ifsc_code,omitempty"`
	AccountType   string          `gorm:"type:varchar(20);not null" json:"account_type"`
	SecurityLevel string          `gorm:"type:varchar(20);not null;default:'STANDARD'" json:"security_level"`
	Status        string          `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	Balance       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = AccountStatusActive
	}
	if a.SecurityLevel == "" {
		a.SecurityLevel = SecurityLevelStandard
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if len(a.AccountNumber) != AccountNumberLength {
		return fmt.Errorf("account number must be %d digits", AccountNumberLength)
	}

	if a.HolderName == "" {
		return errors.New("holder name is required")
	}

	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	if !IsValidSecurityLevel(a.SecurityLevel) {
		return ErrInvalidSecurityLevel
	}

	if !IsValidAccountStatus(a.Status) {
		return ErrInvalidAccountStatus
	}

	if a.Balance.LessThan(decimal.Zero) {
		return ErrNegativeBalance
	}

	return nil
}

// IsActive returns true if the account is active
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// RequiresOTP returns true when a login must complete an OTP challenge
func (a *Account) RequiresOTP() bool {
	return a.SecurityLevel == SecurityLevelSecureOTP
}

// Freeze moves the account to FROZEN. Fails if it is already frozen.
func (a *Account) Freeze() error {
	if a.Status == AccountStatusFrozen {
		return errors.New("this account is already frozen")
	}
	a.Status = AccountStatusFrozen
	return nil
}

// Unfreeze moves a frozen account back to ACTIVE. Fails if not frozen.
func (a *Account) Unfreeze() error {
	if a.Status != AccountStatusFrozen {
		return errors.New("this account is not frozen")
	}
	a.Status = AccountStatusActive
	return nil
}

// CanWithdraw checks if the amount can be withdrawn
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return a.IsActive() && amount.GreaterThan(decimal.Zero) && a.Balance.GreaterThanOrEqual(amount)
}

// Debit subtracts the amount from the balance
func (a *Account) Debit(amount decimal.Decimal) error {
	if !a.IsActive() {
		return ErrAccountNotActive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("debit amount must be positive")
	}

	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Credit adds the amount to the balance
func (a *Account) Credit(amount decimal.Decimal) error {
	if !a.IsActive() {
		return ErrAccountNotActive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("credit amount must be positive")
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// Helper functions

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeSavings, AccountTypeChecking:
		return true
	default:
		return false
	}
}

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountStatusActive, AccountStatusFrozen, AccountStatusClosed:
		return true
	default:
		return false
	}
}

// IsValidSecurityLevel checks if the security level is valid
func IsValidSecurityLevel(level string) bool {
	switch level {
	case SecurityLevelStandard, SecurityLevelSecureOTP:
		return true
	default:
		return false
	}
}

// GenerateAccountNumber generates a random 12-digit account number. Uniqueness
// is enforced at the store, not here; callers retry on collision.
func GenerateAccountNumber() string {
	first := rand.Intn(9) + 1
	rest := make([]byte, AccountNumberLength-1)
	for i := range rest {
		rest[i] = byte('0' + rand.Intn(10))
	}
	return fmt.Sprintf("%d%s", first, rest)
}
