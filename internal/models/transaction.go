package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TxTypeDeposit  = "DEPOSIT"
	TxTypeWithdraw = "WITHDRAW"
	TxTypeTransfer = "TRANSFER"
)

var (
	ErrInvalidTxType    = errors.New("invalid transaction type")
	ErrInvalidTxAmount  = errors.New("transaction amount must be positive")
	ErrInvalidEndpoints = errors.New("transaction endpoints do not match its type")
)

// TransactionRecord is one immutable entry in the ledger. Records are append
// only: never updated, never deleted. A pure deposit has no source account and
// a pure withdrawal has no destination.
type TransactionRecord struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Type              string          `gorm:"type:varchar(20);not null;index" json:"type"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	FromAccountNumber *string         `gorm:"type:varchar(12);index" json:"from_account_number,omitempty"`
	ToAccountNumber   *string         `gorm:"type:varchar(12);index" json:"to_account_number,omitempty"`
	CreatedAt         time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for TransactionRecord
func (t *TransactionRecord) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// Validate validates the record fields
func (t *TransactionRecord) Validate() error {
	if !IsValidTxType(t.Type) {
		return ErrInvalidTxType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTxAmount
	}

	switch t.Type {
	case TxTypeDeposit:
		if t.FromAccountNumber != nil || t.ToAccountNumber == nil {
			return ErrInvalidEndpoints
		}
	case TxTypeWithdraw:
		if t.FromAccountNumber == nil || t.ToAccountNumber != nil {
			return ErrInvalidEndpoints
		}
	case TxTypeTransfer:
		if t.FromAccountNumber == nil || t.ToAccountNumber == nil {
			return ErrInvalidEndpoints
		}
		if *t.FromAccountNumber == *t.ToAccountNumber {
			return ErrInvalidEndpoints
		}
	}

	return nil
}

// Touches reports whether the record involves the given account
func (t *TransactionRecord) Touches(accountNumber string) bool {
	if t.FromAccountNumber != nil && *t.FromAccountNumber == accountNumber {
		return true
	}
	return t.ToAccountNumber != nil && *t.ToAccountNumber == accountNumber
}

// TableName returns the table name for TransactionRecord
func (t *TransactionRecord) TableName() string {
	return "transactions"
}

// IsValidTxType checks if the transaction type is valid
func IsValidTxType(txType string) bool {
	switch txType {
	case TxTypeDeposit, TxTypeWithdraw, TxTypeTransfer:
		return true
	default:
		return false
	}
}

// NewDepositRecord builds the ledger entry for a deposit
func NewDepositRecord(toAccountNumber string, amount decimal.Decimal) *TransactionRecord {
	return &TransactionRecord{
		Type:            TxTypeDeposit,
		Amount:          amount,
		ToAccountNumber: &toAccountNumber,
	}
}

// NewWithdrawRecord builds the ledger entry for a withdrawal
func NewWithdrawRecord(fromAccountNumber string, amount decimal.Decimal) *TransactionRecord {
	return &TransactionRecord{
		Type:              TxTypeWithdraw,
		Amount:            amount,
		FromAccountNumber: &fromAccountNumber,
	}
}

// NewTransferRecord builds the single ledger entry for a transfer
func NewTransferRecord(fromAccountNumber, toAccountNumber string, amount decimal.Decimal) *TransactionRecord {
	return &TransactionRecord{
		Type:              TxTypeTransfer,
		Amount:            amount,
		FromAccountNumber: &fromAccountNumber,
		ToAccountNumber:   &toAccountNumber,
	}
}
