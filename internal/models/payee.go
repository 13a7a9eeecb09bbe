package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Payee is a saved beneficiary belonging to one account. The
// (owner, payee account number) pair is unique at the store level so
// concurrent adds cannot produce duplicates.
type Payee struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerAccountNumber string    `gorm:"type:varchar(12);not null;uniqueIndex:idx_owner_payee" json:"owner_account_number"`
	PayeeName          string    `gorm:"type:varchar(100);not null" json:"payee_name"`
	PayeeAccountNumber string    `gorm:"type:varchar(12);not null;uniqueIndex:idx_owner_payee" json:"payee_account_number"`
	PayeeIFSCCode      string    `gorm:"type:varchar(11);not null" json:"payee_ifsc_code"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Payee
func (p *Payee) BeforeCreate(tx *gorm.DB) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return p.Validate()
}

// Validate validates the payee fields
func (p *Payee) Validate() error {
	if len(p.OwnerAccountNumber) != AccountNumberLength {
		return errors.New("owner account number is required")
	}

	if strings.TrimSpace(p.PayeeName) == "" {
		return errors.New("payee name cannot be empty")
	}

	if len(p.PayeeAccountNumber) != AccountNumberLength {
		return errors.New("payee account number is required")
	}

	if p.PayeeAccountNumber == p.OwnerAccountNumber {
		return errors.New("payee cannot be the owning account")
	}

	return nil
}

// TableName returns the table name for Payee
func (p *Payee) TableName() string {
	return "payees"
}
