package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAccount() *Account {
	return &Account{
		AccountNumber: "123456789012",
		HolderName:    "Ravi Shankar",
		PasswordHash:  "hashed",
		Email:         "ravi@example.com",
		PhoneNumber:   "+919876543210",
		AccountType:   AccountTypeSavings,
		SecurityLevel: SecurityLevelStandard,
		Status:        AccountStatusActive,
		Balance:       decimal.NewFromFloat(100),
	}
}

func TestAccountValidate(t *testing.T) {
	a := validAccount()
	assert.NoError(t, a.Validate())

	short := validAccount()
	short.AccountNumber = "12345"
	assert.Error(t, short.Validate())

	badType := validAccount()
	badType.AccountType = "CURRENT"
	assert.ErrorIs(t, badType.Validate(), ErrInvalidAccountType)

	badLevel := validAccount()
	badLevel.SecurityLevel = "NONE"
	assert.ErrorIs(t, badLevel.Validate(), ErrInvalidSecurityLevel)

	badStatus := validAccount()
	badStatus.Status = "SUSPENDED"
	assert.ErrorIs(t, badStatus.Validate(), ErrInvalidAccountStatus)

	negative := validAccount()
	negative.Balance = decimal.NewFromFloat(-0.01)
	assert.ErrorIs(t, negative.Validate(), ErrNegativeBalance)
}

func TestAccountFreezeUnfreeze(t *testing.T) {
	a := validAccount()

	require.NoError(t, a.Freeze())
	assert.Equal(t, AccountStatusFrozen, a.Status)
	assert.Error(t, a.Freeze(), "freezing a frozen account must fail")

	require.NoError(t, a.Unfreeze())
	assert.Equal(t, AccountStatusActive, a.Status)
	assert.Error(t, a.Unfreeze(), "unfreezing an active account must fail")
}

func TestAccountDebitCredit(t *testing.T) {
	a := validAccount()

	require.NoError(t, a.Debit(decimal.NewFromFloat(60)))
	assert.True(t, a.Balance.Equal(decimal.NewFromFloat(40)))

	err := a.Debit(decimal.NewFromFloat(60))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, a.Balance.Equal(decimal.NewFromFloat(40)), "failed debit must not change the balance")

	require.NoError(t, a.Credit(decimal.NewFromFloat(25)))
	assert.True(t, a.Balance.Equal(decimal.NewFromFloat(65)))

	assert.Error(t, a.Debit(decimal.Zero))
	assert.Error(t, a.Credit(decimal.NewFromFloat(-5)))
}

func TestAccountDebitCreditRequireActive(t *testing.T) {
	a := validAccount()
	require.NoError(t, a.Freeze())

	assert.ErrorIs(t, a.Debit(decimal.NewFromFloat(1)), ErrAccountNotActive)
	assert.ErrorIs(t, a.Credit(decimal.NewFromFloat(1)), ErrAccountNotActive)
}

func TestCanWithdraw(t *testing.T) {
	a := validAccount()

	assert.True(t, a.CanWithdraw(decimal.NewFromFloat(100)))
	assert.False(t, a.CanWithdraw(decimal.NewFromFloat(100.01)))
	assert.False(t, a.CanWithdraw(decimal.Zero))
}

func TestRequiresOTP(t *testing.T) {
	a := validAccount()
	assert.False(t, a.RequiresOTP())

	a.SecurityLevel = SecurityLevelSecureOTP
	assert.True(t, a.RequiresOTP())
}

func TestGenerateAccountNumber(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := GenerateAccountNumber()
		assert.Len(t, n, AccountNumberLength)
		assert.NotEqual(t, byte('0'), n[0], "account numbers must not have a leading zero")
		for _, c := range n {
			assert.True(t, c >= '0' && c <= '9')
		}
	}
}
