package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionRecordEndpointRules(t *testing.T) {
	amount := decimal.NewFromFloat(25)

	deposit := NewDepositRecord("123456789012", amount)
	assert.NoError(t, deposit.Validate())
	assert.Nil(t, deposit.FromAccountNumber)

	withdraw := NewWithdrawRecord("123456789012", amount)
	assert.NoError(t, withdraw.Validate())
	assert.Nil(t, withdraw.ToAccountNumber)

	transfer := NewTransferRecord("123456789012", "210987654321", amount)
	assert.NoError(t, transfer.Validate())

	selfTransfer := NewTransferRecord("123456789012", "123456789012", amount)
	assert.ErrorIs(t, selfTransfer.Validate(), ErrInvalidEndpoints)

	from := "123456789012"
	badDeposit := &TransactionRecord{Type: TxTypeDeposit, Amount: amount, FromAccountNumber: &from}
	assert.ErrorIs(t, badDeposit.Validate(), ErrInvalidEndpoints)
}

func TestTransactionRecordAmountRules(t *testing.T) {
	zero := NewDepositRecord("123456789012", decimal.Zero)
	assert.ErrorIs(t, zero.Validate(), ErrInvalidTxAmount)

	negative := NewWithdrawRecord("123456789012", decimal.NewFromFloat(-10))
	assert.ErrorIs(t, negative.Validate(), ErrInvalidTxAmount)

	bogus := &TransactionRecord{Type: "REFUND", Amount: decimal.NewFromFloat(5)}
	assert.ErrorIs(t, bogus.Validate(), ErrInvalidTxType)
}

func TestTransactionRecordTouches(t *testing.T) {
	transfer := NewTransferRecord("123456789012", "210987654321", decimal.NewFromFloat(5))

	assert.True(t, transfer.Touches("123456789012"))
	assert.True(t, transfer.Touches("210987654321"))
	assert.False(t, transfer.Touches("999999999999"))

	deposit := NewDepositRecord("123456789012", decimal.NewFromFloat(5))
	assert.True(t, deposit.Touches("123456789012"))
	assert.False(t, deposit.Touches("210987654321"))
}
