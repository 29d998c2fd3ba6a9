package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionCountsTowardRollup(t *testing.T) {
	completed := &Transaction{Status: TransactionCompleted}
	pending := &Transaction{Status: TransactionPending}
	cancelled := &Transaction{Status: TransactionCancelled}

	assert.True(t, completed.CountsTowardRollup())
	assert.False(t, pending.CountsTowardRollup())
	assert.False(t, cancelled.CountsTowardRollup())
}

func TestTransactionTypeIsValid(t *testing.T) {
	assert.True(t, TransactionPayment.IsValid())
	assert.True(t, TransactionRefund.IsValid())
	assert.True(t, TransactionCommission.IsValid())
	assert.False(t, TransactionType("gift").IsValid())
	assert.False(t, TransactionType("").IsValid())
}
