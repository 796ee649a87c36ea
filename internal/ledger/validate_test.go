package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

func validTxn(id int) model.Transaction {
	return model.Transaction{
		ID:        id,
		Timestamp: time.Date(2024, 1, id, 10, 0, 0, 0, time.UTC),
		Kind:      model.KindBank,
		Credit:    dec("10"),
		Balance:   dec("10"),
	}
}

func TestValidate_OK(t *testing.T) {
	txns := []model.Transaction{validTxn(1), validTxn(2)}
	assert.Empty(t, Validate(txns))
}

func TestValidate_DuplicateID(t *testing.T) {
	txns := []model.Transaction{validTxn(1), validTxn(1)}
	errs := Validate(txns)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate")
}

func TestValidate_UnknownKind(t *testing.T) {
	txn := validTxn(1)
	txn.Kind = model.Kind("wire")
	errs := Validate([]model.Transaction{txn})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "unknown kind")
}

func TestValidate_NegativeAmounts(t *testing.T) {
	txn := validTxn(1)
	txn.Credit = dec("-5")
	txn.Debit = dec("-1")
	errs := Validate([]model.Transaction{txn})
	assert.Len(t, errs, 2)
}

func TestValidate_EmptyCounterpartyAllowed(t *testing.T) {
	txn := validTxn(1)
	txn.Counterparty = ""
	assert.Empty(t, Validate([]model.Transaction{txn}))
}
