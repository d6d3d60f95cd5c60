package service

import (
	"testing"

	"go-inventory-api/internal/model"
	"go-inventory-api/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyStockChange(t *testing.T) {
	t.Run("entry adds with no upper bound", func(t *testing.T) {
		got, err := applyStockChange(10, model.TxEntry, 50)
		require.NoError(t, err)
		assert.Equal(t, 60, got)
	})

	t.Run("exit subtracts", func(t *testing.T) {
		got, err := applyStockChange(60, model.TxExit, 3)
		require.NoError(t, err)
		assert.Equal(t, 57, got)
	})

	t.Run("exit to exactly zero is allowed", func(t *testing.T) {
		got, err := applyStockChange(7, model.TxExit, 7)
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("exit exceeding stock fails and carries the figures", func(t *testing.T) {
		_, err := applyStockChange(4, model.TxExit, 100)
		require.Error(t, err)

		var stockErr *apperr.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 4, stockErr.Current)
		assert.Equal(t, 100, stockErr.Requested)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		_, err := applyStockChange(10, model.TxEntry, 0)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

		_, err = applyStockChange(10, model.TxExit, -5)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := applyStockChange(10, model.TransactionType("transfer"), 5)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

// Exercises the sequence from the product lifecycle: start at 10 with
// minimum 5, receive 50, sell 3, sell 53, then oversell.
func TestStockLifecycle(t *testing.T) {
	const minimum = 5
	stock := 10

	stock, err := applyStockChange(stock, model.TxEntry, 50)
	require.NoError(t, err)
	assert.Equal(t, 60, stock)

	after, err := applyStockChange(stock, model.TxExit, 3)
	require.NoError(t, err)
	assert.Equal(t, 57, after)
	assert.Nil(t, exitLowStockWarning(stock, after, minimum))
	stock = after

	after, err = applyStockChange(stock, model.TxExit, 53)
	require.NoError(t, err)
	assert.Equal(t, 4, after)

	warning := exitLowStockWarning(stock, after, minimum)
	require.NotNil(t, warning)
	assert.Equal(t, 57, warning.CurrentStock)
	assert.Equal(t, 4, warning.StockAfter)
	assert.Equal(t, 5, warning.MinimumStock)
	stock = after

	_, err = applyStockChange(stock, model.TxExit, 100)
	var stockErr *apperr.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 4, stockErr.Current)
	assert.Equal(t, 100, stockErr.Requested)
	assert.Equal(t, 4, stock) // unchanged
}

func TestExitLowStockWarning(t *testing.T) {
	t.Run("above threshold stays silent", func(t *testing.T) {
		assert.Nil(t, exitLowStockWarning(10, 6, 5))
	})

	t.Run("landing exactly on the threshold warns", func(t *testing.T) {
		w := exitLowStockWarning(10, 5, 5)
		require.NotNil(t, w)
		assert.Equal(t, "low_stock", w.Warning)
	})

	t.Run("landing below the threshold warns", func(t *testing.T) {
		w := exitLowStockWarning(3, 1, 5)
		require.NotNil(t, w)
		assert.Equal(t, 3, w.CurrentStock)
		assert.Equal(t, 1, w.StockAfter)
	})
}

// The ledger invariant: for any mix of entries and exits the final stock
// is start + sum(entries) - sum(exits), and never negative in between.
func TestLedgerInvariant(t *testing.T) {
	type movement struct {
		txType model.TransactionType
		qty    int
	}
	movements := []movement{
		{model.TxEntry, 20}, {model.TxExit, 5}, {model.TxEntry, 3},
		{model.TxExit, 10}, {model.TxExit, 8}, {model.TxEntry, 100},
		{model.TxExit, 100},
	}

	stock := 0
	entries, exits := 0, 0
	for _, m := range movements {
		next, err := applyStockChange(stock, m.txType, m.qty)
		require.NoError(t, err)
		require.GreaterOrEqual(t, next, 0)
		if m.txType == model.TxEntry {
			entries += m.qty
		} else {
			exits += m.qty
		}
		stock = next
	}

	assert.Equal(t, entries-exits, stock)
}
