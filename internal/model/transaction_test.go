package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTransactionTypeIsValid(t *testing.T) {
	assert.True(t, TxEntry.IsValid())
	assert.True(t, TxExit.IsValid())
	assert.False(t, TransactionType("transfer").IsValid())
	assert.False(t, TransactionType("").IsValid())
}

func TestLineTotal(t *testing.T) {
	tx := Transaction{Quantity: 3, UnitPrice: 4500}
	assert.Equal(t, int64(13500), tx.LineTotal())
}

func TestTransactionToResponse(t *testing.T) {
	productID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	tx := Transaction{
		ID:        42,
		CreatedAt: now,
		Type:      TxEntry,
		ProductID: productID,
		Quantity:  10,
		UnitPrice: 4500,
		Supplier:  "ABC Textiles",
		UserID:    userID,
		Product:   &Product{Name: "Casual Shirt", Reference: "SHI001M"},
		User:      &User{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"},
	}

	resp := tx.ToResponse()
	assert.Equal(t, uint(42), resp.ID)
	assert.Equal(t, now, resp.Date)
	assert.Equal(t, "Casual Shirt", resp.ProductName)
	assert.Equal(t, "SHI001M", resp.ProductReference)
	assert.Equal(t, "Jane Doe", resp.UserName)
	assert.Equal(t, "jane@example.com", resp.UserEmail)
	assert.Equal(t, "ABC Textiles", resp.Supplier)
}

func TestTransactionToResponseWithoutRelations(t *testing.T) {
	tx := Transaction{ID: 1, Type: TxExit, Quantity: 2, UnitPrice: 100}
	resp := tx.ToResponse()
	assert.Empty(t, resp.ProductName)
	assert.Empty(t, resp.UserName)
}
