package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType is the direction of a stock movement.
type TransactionType string

const (
	TxEntry TransactionType = "entry" // receipt from supplier, increases stock
	TxExit  TransactionType = "exit"  // sale or consumption, decreases stock
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == TxEntry || t == TxExit
}

// Transaction is one immutable row of the stock ledger. Rows are append
// only: there is no update or delete path, and entities owning transactions
// refuse deletion. The integer key gives insertion order, which is the
// tie-break for "most recent" listings.
type Transaction struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time       `gorm:"index" json:"date"` // server-assigned at commit
	Type      TransactionType `gorm:"type:varchar(10);not null" json:"type" validate:"required,oneof=entry exit"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	Quantity  int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice int64           `gorm:"not null" json:"unit_price" validate:"gt=0"` // snapshot, in cents
	Supplier  string          `gorm:"type:varchar(150);index" json:"supplier"`    // entries only, by name
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User           `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
}

// LineTotal is the monetary value of the movement (unit price x quantity).
func (t *Transaction) LineTotal() int64 {
	return t.UnitPrice * int64(t.Quantity)
}

// TransactionResponse flattens the preloaded relations for API output.
type TransactionResponse struct {
	ID               uint            `json:"id"`
	Date             time.Time       `json:"date"`
	Type             TransactionType `json:"type"`
	ProductID        uuid.UUID       `json:"product_id"`
	ProductName      string          `json:"product_name,omitempty"`
	ProductReference string          `json:"product_reference,omitempty"`
	Quantity         int             `json:"quantity"`
	UnitPrice        int64           `json:"unit_price"`
	Supplier         string          `json:"supplier,omitempty"`
	UserID           uuid.UUID       `json:"user_id"`
	UserName         string          `json:"user_name,omitempty"`
	UserEmail        string          `json:"user_email,omitempty"`
}

// ToResponse converts Transaction to TransactionResponse.
func (t *Transaction) ToResponse() TransactionResponse {
	resp := TransactionResponse{
		ID:        t.ID,
		Date:      t.CreatedAt,
		Type:      t.Type,
		ProductID: t.ProductID,
		Quantity:  t.Quantity,
		UnitPrice: t.UnitPrice,
		Supplier:  t.Supplier,
		UserID:    t.UserID,
	}
	if t.Product != nil {
		resp.ProductName = t.Product.Name
		resp.ProductReference = t.Product.Reference
	}
	if t.User != nil {
		resp.UserName = t.User.FullName()
		resp.UserEmail = t.User.Email
	}
	return resp
}
