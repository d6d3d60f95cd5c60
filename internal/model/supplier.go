package model

import "time"

// SupplierType distinguishes domestic from foreign suppliers.
type SupplierType string

const (
	SupplierNational      SupplierType = "national"
	SupplierInternational SupplierType = "international"
)

// IsValid reports whether t is a known supplier type.
func (t SupplierType) IsValid() bool {
	return t == SupplierNational || t == SupplierInternational
}

// Supplier holds commercial contact data. Transactions reference suppliers
// by name string rather than by id, kept for compatibility with the
// existing ledger rows.
type Supplier struct {
	BaseModel
	Name          string       `gorm:"type:varchar(150);not null;index" json:"name" validate:"required"`
	Type          SupplierType `gorm:"type:varchar(20);not null" json:"type" validate:"required"`
	ContactPerson string       `gorm:"type:varchar(150)" json:"contact_person"`
	Email         string       `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone         string       `gorm:"type:varchar(20)" json:"phone"`
	Address       string       `gorm:"type:text" json:"address"`
	IsActive      bool         `gorm:"default:true" json:"is_active"`
}

// RegisteredAt is the creation timestamp under its domain name.
func (s *Supplier) RegisteredAt() time.Time {
	return s.CreatedAt
}
