package model

// Category classifies a product. The set mirrors the store's catalog.
type Category string

const (
	CategoryShirts      Category = "shirts"
	CategoryPants       Category = "pants"
	CategoryDresses     Category = "dresses"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
	CategoryUnderwear   Category = "underwear"
	CategorySportswear  Category = "sportswear"
	CategoryOuterwear   Category = "outerwear"
)

// Categories lists every valid category, in catalog order.
var Categories = []Category{
	CategoryShirts,
	CategoryPants,
	CategoryDresses,
	CategoryShoes,
	CategoryAccessories,
	CategoryUnderwear,
	CategorySportswear,
	CategoryOuterwear,
}

// Size is a garment size.
type Size string

const (
	SizeXS     Size = "XS"
	SizeS      Size = "S"
	SizeM      Size = "M"
	SizeL      Size = "L"
	SizeXL     Size = "XL"
	SizeXXL    Size = "XXL"
	SizeUnique Size = "UNIQUE" // one-size articles
)

// Sizes lists every valid size.
var Sizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL, SizeUnique}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a known size.
func (s Size) IsValid() bool {
	for _, v := range Sizes {
		if v == s {
			return true
		}
	}
	return false
}

// Product is an inventory article. Quantity is mutated exclusively through
// the ledger (service.LedgerService); direct edits bypass the stock
// invariant and are reserved for administrative correction.
type Product struct {
	BaseModel
	Name         string   `gorm:"type:varchar(150);not null" json:"name" validate:"required"`
	Category     Category `gorm:"type:varchar(50);not null" json:"category" validate:"required"`
	Size         Size     `gorm:"type:varchar(10);not null" json:"size" validate:"required"`
	Description  string   `gorm:"type:text" json:"description"`
	Quantity     int      `gorm:"default:0" json:"quantity" validate:"gte=0"`
	Price        int64    `gorm:"not null" json:"price" validate:"gt=0"` // unit price in cents
	Reference    string   `gorm:"type:varchar(50);uniqueIndex;not null" json:"reference" validate:"required"`
	MinimumStock int      `gorm:"default:0" json:"minimum_stock" validate:"gte=0"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`

	Transactions []Transaction `gorm:"foreignKey:ProductID" json:"-"`
}

// IsLowStock reports whether the quantity sits at or below the configured
// minimum threshold.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinimumStock
}
