package model

// Role represents user roles in the system. Permission decisions are made
// against the static policy table (internal/policy), keyed by Code.
type Role struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Code        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // ADMIN, STAFF
	Name        string `gorm:"type:varchar(100)" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// Role codes as constants
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// DefaultRoles defines the roles seeded at startup
var DefaultRoles = []Role{
	{
		Code:        RoleAdmin,
		Name:        "Administrator",
		Description: "Full system access",
	},
	{
		Code:        RoleStaff,
		Name:        "Staff",
		Description: "Records transactions and consults the inventory",
	},
}
