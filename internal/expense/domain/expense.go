package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Category string

const (
	CategorySalary      Category = "salary"
	CategoryMaterials   Category = "materials"
	CategoryAccessories Category = "accessories"
	CategoryRent        Category = "rent"
	CategoryEquipment   Category = "equipment"
	CategoryMarketing   Category = "marketing"
	CategoryTransport   Category = "transport"
	CategoryOther       Category = "other"
)

var Categories = []Category{
	CategorySalary,
	CategoryMaterials,
	CategoryAccessories,
	CategoryRent,
	CategoryEquipment,
	CategoryMarketing,
	CategoryTransport,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategorySalary:      "Salary & Wages",
	CategoryMaterials:   "Materials & Fabric",
	CategoryAccessories: "Accessories & Supplies",
	CategoryRent:        "Rent & Utilities",
	CategoryEquipment:   "Equipment & Maintenance",
	CategoryMarketing:   "Marketing & Advertising",
	CategoryTransport:   "Transport & Delivery",
	CategoryOther:       "Other Expenses",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

type Expense struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	ShopID      snowflake.ID `gorm:"not null;index" json:"shop_id"`
	Category    Category     `gorm:"not null" json:"category"`
	Description string       `gorm:"not null" json:"description"`
	Amount      float64      `gorm:"not null" json:"amount"`
	ExpenseDate time.Time    `gorm:"not null" json:"expense_date"`
	Notes       string       `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
