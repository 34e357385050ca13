package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Shop is the tenant. The dashboard is effectively single-shop but all
// rows are scoped by shop_id so a second location can share a database.
type Shop struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null" json:"name"`
	Slug      string       `gorm:"not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
