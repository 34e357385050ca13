package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Measurements captures the body measurements taken for a customer.
// All values are centimeters; every field is optional because a walk-in
// customer may be measured incrementally over several visits.
type Measurements struct {
	Chest        *float64 `json:"chest,omitempty"`
	Waist        *float64 `json:"waist,omitempty"`
	Hips         *float64 `json:"hips,omitempty"`
	Shoulders    *float64 `json:"shoulders,omitempty"`
	SleeveLength *float64 `json:"sleeve_length,omitempty"`
	Inseam       *float64 `json:"inseam,omitempty"`
	Outseam      *float64 `json:"outseam,omitempty"`
	Neck         *float64 `json:"neck,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

type Customer struct {
	ID           snowflake.ID                         `gorm:"primaryKey" json:"id"`
	ShopID       snowflake.ID                         `gorm:"not null;index" json:"shop_id"`
	Name         string                               `gorm:"not null" json:"name"`
	Phone        string                               `gorm:"column:phone" json:"phone,omitempty"`
	Email        string                               `gorm:"column:email" json:"email,omitempty"`
	Address      string                               `gorm:"column:address" json:"address,omitempty"`
	Measurements datatypes.JSONType[Measurements]     `gorm:"type:jsonb" json:"measurements"`
	Notes        string                               `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt    time.Time                            `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time                            `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
