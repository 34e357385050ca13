package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Settings is per-shop display preferences. One row per shop, created
// lazily with defaults on first read. Currency is the display symbol
// shown on invoices and finance figures; empty means the service-wide
// default applies.
type Settings struct {
	ShopID    snowflake.ID `gorm:"primaryKey" json:"shop_id"`
	Theme     Theme        `gorm:"not null;default:light" json:"theme"`
	Currency  string       `gorm:"not null;default:''" json:"currency"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

type UpdateSettingsRequest struct {
	Theme    *string `json:"theme"`
	Currency *string `json:"currency"`
}

type Repository interface {
	Find(ctx context.Context, db *gorm.DB, shopID snowflake.ID) (*Settings, error)
	Upsert(ctx context.Context, db *gorm.DB, settings *Settings) error
}

type Service interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
}

var (
	ErrInvalidShop  = errors.New("invalid_shop")
	ErrInvalidTheme = errors.New("invalid_theme")
)
