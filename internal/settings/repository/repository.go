package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/tailorsoft/atelier/internal/settings/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Find(ctx context.Context, db *gorm.DB, shopID snowflake.ID) (*domain.Settings, error) {
	var settings domain.Settings
	err := db.WithContext(ctx).Raw(
		`SELECT shop_id, theme, currency, updated_at FROM settings WHERE shop_id = ?`,
		shopID,
	).Scan(&settings).Error
	if err != nil {
		return nil, err
	}
	if settings.ShopID == 0 {
		return nil, nil
	}
	return &settings, nil
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, settings *domain.Settings) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shop_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"theme", "currency", "updated_at"}),
		}).
		Create(settings).Error
}
