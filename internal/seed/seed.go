package seed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	shopdomain "github.com/tailorsoft/atelier/internal/shop/domain"
	"gorm.io/gorm"
)

const defaultShopName = "Main"

// MainShop carries the resolved default shop ID through the fx graph,
// so the request middleware can scope unlabelled requests to the shop
// the seed step actually created.
type MainShop struct {
	ID snowflake.ID
}

// EnsureMainShop seeds the default shop so a fresh install is usable
// without any manual setup, and returns its ID. Calling it again
// resolves the existing row by slug instead of creating a new shop.
func EnsureMainShop(db *gorm.DB, name string) (snowflake.ID, error) {
	return ensureMainShop(db, 0, name)
}

// EnsureMainShopWithID seeds the default shop under a fixed ID, for
// deployments that pin the shop ID in configuration.
func EnsureMainShopWithID(db *gorm.DB, id int64, name string) (snowflake.ID, error) {
	return ensureMainShop(db, snowflake.ID(id), name)
}

func ensureMainShop(db *gorm.DB, id snowflake.ID, name string) (snowflake.ID, error) {
	if db == nil {
		return 0, errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return 0, err
	}

	if strings.TrimSpace(name) == "" {
		name = defaultShopName
	}

	ctx := context.Background()
	var shop shopdomain.Shop
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		shop, txErr = ensureShopTx(ctx, tx, node, id, name)
		return txErr
	})
	if err != nil {
		return 0, err
	}
	return shop.ID, nil
}

func ensureShopTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, id snowflake.ID, name string) (shopdomain.Shop, error) {
	shopSlug := slug.Make(name)

	var shop shopdomain.Shop
	err := tx.WithContext(ctx).
		Where("slug = ?", shopSlug).
		First(&shop).Error
	if err == nil {
		return shop, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return shopdomain.Shop{}, err
	}

	if id == 0 {
		id = node.Generate()
	}
	now := time.Now().UTC()
	shop = shopdomain.Shop{
		ID:        id,
		Name:      name,
		Slug:      shopSlug,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(&shop).Error; err != nil {
		return shopdomain.Shop{}, err
	}
	return shop, nil
}
