package migration

import (
	"github.com/tailorsoft/atelier/internal/config"
	customerdomain "github.com/tailorsoft/atelier/internal/customer/domain"
	expensedomain "github.com/tailorsoft/atelier/internal/expense/domain"
	orderdomain "github.com/tailorsoft/atelier/internal/order/domain"
	paymentdomain "github.com/tailorsoft/atelier/internal/payment/domain"
	"github.com/tailorsoft/atelier/internal/seed"
	settingsdomain "github.com/tailorsoft/atelier/internal/settings/domain"
	shopdomain "github.com/tailorsoft/atelier/internal/shop/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Provide(migrateAndSeed),
	fx.Invoke(func(seed.MainShop) {}),
)

// migrateAndSeed runs schema migrations, seeds the default shop, and
// returns the shop that unlabelled requests scope to. It is a provider
// rather than an invocation so anything depending on the main shop
// waits for the schema to exist.
func migrateAndSeed(conn *gorm.DB, cfg config.Config) (seed.MainShop, error) {
	if cfg.DBType == "postgres" {
		sqlDB, err := conn.DB()
		if err != nil {
			return seed.MainShop{}, err
		}
		if err := RunMigrations(sqlDB); err != nil {
			return seed.MainShop{}, err
		}
	} else {
		// sqlite and mysql are dev conveniences; AutoMigrate keeps
		// them usable without maintaining per-dialect SQL.
		err := conn.AutoMigrate(
			&shopdomain.Shop{},
			&customerdomain.Customer{},
			&orderdomain.Order{},
			&paymentdomain.Payment{},
			&expensedomain.Expense{},
			&settingsdomain.Settings{},
		)
		if err != nil {
			return seed.MainShop{}, err
		}
	}

	if cfg.DefaultShopID != 0 {
		id, err := seed.EnsureMainShopWithID(conn, cfg.DefaultShopID, cfg.ShopName)
		return seed.MainShop{ID: id}, err
	}
	id, err := seed.EnsureMainShop(conn, cfg.ShopName)
	return seed.MainShop{ID: id}, err
}
