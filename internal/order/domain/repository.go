package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/tailorsoft/atelier/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, order *Order) error
	Update(ctx context.Context, db *gorm.DB, order *Order) error
	Delete(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) (*Order, error)
	List(ctx context.Context, db *gorm.DB, shopID snowflake.ID, filter ListOrderFilter, page pagination.Pagination) ([]*Order, error)
	FindAll(ctx context.Context, db *gorm.DB, shopID snowflake.ID) ([]*Order, error)
	CountByStatus(ctx context.Context, db *gorm.DB, shopID snowflake.ID) (map[Status]int64, error)
}
