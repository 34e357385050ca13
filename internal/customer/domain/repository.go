package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/tailorsoft/atelier/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	Update(ctx context.Context, db *gorm.DB, customer *Customer) error
	Delete(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) (*Customer, error)
	List(ctx context.Context, db *gorm.DB, shopID snowflake.ID, filter ListCustomerFilter, page pagination.Pagination) ([]*Customer, error)
	Count(ctx context.Context, db *gorm.DB, shopID snowflake.ID) (int64, error)
}
