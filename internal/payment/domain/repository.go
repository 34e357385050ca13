package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/tailorsoft/atelier/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, payment *Payment) error
	Delete(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) (*Payment, error)
	List(ctx context.Context, db *gorm.DB, shopID snowflake.ID, filter ListPaymentFilter, page pagination.Pagination) ([]*PaymentWithOrder, error)
	FindAll(ctx context.Context, db *gorm.DB, shopID snowflake.ID) ([]*Payment, error)
	FindAllByOrder(ctx context.Context, db *gorm.DB, shopID, orderID snowflake.ID) ([]*Payment, error)
}
