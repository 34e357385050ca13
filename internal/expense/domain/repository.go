package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/tailorsoft/atelier/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, expense *Expense) error
	Delete(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) (*Expense, error)
	List(ctx context.Context, db *gorm.DB, shopID snowflake.ID, filter ListExpenseFilter, page pagination.Pagination) ([]*Expense, error)
	FindAll(ctx context.Context, db *gorm.DB, shopID snowflake.ID) ([]*Expense, error)
}
