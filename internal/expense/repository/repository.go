package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/tailorsoft/atelier/internal/expense/domain"
	"github.com/tailorsoft/atelier/pkg/db/option"
	"github.com/tailorsoft/atelier/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, expense *domain.Expense) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO expenses (id, shop_id, category, description, amount, expense_date, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID,
		expense.ShopID,
		expense.Category,
		expense.Description,
		expense.Amount,
		expense.ExpenseDate,
		expense.Notes,
		expense.CreatedAt,
		expense.UpdatedAt,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM expenses WHERE shop_id = ? AND id = ?`,
		shopID,
		id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) (*domain.Expense, error) {
	var expense domain.Expense
	err := db.WithContext(ctx).Raw(
		`SELECT id, shop_id, category, description, amount, expense_date, notes, created_at, updated_at
		 FROM expenses WHERE shop_id = ? AND id = ?`,
		shopID,
		id,
	).Scan(&expense).Error
	if err != nil {
		return nil, err
	}
	if expense.ID == 0 {
		return nil, nil
	}
	return &expense, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, shopID snowflake.ID, filter domain.ListExpenseFilter, page pagination.Pagination) ([]*domain.Expense, error) {
	var expenses []*domain.Expense
	stmt := db.WithContext(ctx).
		Model(&domain.Expense{}).
		Where("shop_id = ?", shopID)
	if filter.Category != "" {
		stmt = stmt.Where("category = ?", filter.Category)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB, shopID snowflake.ID) ([]*domain.Expense, error) {
	var expenses []*domain.Expense
	err := db.WithContext(ctx).Raw(
		`SELECT id, shop_id, category, description, amount, expense_date, notes, created_at, updated_at
		 FROM expenses WHERE shop_id = ? ORDER BY created_at DESC, id DESC`,
		shopID,
	).Scan(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}
