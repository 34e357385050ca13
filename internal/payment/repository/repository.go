package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/tailorsoft/atelier/internal/payment/domain"
	"github.com/tailorsoft/atelier/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, payment *domain.Payment) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO payments (id, shop_id, order_id, amount, transaction_date, method, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		payment.ID,
		payment.ShopID,
		payment.OrderID,
		payment.Amount,
		payment.TransactionDate,
		payment.Method,
		payment.Notes,
		payment.CreatedAt,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM payments WHERE shop_id = ? AND id = ?`,
		shopID,
		id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) (*domain.Payment, error) {
	var payment domain.Payment
	err := db.WithContext(ctx).Raw(
		`SELECT id, shop_id, order_id, amount, transaction_date, method, notes, created_at
		 FROM payments WHERE shop_id = ? AND id = ?`,
		shopID,
		id,
	).Scan(&payment).Error
	if err != nil {
		return nil, err
	}
	if payment.ID == 0 {
		return nil, nil
	}
	return &payment, nil
}

// List joins each payment with its order for the history view. The
// cursor is applied with qualified columns here because the join makes
// created_at ambiguous for the shared pagination option.
func (r *repo) List(ctx context.Context, db *gorm.DB, shopID snowflake.ID, filter domain.ListPaymentFilter, page pagination.Pagination) ([]*domain.PaymentWithOrder, error) {
	stmt := db.WithContext(ctx).
		Table("payments").
		Select(`payments.id, payments.shop_id, payments.order_id, payments.amount,
			payments.transaction_date, payments.method, payments.notes, payments.created_at,
			COALESCE(orders.description, ?) AS order_description,
			COALESCE(orders.customer_name, ?) AS order_customer_name`,
			domain.UnknownOrderPlaceholder, domain.UnknownOrderPlaceholder).
		Joins("LEFT JOIN orders ON orders.id = payments.order_id AND orders.shop_id = payments.shop_id").
		Where("payments.shop_id = ?", shopID)
	if filter.OrderID != 0 {
		stmt = stmt.Where("payments.order_id = ?", filter.OrderID)
	}

	if page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(page.PageToken)
		if err == nil && cursor != nil {
			if createdAt, perr := time.Parse(time.RFC3339, cursor.CreatedAt); perr == nil {
				stmt = stmt.Where(
					"(payments.created_at < ? OR (payments.created_at = ? AND payments.id < ?))",
					createdAt, createdAt, cursor.ID,
				)
			}
		}
	}
	if page.PageSize > 0 {
		stmt = stmt.Limit(page.PageSize + 1)
	}

	var payments []*domain.PaymentWithOrder
	err := stmt.
		Order("payments.created_at desc, payments.id desc").
		Scan(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB, shopID snowflake.ID) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	err := db.WithContext(ctx).Raw(
		`SELECT id, shop_id, order_id, amount, transaction_date, method, notes, created_at
		 FROM payments WHERE shop_id = ? ORDER BY created_at DESC, id DESC`,
		shopID,
	).Scan(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// FindAllByOrder loads every payment on one order, unpaginated, in
// chronological order. Ledger totals and invoice lines must see the
// whole history, not a page of it.
func (r *repo) FindAllByOrder(ctx context.Context, db *gorm.DB, shopID, orderID snowflake.ID) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	err := db.WithContext(ctx).Raw(
		`SELECT id, shop_id, order_id, amount, transaction_date, method, notes, created_at
		 FROM payments WHERE shop_id = ? AND order_id = ?
		 ORDER BY transaction_date ASC, id ASC`,
		shopID,
		orderID,
	).Scan(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
