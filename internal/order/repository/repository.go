package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/tailorsoft/atelier/internal/order/domain"
	"github.com/tailorsoft/atelier/pkg/db/option"
	"github.com/tailorsoft/atelier/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO orders (id, shop_id, customer_id, customer_name, description, garment_type, status, price, deposit, due_date, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID,
		order.ShopID,
		order.CustomerID,
		order.CustomerName,
		order.Description,
		order.GarmentType,
		order.Status,
		order.Price,
		order.Deposit,
		order.DueDate,
		order.Notes,
		order.CreatedAt,
		order.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).Exec(
		`UPDATE orders
		 SET description = ?, garment_type = ?, status = ?, price = ?, deposit = ?, due_date = ?, notes = ?, updated_at = ?
		 WHERE shop_id = ? AND id = ?`,
		order.Description,
		order.GarmentType,
		order.Status,
		order.Price,
		order.Deposit,
		order.DueDate,
		order.Notes,
		order.UpdatedAt,
		order.ShopID,
		order.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM orders WHERE shop_id = ? AND id = ?`,
		shopID,
		id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) (*domain.Order, error) {
	var order domain.Order
	err := db.WithContext(ctx).Raw(
		`SELECT id, shop_id, customer_id, customer_name, description, garment_type, status, price, deposit, due_date, notes, created_at, updated_at
		 FROM orders WHERE shop_id = ? AND id = ?`,
		shopID,
		id,
	).Scan(&order).Error
	if err != nil {
		return nil, err
	}
	if order.ID == 0 {
		return nil, nil
	}
	return &order, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, shopID snowflake.ID, filter domain.ListOrderFilter, page pagination.Pagination) ([]*domain.Order, error) {
	var orders []*domain.Order
	stmt := db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("shop_id = ?", shopID)
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != 0 {
		stmt = stmt.Where("customer_id = ?", filter.CustomerID)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB, shopID snowflake.ID) ([]*domain.Order, error) {
	var orders []*domain.Order
	err := db.WithContext(ctx).Raw(
		`SELECT id, shop_id, customer_id, customer_name, description, garment_type, status, price, deposit, due_date, notes, created_at, updated_at
		 FROM orders WHERE shop_id = ? ORDER BY created_at DESC, id DESC`,
		shopID,
	).Scan(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repo) CountByStatus(ctx context.Context, db *gorm.DB, shopID snowflake.ID) (map[domain.Status]int64, error) {
	var rows []struct {
		Status domain.Status
		Total  int64
	}
	err := db.WithContext(ctx).Raw(
		`SELECT status, COUNT(*) AS total FROM orders WHERE shop_id = ? GROUP BY status`,
		shopID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
