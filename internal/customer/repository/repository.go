package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/tailorsoft/atelier/internal/customer/domain"
	"github.com/tailorsoft/atelier/pkg/db/option"
	"github.com/tailorsoft/atelier/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO customers (id, shop_id, name, phone, email, address, measurements, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		customer.ID,
		customer.ShopID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Measurements,
		customer.Notes,
		customer.CreatedAt,
		customer.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Exec(
		`UPDATE customers
		 SET name = ?, phone = ?, email = ?, address = ?, measurements = ?, notes = ?, updated_at = ?
		 WHERE shop_id = ? AND id = ?`,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Measurements,
		customer.Notes,
		customer.UpdatedAt,
		customer.ShopID,
		customer.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM customers WHERE shop_id = ? AND id = ?`,
		shopID,
		id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, shopID, id snowflake.ID) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, shop_id, name, phone, email, address, measurements, notes, created_at, updated_at
		 FROM customers WHERE shop_id = ? AND id = ?`,
		shopID,
		id,
	).Scan(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == 0 {
		return nil, nil
	}
	return &customer, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, shopID snowflake.ID, filter domain.ListCustomerFilter, page pagination.Pagination) ([]*domain.Customer, error) {
	var customers []*domain.Customer
	stmt := db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("shop_id = ?", shopID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		stmt = stmt.Where("(LOWER(name) LIKE LOWER(?) OR phone LIKE ?)", pattern, pattern)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *repo) Count(ctx context.Context, db *gorm.DB, shopID snowflake.ID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("shop_id = ?", shopID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
