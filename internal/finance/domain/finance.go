package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// AggregateFinancials is the shop-wide money summary. Every figure is
// recomputed from the live order, payment and expense collections on
// each read; nothing here is persisted.
type AggregateFinancials struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalDeposits  float64 `json:"total_deposits"`
	TotalCollected float64 `json:"total_collected"`
	Outstanding    float64 `json:"outstanding"`
	TotalExpenses  float64 `json:"total_expenses"`
	NetProfit      float64 `json:"net_profit"`
}

// OrderBalance is the per-order settlement view.
type OrderBalance struct {
	OrderID      snowflake.ID `json:"order_id"`
	CustomerName string       `json:"customer_name"`
	Description  string       `json:"description"`
	Status       string       `json:"status"`
	Price        float64      `json:"price"`
	Deposit      float64      `json:"deposit"`
	TotalPaid    float64      `json:"total_paid"`
	Balance      float64      `json:"balance"`
	FullyPaid    bool         `json:"fully_paid"`
}

// MonthlyPoint is one bucket of the trailing monthly series.
type MonthlyPoint struct {
	Month    string  `json:"month"`
	Year     int     `json:"year"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// CategoryTotal is one row of the expense category breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Total    float64 `json:"total"`
}

type DashboardStats struct {
	TotalOrders       int64   `json:"total_orders"`
	ActiveOrders      int64   `json:"active_orders"`
	TotalCustomers    int64   `json:"total_customers"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	PendingDeliveries int64   `json:"pending_deliveries"`
}

type Service interface {
	Summary(ctx context.Context) (AggregateFinancials, error)
	Monthly(ctx context.Context, months int) ([]MonthlyPoint, error)
	Categories(ctx context.Context) ([]CategoryTotal, error)
	Balances(ctx context.Context) ([]OrderBalance, error)
	Stats(ctx context.Context) (DashboardStats, error)
}

var ErrInvalidShop = errors.New("invalid_shop")
