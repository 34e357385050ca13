package service

import (
	"context"

	"github.com/tailorsoft/atelier/internal/clock"
	"github.com/tailorsoft/atelier/internal/config"
	customerdomain "github.com/tailorsoft/atelier/internal/customer/domain"
	expensedomain "github.com/tailorsoft/atelier/internal/expense/domain"
	"github.com/tailorsoft/atelier/internal/finance/domain"
	"github.com/tailorsoft/atelier/internal/finance/rollup"
	orderdomain "github.com/tailorsoft/atelier/internal/order/domain"
	paymentdomain "github.com/tailorsoft/atelier/internal/payment/domain"
	"github.com/tailorsoft/atelier/internal/shopcontext"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Clock     clock.Clock
	Finance   *config.FinanceConfigHolder
	Orders    orderdomain.Repository
	Payments  paymentdomain.Repository
	Expenses  expensedomain.Repository
	Customers customerdomain.Repository
}

// Service loads the live collections and hands them to rollup. Nothing
// is cached between reads: shops are small enough that recomputing is
// cheaper than keeping a snapshot correct.
type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	clock     clock.Clock
	finance   *config.FinanceConfigHolder
	orders    orderdomain.Repository
	payments  paymentdomain.Repository
	expenses  expensedomain.Repository
	customers customerdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("finance.service"),
		clock:     p.Clock,
		finance:   p.Finance,
		orders:    p.Orders,
		payments:  p.Payments,
		expenses:  p.Expenses,
		customers: p.Customers,
	}
}

func (s *Service) Summary(ctx context.Context) (domain.AggregateFinancials, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.AggregateFinancials{}, domain.ErrInvalidShop
	}

	orders, err := s.orders.FindAll(ctx, s.db, shopID)
	if err != nil {
		return domain.AggregateFinancials{}, err
	}
	payments, err := s.payments.FindAll(ctx, s.db, shopID)
	if err != nil {
		return domain.AggregateFinancials{}, err
	}
	expenses, err := s.expenses.FindAll(ctx, s.db, shopID)
	if err != nil {
		return domain.AggregateFinancials{}, err
	}

	cfg := s.finance.Get()
	return rollup.Aggregate(deref(orders), deref(payments), deref(expenses), cfg.TrackPayments), nil
}

// Monthly returns the trailing series. A months value of zero or less
// falls back to the configured window.
func (s *Service) Monthly(ctx context.Context, months int) ([]domain.MonthlyPoint, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return nil, domain.ErrInvalidShop
	}

	orders, err := s.orders.FindAll(ctx, s.db, shopID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.FindAll(ctx, s.db, shopID)
	if err != nil {
		return nil, err
	}

	cfg := s.finance.Get()
	if months <= 0 {
		months = cfg.MonthWindow
	}
	return rollup.MonthlySeries(deref(orders), deref(expenses), s.clock.Now(), months, cfg.Location()), nil
}

func (s *Service) Categories(ctx context.Context) ([]domain.CategoryTotal, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return nil, domain.ErrInvalidShop
	}

	expenses, err := s.expenses.FindAll(ctx, s.db, shopID)
	if err != nil {
		return nil, err
	}

	return rollup.CategoryBreakdown(deref(expenses)), nil
}

func (s *Service) Balances(ctx context.Context) ([]domain.OrderBalance, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return nil, domain.ErrInvalidShop
	}

	orders, err := s.orders.FindAll(ctx, s.db, shopID)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.FindAll(ctx, s.db, shopID)
	if err != nil {
		return nil, err
	}

	return rollup.Balances(deref(orders), deref(payments)), nil
}

func (s *Service) Stats(ctx context.Context) (domain.DashboardStats, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.DashboardStats{}, domain.ErrInvalidShop
	}

	counts, err := s.orders.CountByStatus(ctx, s.db, shopID)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	total, active, pendingDeliveries := rollup.StatusCounts(counts)

	customers, err := s.customers.Count(ctx, s.db, shopID)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	// Monthly revenue is the current bucket of the monthly series:
	// deposits of orders created in the calendar month containing now.
	orders, err := s.orders.FindAll(ctx, s.db, shopID)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	cfg := s.finance.Get()
	series := rollup.MonthlySeries(deref(orders), nil, s.clock.Now(), 1, cfg.Location())

	var monthlyRevenue float64
	if len(series) > 0 {
		monthlyRevenue = series[len(series)-1].Revenue
	}

	return domain.DashboardStats{
		TotalOrders:       total,
		ActiveOrders:      active,
		TotalCustomers:    customers,
		MonthlyRevenue:    monthlyRevenue,
		PendingDeliveries: pendingDeliveries,
	}, nil
}

func deref[T any](items []*T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, *item)
	}
	return out
}
