package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/tailorsoft/atelier/internal/clock"
	"github.com/tailorsoft/atelier/internal/config"
	customerdomain "github.com/tailorsoft/atelier/internal/customer/domain"
	customerrepo "github.com/tailorsoft/atelier/internal/customer/repository"
	customerservice "github.com/tailorsoft/atelier/internal/customer/service"
	expensedomain "github.com/tailorsoft/atelier/internal/expense/domain"
	expenserepo "github.com/tailorsoft/atelier/internal/expense/repository"
	expenseservice "github.com/tailorsoft/atelier/internal/expense/service"
	"github.com/tailorsoft/atelier/internal/finance/domain"
	orderdomain "github.com/tailorsoft/atelier/internal/order/domain"
	orderrepo "github.com/tailorsoft/atelier/internal/order/repository"
	orderservice "github.com/tailorsoft/atelier/internal/order/service"
	paymentdomain "github.com/tailorsoft/atelier/internal/payment/domain"
	paymentrepo "github.com/tailorsoft/atelier/internal/payment/repository"
	paymentservice "github.com/tailorsoft/atelier/internal/payment/service"
	"github.com/tailorsoft/atelier/internal/shopcontext"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testDBSeq int

type fixture struct {
	finance   domain.Service
	customers customerdomain.Service
	orders    orderdomain.Service
	payments  paymentdomain.Service
	expenses  expensedomain.Service
	clock     *clock.FakeClock
}

func newFixture(t *testing.T, financeCfg config.FinanceConfig) fixture {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:finance_svc_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&customerdomain.Customer{},
		&orderdomain.Order{},
		&paymentdomain.Payment{},
		&expensedomain.Expense{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, _ := snowflake.NewNode(1)
	fake := clock.NewFakeClock(time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC))

	customers := customerservice.New(customerservice.Params{
		DB: db, Log: zap.NewNop(), GenID: node, Clock: fake, Repo: customerrepo.Provide(),
	})
	orders := orderservice.New(orderservice.Params{
		DB: db, Log: zap.NewNop(), GenID: node, Clock: fake, Repo: orderrepo.Provide(), Customers: customers,
	})
	payments := paymentservice.New(paymentservice.Params{
		DB: db, Log: zap.NewNop(), GenID: node, Clock: fake, Repo: paymentrepo.Provide(), Orders: orders,
	})
	expenses := expenseservice.New(expenseservice.Params{
		DB: db, Log: zap.NewNop(), GenID: node, Clock: fake, Repo: expenserepo.Provide(),
	})
	finance := New(Params{
		DB:        db,
		Log:       zap.NewNop(),
		Clock:     fake,
		Finance:   config.NewStaticFinanceConfigHolder(financeCfg),
		Orders:    orderrepo.Provide(),
		Payments:  paymentrepo.Provide(),
		Expenses:  expenserepo.Provide(),
		Customers: customerrepo.Provide(),
	})

	return fixture{
		finance:   finance,
		customers: customers,
		orders:    orders,
		payments:  payments,
		expenses:  expenses,
		clock:     fake,
	}
}

func shopCtx(shopID int64) context.Context {
	return shopcontext.WithShopID(context.Background(), shopID)
}

func (f fixture) seedOrder(t *testing.T, ctx context.Context, price, deposit float64) orderdomain.Order {
	t.Helper()
	customer, err := f.customers.Create(ctx, customerdomain.CreateCustomerRequest{Name: "Amina"})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	order, err := f.orders.Create(ctx, orderdomain.CreateOrderRequest{
		CustomerID:  customer.ID.String(),
		Description: "Suit",
		GarmentType: "suit",
		Price:       price,
		Deposit:     deposit,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}

func TestSummary(t *testing.T) {
	f := newFixture(t, config.DefaultFinanceConfig())
	ctx := shopCtx(1)

	first := f.seedOrder(t, ctx, 1000, 200)
	f.seedOrder(t, ctx, 500, 100)

	_, err := f.payments.Create(ctx, paymentdomain.CreatePaymentRequest{OrderID: first.ID.String(), Amount: 300})
	assert.NoError(t, err)

	_, err = f.expenses.Create(ctx, expensedomain.CreateExpenseRequest{
		Category: "rent", Description: "June rent", Amount: 250,
	})
	assert.NoError(t, err)

	agg, err := f.finance.Summary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1500.0, agg.TotalRevenue)
	assert.Equal(t, 300.0, agg.TotalDeposits)
	assert.Equal(t, 600.0, agg.TotalCollected)
	assert.Equal(t, 900.0, agg.Outstanding)
	assert.Equal(t, 250.0, agg.TotalExpenses)
	assert.Equal(t, 350.0, agg.NetProfit)
}

func TestSummaryDepositsOnlyMode(t *testing.T) {
	cfg := config.DefaultFinanceConfig()
	cfg.TrackPayments = false
	f := newFixture(t, cfg)
	ctx := shopCtx(1)

	order := f.seedOrder(t, ctx, 1000, 200)
	_, err := f.payments.Create(ctx, paymentdomain.CreatePaymentRequest{OrderID: order.ID.String(), Amount: 300})
	assert.NoError(t, err)

	agg, err := f.finance.Summary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 200.0, agg.NetProfit)
}

func TestSummaryEmptyShop(t *testing.T) {
	f := newFixture(t, config.DefaultFinanceConfig())

	agg, err := f.finance.Summary(shopCtx(1))
	assert.NoError(t, err)
	assert.Equal(t, domain.AggregateFinancials{}, agg)
}

func TestSummaryRequiresShop(t *testing.T) {
	f := newFixture(t, config.DefaultFinanceConfig())

	_, err := f.finance.Summary(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidShop)
}

func TestBalancesReflectPaymentsAndDeletions(t *testing.T) {
	f := newFixture(t, config.DefaultFinanceConfig())
	ctx := shopCtx(1)

	order := f.seedOrder(t, ctx, 1000, 200)
	payment, err := f.payments.Create(ctx, paymentdomain.CreatePaymentRequest{OrderID: order.ID.String(), Amount: 800})
	assert.NoError(t, err)

	balances, err := f.finance.Balances(ctx)
	assert.NoError(t, err)
	if assert.Len(t, balances, 1) {
		assert.Equal(t, 0.0, balances[0].Balance)
		assert.True(t, balances[0].FullyPaid)
	}

	// Deleting the payment reopens the balance on the next read.
	assert.NoError(t, f.payments.Delete(ctx, paymentdomain.DeletePaymentRequest{ID: payment.ID.String()}))

	balances, err = f.finance.Balances(ctx)
	assert.NoError(t, err)
	if assert.Len(t, balances, 1) {
		assert.Equal(t, 800.0, balances[0].Balance)
		assert.False(t, balances[0].FullyPaid)
	}
}

func TestMonthlyUsesConfiguredWindow(t *testing.T) {
	cfg := config.DefaultFinanceConfig()
	cfg.MonthWindow = 3
	f := newFixture(t, cfg)
	ctx := shopCtx(1)

	f.seedOrder(t, ctx, 1000, 150)

	series, err := f.finance.Monthly(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, series, 3)
	assert.Equal(t, "Jun", series[2].Month)
	assert.Equal(t, 150.0, series[2].Revenue)
	assert.Zero(t, series[0].Revenue)

	override, err := f.finance.Monthly(ctx, 5)
	assert.NoError(t, err)
	assert.Len(t, override, 5)
	assert.Equal(t, 150.0, override[4].Revenue)
}

func TestCategories(t *testing.T) {
	f := newFixture(t, config.DefaultFinanceConfig())
	ctx := shopCtx(1)

	for _, e := range []struct {
		category string
		amount   float64
	}{
		{"materials", 500},
		{"rent", 900},
		{"materials", 300},
	} {
		_, err := f.expenses.Create(ctx, expensedomain.CreateExpenseRequest{
			Category: e.category, Description: "x", Amount: e.amount,
		})
		assert.NoError(t, err)
	}

	breakdown, err := f.finance.Categories(ctx)
	assert.NoError(t, err)
	if assert.Len(t, breakdown, 2) {
		assert.Equal(t, "rent", breakdown[0].Category)
		assert.Equal(t, 900.0, breakdown[0].Total)
		assert.Equal(t, 800.0, breakdown[1].Total)
	}
}

func TestStats(t *testing.T) {
	f := newFixture(t, config.DefaultFinanceConfig())
	ctx := shopCtx(1)

	first := f.seedOrder(t, ctx, 1000, 100)
	f.seedOrder(t, ctx, 500, 50)
	third := f.seedOrder(t, ctx, 300, 25)

	_, err := f.orders.UpdateStatus(ctx, orderdomain.UpdateOrderStatusRequest{ID: first.ID.String(), Status: "ready"})
	assert.NoError(t, err)
	_, err = f.orders.UpdateStatus(ctx, orderdomain.UpdateOrderStatusRequest{ID: third.ID.String(), Status: "delivered"})
	assert.NoError(t, err)

	stats, err := f.finance.Stats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.ActiveOrders)
	assert.Equal(t, int64(3), stats.TotalCustomers)
	assert.Equal(t, int64(1), stats.PendingDeliveries)
	assert.Equal(t, 175.0, stats.MonthlyRevenue)
}

func TestStatsScopedToShop(t *testing.T) {
	f := newFixture(t, config.DefaultFinanceConfig())

	f.seedOrder(t, shopCtx(1), 1000, 100)

	stats, err := f.finance.Stats(shopCtx(2))
	assert.NoError(t, err)
	assert.Equal(t, domain.DashboardStats{}, stats)
}
