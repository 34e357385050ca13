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
	customerdomain "github.com/tailorsoft/atelier/internal/customer/domain"
	customerrepo "github.com/tailorsoft/atelier/internal/customer/repository"
	customerservice "github.com/tailorsoft/atelier/internal/customer/service"
	orderdomain "github.com/tailorsoft/atelier/internal/order/domain"
	orderrepo "github.com/tailorsoft/atelier/internal/order/repository"
	orderservice "github.com/tailorsoft/atelier/internal/order/service"
	"github.com/tailorsoft/atelier/internal/payment/domain"
	"github.com/tailorsoft/atelier/internal/payment/repository"
	"github.com/tailorsoft/atelier/internal/shopcontext"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testDBSeq int

type fixture struct {
	payments  domain.Service
	orders    orderdomain.Service
	customers customerdomain.Service
	clock     *clock.FakeClock
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:payment_svc_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&customerdomain.Customer{}, &orderdomain.Order{}, &domain.Payment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, _ := snowflake.NewNode(1)
	fake := clock.NewFakeClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	customers := customerservice.New(customerservice.Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: fake,
		Repo:  customerrepo.Provide(),
	})
	orders := orderservice.New(orderservice.Params{
		DB:        db,
		Log:       zap.NewNop(),
		GenID:     node,
		Clock:     fake,
		Repo:      orderrepo.Provide(),
		Customers: customers,
	})
	payments := New(Params{
		DB:     db,
		Log:    zap.NewNop(),
		GenID:  node,
		Clock:  fake,
		Repo:   repository.Provide(),
		Orders: orders,
	})
	return fixture{payments: payments, orders: orders, customers: customers, clock: fake}
}

func shopCtx(shopID int64) context.Context {
	return shopcontext.WithShopID(context.Background(), shopID)
}

func (f fixture) createOrder(t *testing.T, ctx context.Context, price, deposit float64) orderdomain.Order {
	t.Helper()

	customer, err := f.customers.Create(ctx, customerdomain.CreateCustomerRequest{Name: "Amina"})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}

	order, err := f.orders.Create(ctx, orderdomain.CreateOrderRequest{
		CustomerID:  customer.ID.String(),
		Description: "Evening dress",
		GarmentType: "dress",
		Price:       price,
		Deposit:     deposit,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}

func TestCreatePaymentDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := shopCtx(1)
	order := f.createOrder(t, ctx, 1000, 200)

	payment, err := f.payments.Create(ctx, domain.CreatePaymentRequest{
		OrderID: order.ID.String(),
		Amount:  300,
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.MethodCash, payment.Method)
	assert.Equal(t, f.clock.Now(), payment.TransactionDate)
}

func TestCreatePaymentRejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t)
	ctx := shopCtx(1)
	order := f.createOrder(t, ctx, 1000, 0)

	_, err := f.payments.Create(ctx, domain.CreatePaymentRequest{OrderID: order.ID.String(), Amount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = f.payments.Create(ctx, domain.CreatePaymentRequest{OrderID: order.ID.String(), Amount: -50})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestCreatePaymentKeepsFreeTextMethod(t *testing.T) {
	f := newFixture(t)
	ctx := shopCtx(1)
	order := f.createOrder(t, ctx, 500, 0)

	payment, err := f.payments.Create(ctx, domain.CreatePaymentRequest{
		OrderID: order.ID.String(),
		Amount:  500,
		Method:  "cash + card split",
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.Method("cash + card split"), payment.Method)
	assert.Equal(t, "cash + card split", payment.Method.Label())
}

func TestListPaymentsFilteredByOrder(t *testing.T) {
	f := newFixture(t)
	ctx := shopCtx(1)
	first := f.createOrder(t, ctx, 1000, 0)
	second := f.createOrder(t, ctx, 2000, 0)

	for _, orderID := range []string{first.ID.String(), first.ID.String(), second.ID.String()} {
		_, err := f.payments.Create(ctx, domain.CreatePaymentRequest{OrderID: orderID, Amount: 100})
		assert.NoError(t, err)
		f.clock.Advance(time.Minute)
	}

	resp, err := f.payments.List(ctx, domain.ListPaymentRequest{OrderID: first.ID.String()})
	assert.NoError(t, err)
	assert.Len(t, resp.Payments, 2)

	all, err := f.payments.List(ctx, domain.ListPaymentRequest{})
	assert.NoError(t, err)
	assert.Len(t, all.Payments, 3)
	assert.Equal(t, "Evening dress", all.Payments[0].OrderDescription)
}

func TestFindAllByOrderReturnsWholeHistory(t *testing.T) {
	f := newFixture(t)
	ctx := shopCtx(1)
	order := f.createOrder(t, ctx, 1000, 100)
	other := f.createOrder(t, ctx, 500, 0)

	f.clock.Set(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	for i := 0; i < 5; i++ {
		_, err := f.payments.Create(ctx, domain.CreatePaymentRequest{
			OrderID: order.ID.String(),
			Amount:  float64(10 * (i + 1)),
		})
		assert.NoError(t, err)
		f.clock.Advance(time.Hour)
	}
	_, err := f.payments.Create(ctx, domain.CreatePaymentRequest{
		OrderID: other.ID.String(),
		Amount:  999,
	})
	assert.NoError(t, err)

	history, err := f.payments.FindAllByOrder(ctx, order.ID.String())
	assert.NoError(t, err)
	assert.Len(t, history, 5)

	// Chronological, order-scoped, and complete.
	var total float64
	for i, payment := range history {
		assert.Equal(t, order.ID, payment.OrderID)
		if i > 0 {
			assert.False(t, payment.TransactionDate.Before(history[i-1].TransactionDate))
		}
		total += payment.Amount
	}
	assert.Equal(t, 150.0, total)
}

func TestFindAllByOrderValidatesInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.payments.FindAllByOrder(context.Background(), "1")
	assert.ErrorIs(t, err, domain.ErrInvalidShop)

	_, err = f.payments.FindAllByOrder(shopCtx(1), "not-an-id")
	assert.ErrorIs(t, err, domain.ErrInvalidOrder)
}

func TestPaymentSurvivesOrderDeletion(t *testing.T) {
	f := newFixture(t)
	ctx := shopCtx(1)
	order := f.createOrder(t, ctx, 1000, 0)

	_, err := f.payments.Create(ctx, domain.CreatePaymentRequest{OrderID: order.ID.String(), Amount: 250})
	assert.NoError(t, err)

	assert.NoError(t, f.orders.Delete(ctx, orderdomain.DeleteOrderRequest{ID: order.ID.String()}))

	resp, err := f.payments.List(ctx, domain.ListPaymentRequest{})
	assert.NoError(t, err)
	if assert.Len(t, resp.Payments, 1) {
		assert.Equal(t, domain.UnknownOrderPlaceholder, resp.Payments[0].OrderDescription)
		assert.Equal(t, domain.UnknownOrderPlaceholder, resp.Payments[0].OrderCustomerName)
	}
}

func TestDeletePaymentLeavesOrderDepositAlone(t *testing.T) {
	f := newFixture(t)
	ctx := shopCtx(1)
	order := f.createOrder(t, ctx, 1000, 400)

	payment, err := f.payments.Create(ctx, domain.CreatePaymentRequest{OrderID: order.ID.String(), Amount: 100})
	assert.NoError(t, err)

	assert.NoError(t, f.payments.Delete(ctx, domain.DeletePaymentRequest{ID: payment.ID.String()}))

	got, err := f.orders.GetByID(ctx, orderdomain.GetOrderRequest{ID: order.ID.String()})
	assert.NoError(t, err)
	assert.Equal(t, 400.0, got.Deposit)

	err = f.payments.Delete(ctx, domain.DeletePaymentRequest{ID: payment.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
