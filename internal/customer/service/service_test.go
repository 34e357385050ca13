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
	"github.com/tailorsoft/atelier/internal/customer/domain"
	"github.com/tailorsoft/atelier/internal/customer/repository"
	"github.com/tailorsoft/atelier/internal/shopcontext"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testDBSeq int

func newTestService(t *testing.T) (domain.Service, *clock.FakeClock) {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:customer_svc_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Customer{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, _ := snowflake.NewNode(1)
	fake := clock.NewFakeClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: fake,
		Repo:  repository.Provide(),
	})
	return svc, fake
}

func shopCtx(shopID int64) context.Context {
	return shopcontext.WithShopID(context.Background(), shopID)
}

func TestCreateCustomer(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := shopCtx(42)

	chest := 102.5
	created, err := svc.Create(ctx, domain.CreateCustomerRequest{
		Name:  "  Amina Hassan  ",
		Phone: "0501234567",
		Measurements: &domain.Measurements{
			Chest: &chest,
			Notes: "prefers loose fit",
		},
	})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Amina Hassan", created.Name)
	assert.Equal(t, "0501234567", created.Phone)

	got, err := svc.GetByID(ctx, domain.GetCustomerRequest{ID: created.ID.String()})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	m := got.Measurements.Data()
	if assert.NotNil(t, m.Chest) {
		assert.Equal(t, 102.5, *m.Chest)
	}
	assert.Equal(t, "prefers loose fit", m.Notes)
}

func TestCreateCustomerRequiresName(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(shopCtx(42), domain.CreateCustomerRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestCreateCustomerRequiresShop(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateCustomerRequest{Name: "Omar"})
	assert.ErrorIs(t, err, domain.ErrInvalidShop)
}

func TestGetCustomerScopedToShop(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(shopCtx(1), domain.CreateCustomerRequest{Name: "Layla"})
	assert.NoError(t, err)

	_, err = svc.GetByID(shopCtx(2), domain.GetCustomerRequest{ID: created.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateCustomerPartial(t *testing.T) {
	svc, fake := newTestService(t)
	ctx := shopCtx(1)

	created, err := svc.Create(ctx, domain.CreateCustomerRequest{
		Name:  "Fatima",
		Phone: "111",
	})
	assert.NoError(t, err)

	fake.Advance(time.Hour)

	phone := "222"
	updated, err := svc.Update(ctx, domain.UpdateCustomerRequest{
		ID:    created.ID.String(),
		Phone: &phone,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Fatima", updated.Name)
	assert.Equal(t, "222", updated.Phone)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateCustomerRejectsEmptyName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := shopCtx(1)

	created, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "Noor"})
	assert.NoError(t, err)

	empty := ""
	_, err = svc.Update(ctx, domain.UpdateCustomerRequest{ID: created.ID.String(), Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestDeleteCustomer(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := shopCtx(1)

	created, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "Zain"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, domain.DeleteCustomerRequest{ID: created.ID.String()}))

	_, err = svc.GetByID(ctx, domain.GetCustomerRequest{ID: created.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, domain.DeleteCustomerRequest{ID: created.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCustomersSearch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := shopCtx(1)

	for _, name := range []string{"Amina Hassan", "Omar Khalid", "Amira Said"} {
		_, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: name})
		assert.NoError(t, err)
	}

	resp, err := svc.List(ctx, domain.ListCustomerRequest{Search: "ami"})
	assert.NoError(t, err)
	assert.Len(t, resp.Customers, 2)
}

func TestListCustomersPagination(t *testing.T) {
	svc, fake := newTestService(t)
	ctx := shopCtx(1)

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: fmt.Sprintf("Customer %d", i)})
		assert.NoError(t, err)
		fake.Advance(time.Minute)
	}

	first, err := svc.List(ctx, domain.ListCustomerRequest{PageSize: 2})
	assert.NoError(t, err)
	assert.Len(t, first.Customers, 2)
	assert.True(t, first.HasMore)
	assert.NotEmpty(t, first.NextPageToken)

	second, err := svc.List(ctx, domain.ListCustomerRequest{PageSize: 2, PageToken: first.NextPageToken})
	assert.NoError(t, err)
	assert.Len(t, second.Customers, 2)

	seen := map[snowflake.ID]bool{}
	for _, c := range append(first.Customers, second.Customers...) {
		assert.False(t, seen[c.ID], "duplicate customer across pages")
		seen[c.ID] = true
	}
}
