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
	"github.com/tailorsoft/atelier/internal/expense/domain"
	"github.com/tailorsoft/atelier/internal/expense/repository"
	"github.com/tailorsoft/atelier/internal/shopcontext"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testDBSeq int

func newTestService(t *testing.T) (domain.Service, *clock.FakeClock) {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:expense_svc_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Expense{}); err != nil {
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

func TestCreateExpenseDefaultsDateToToday(t *testing.T) {
	svc, fake := newTestService(t)

	expense, err := svc.Create(shopCtx(1), domain.CreateExpenseRequest{
		Category:    "materials",
		Description: "Silk fabric, 20m",
		Amount:      1200,
	})
	assert.NoError(t, err)
	assert.Equal(t, fake.Now(), expense.ExpenseDate)
	assert.Equal(t, domain.CategoryMaterials, expense.Category)
}

func TestCreateExpenseValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := shopCtx(1)

	_, err := svc.Create(ctx, domain.CreateExpenseRequest{Category: "fuel", Description: "x", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = svc.Create(ctx, domain.CreateExpenseRequest{Category: "rent", Description: "  ", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidDescription)

	_, err = svc.Create(ctx, domain.CreateExpenseRequest{Category: "rent", Description: "June rent", Amount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestListExpensesByCategory(t *testing.T) {
	svc, fake := newTestService(t)
	ctx := shopCtx(1)

	for _, category := range []string{"rent", "materials", "materials"} {
		_, err := svc.Create(ctx, domain.CreateExpenseRequest{
			Category:    category,
			Description: "item",
			Amount:      100,
		})
		assert.NoError(t, err)
		fake.Advance(time.Minute)
	}

	resp, err := svc.List(ctx, domain.ListExpenseRequest{Category: "materials"})
	assert.NoError(t, err)
	assert.Len(t, resp.Expenses, 2)

	all, err := svc.List(ctx, domain.ListExpenseRequest{})
	assert.NoError(t, err)
	assert.Len(t, all.Expenses, 3)
}

func TestDeleteExpense(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := shopCtx(1)

	expense, err := svc.Create(ctx, domain.CreateExpenseRequest{
		Category:    "equipment",
		Description: "Overlock machine service",
		Amount:      350,
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, domain.DeleteExpenseRequest{ID: expense.ID.String()}))
	err = svc.Delete(ctx, domain.DeleteExpenseRequest{ID: expense.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryLabels(t *testing.T) {
	assert.Equal(t, "Salary & Wages", domain.CategorySalary.Label())
	assert.Equal(t, "misc", domain.Category("misc").Label())
	assert.Len(t, domain.Categories, 8)
}
