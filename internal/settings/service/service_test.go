package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/tailorsoft/atelier/internal/clock"
	"github.com/tailorsoft/atelier/internal/settings/domain"
	"github.com/tailorsoft/atelier/internal/settings/repository"
	"github.com/tailorsoft/atelier/internal/shopcontext"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testDBSeq int

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:settings_svc_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Settings{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Clock: clock.NewFakeClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
	})
}

func shopCtx(shopID int64) context.Context {
	return shopcontext.WithShopID(context.Background(), shopID)
}

func TestGetDefaultsToLight(t *testing.T) {
	svc := newTestService(t)

	settings, err := svc.Get(shopCtx(1))
	assert.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, settings.Theme)
}

func TestUpdateTheme(t *testing.T) {
	svc := newTestService(t)
	ctx := shopCtx(1)

	dark := "dark"
	updated, err := svc.Update(ctx, domain.UpdateSettingsRequest{Theme: &dark})
	assert.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, updated.Theme)

	got, err := svc.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, got.Theme)

	// Updating again flips it back.
	light := "light"
	_, err = svc.Update(ctx, domain.UpdateSettingsRequest{Theme: &light})
	assert.NoError(t, err)
	got, err = svc.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, got.Theme)
}

func TestUpdateCurrencyPreference(t *testing.T) {
	svc := newTestService(t)
	ctx := shopCtx(1)

	usd := "USD"
	updated, err := svc.Update(ctx, domain.UpdateSettingsRequest{Currency: &usd})
	assert.NoError(t, err)
	assert.Equal(t, "USD", updated.Currency)
	assert.Equal(t, domain.ThemeLight, updated.Theme)

	got, err := svc.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "USD", got.Currency)

	// Clearing the preference reverts the shop to the service default.
	blank := "  "
	got, err = svc.Update(ctx, domain.UpdateSettingsRequest{Currency: &blank})
	assert.NoError(t, err)
	assert.Empty(t, got.Currency)
}

func TestUpdateRejectsUnknownTheme(t *testing.T) {
	svc := newTestService(t)

	neon := "neon"
	_, err := svc.Update(shopCtx(1), domain.UpdateSettingsRequest{Theme: &neon})
	assert.ErrorIs(t, err, domain.ErrInvalidTheme)
}

func TestSettingsScopedPerShop(t *testing.T) {
	svc := newTestService(t)

	dark := "dark"
	_, err := svc.Update(shopCtx(1), domain.UpdateSettingsRequest{Theme: &dark})
	assert.NoError(t, err)

	other, err := svc.Get(shopCtx(2))
	assert.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, other.Theme)
}
