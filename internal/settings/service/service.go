package service

import (
	"context"
	"strings"

	"github.com/tailorsoft/atelier/internal/clock"
	"github.com/tailorsoft/atelier/internal/settings/domain"
	"github.com/tailorsoft/atelier/internal/shopcontext"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("settings.service"),
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.Settings{}, domain.ErrInvalidShop
	}

	item, err := s.repo.Find(ctx, s.db, shopID)
	if err != nil {
		return domain.Settings{}, err
	}
	if item == nil {
		return domain.Settings{
			ShopID: shopID,
			Theme:  domain.ThemeLight,
		}, nil
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateSettingsRequest) (domain.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	if req.Theme != nil {
		theme := domain.Theme(strings.TrimSpace(*req.Theme))
		if !theme.Valid() {
			return domain.Settings{}, domain.ErrInvalidTheme
		}
		current.Theme = theme
	}
	if req.Currency != nil {
		current.Currency = strings.TrimSpace(*req.Currency)
	}
	current.UpdatedAt = s.clock.Now()

	if err := s.repo.Upsert(ctx, s.db, &current); err != nil {
		return domain.Settings{}, err
	}

	return current, nil
}
