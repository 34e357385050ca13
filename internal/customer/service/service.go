package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/tailorsoft/atelier/internal/clock"
	"github.com/tailorsoft/atelier/internal/customer/domain"
	"github.com/tailorsoft/atelier/internal/shopcontext"
	"github.com/tailorsoft/atelier/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.Customer, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.Customer{}, domain.ErrInvalidShop
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Customer{}, domain.ErrInvalidName
	}

	measurements := domain.Measurements{}
	if req.Measurements != nil {
		measurements = *req.Measurements
	}

	now := s.clock.Now()
	customer := domain.Customer{
		ID:           s.genID.Generate(),
		ShopID:       shopID,
		Name:         name,
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		Address:      strings.TrimSpace(req.Address),
		Measurements: datatypes.NewJSONType(measurements),
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		return domain.Customer{}, err
	}

	s.log.Info("customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("shop_id", shopID.String()),
	)

	return customer, nil
}

func (s *Service) List(ctx context.Context, req domain.ListCustomerRequest) (domain.ListCustomerResponse, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.ListCustomerResponse{}, domain.ErrInvalidShop
	}

	filter := domain.ListCustomerFilter{
		Search: strings.TrimSpace(req.Search),
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, shopID, filter, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListCustomerResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(customer *domain.Customer) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        customer.ID.String(),
			CreatedAt: customer.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	customers := make([]domain.Customer, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		customers = append(customers, *item)
	}

	resp := domain.ListCustomerResponse{Customers: customers}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetCustomerRequest) (domain.Customer, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.Customer{}, domain.ErrInvalidShop
	}

	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Customer{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, shopID, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if item == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCustomerRequest) (domain.Customer, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.Customer{}, domain.ErrInvalidShop
	}

	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Customer{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, shopID, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if item == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Customer{}, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.Phone != nil {
		item.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		item.Email = strings.TrimSpace(*req.Email)
	}
	if req.Address != nil {
		item.Address = strings.TrimSpace(*req.Address)
	}
	if req.Measurements != nil {
		item.Measurements = datatypes.NewJSONType(*req.Measurements)
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	item.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.Customer{}, err
	}

	return *item, nil
}

func (s *Service) Delete(ctx context.Context, req domain.DeleteCustomerRequest) error {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.ErrInvalidShop
	}

	id, err := s.parseID(req.ID)
	if err != nil {
		return err
	}

	item, err := s.repo.FindByID(ctx, s.db, shopID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, s.db, shopID, id); err != nil {
		return err
	}

	s.log.Info("customer deleted",
		zap.String("customer_id", id.String()),
		zap.String("shop_id", shopID.String()),
	)

	return nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
