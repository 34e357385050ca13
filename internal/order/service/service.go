package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/tailorsoft/atelier/internal/clock"
	customerdomain "github.com/tailorsoft/atelier/internal/customer/domain"
	"github.com/tailorsoft/atelier/internal/observability/metrics"
	"github.com/tailorsoft/atelier/internal/order/domain"
	"github.com/tailorsoft/atelier/internal/shopcontext"
	"github.com/tailorsoft/atelier/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Clock     clock.Clock
	Repo      domain.Repository
	Customers customerdomain.Service
	Metrics   *metrics.Metrics `optional:"true"`
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	clock     clock.Clock
	repo      domain.Repository
	customers customerdomain.Service
	metrics   *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("order.service"),
		genID:     p.GenID,
		clock:     p.Clock,
		repo:      p.Repo,
		customers: p.Customers,
		metrics:   p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.Order{}, domain.ErrInvalidShop
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return domain.Order{}, domain.ErrInvalidDescription
	}

	garment := domain.GarmentType(strings.TrimSpace(req.GarmentType))
	if !garment.Valid() {
		return domain.Order{}, domain.ErrInvalidGarmentType
	}

	if req.Price < 0 {
		return domain.Order{}, domain.ErrInvalidPrice
	}
	if req.Deposit < 0 {
		return domain.Order{}, domain.ErrInvalidDeposit
	}

	// Snapshot the customer name so the order keeps showing who it was
	// made for even after the customer record changes or goes away.
	customer, err := s.customers.GetByID(ctx, customerdomain.GetCustomerRequest{ID: req.CustomerID})
	if err != nil {
		if err == customerdomain.ErrNotFound || err == customerdomain.ErrInvalidID {
			return domain.Order{}, domain.ErrInvalidCustomer
		}
		return domain.Order{}, err
	}

	now := s.clock.Now()
	order := domain.Order{
		ID:           s.genID.Generate(),
		ShopID:       shopID,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Description:  description,
		GarmentType:  garment,
		Status:       domain.StatusPending,
		Price:        req.Price,
		Deposit:      req.Deposit,
		DueDate:      req.DueDate,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, s.db, &order); err != nil {
		return domain.Order{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordOrderCreated(ctx, string(garment))
	}
	s.log.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", order.CustomerID.String()),
		zap.String("garment_type", string(garment)),
	)

	return order, nil
}

func (s *Service) List(ctx context.Context, req domain.ListOrderRequest) (domain.ListOrderResponse, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.ListOrderResponse{}, domain.ErrInvalidShop
	}

	filter := domain.ListOrderFilter{}
	if status := strings.TrimSpace(req.Status); status != "" {
		parsed := domain.Status(status)
		if !parsed.Valid() {
			return domain.ListOrderResponse{}, domain.ErrInvalidStatus
		}
		filter.Status = parsed
	}
	if raw := strings.TrimSpace(req.CustomerID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil || id == 0 {
			return domain.ListOrderResponse{}, domain.ErrInvalidCustomer
		}
		filter.CustomerID = int64(id)
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
		return domain.ListOrderResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(order *domain.Order) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        order.ID.String(),
			CreatedAt: order.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	orders := make([]domain.Order, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		orders = append(orders, *item)
	}

	resp := domain.ListOrderResponse{Orders: orders}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetOrderRequest) (domain.Order, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.Order{}, domain.ErrInvalidShop
	}

	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Order{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, shopID, id)
	if err != nil {
		return domain.Order{}, err
	}
	if item == nil {
		return domain.Order{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateOrderRequest) (domain.Order, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.Order{}, domain.ErrInvalidShop
	}

	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Order{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, shopID, id)
	if err != nil {
		return domain.Order{}, err
	}
	if item == nil {
		return domain.Order{}, domain.ErrNotFound
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return domain.Order{}, domain.ErrInvalidDescription
		}
		item.Description = description
	}
	if req.GarmentType != nil {
		garment := domain.GarmentType(strings.TrimSpace(*req.GarmentType))
		if !garment.Valid() {
			return domain.Order{}, domain.ErrInvalidGarmentType
		}
		item.GarmentType = garment
	}
	if req.Status != nil {
		status := domain.Status(strings.TrimSpace(*req.Status))
		if !status.Valid() {
			return domain.Order{}, domain.ErrInvalidStatus
		}
		item.Status = status
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return domain.Order{}, domain.ErrInvalidPrice
		}
		item.Price = *req.Price
	}
	if req.Deposit != nil {
		if *req.Deposit < 0 {
			return domain.Order{}, domain.ErrInvalidDeposit
		}
		item.Deposit = *req.Deposit
	}
	if req.DueDate != nil {
		item.DueDate = req.DueDate
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	item.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.Order{}, err
	}

	return *item, nil
}

func (s *Service) UpdateStatus(ctx context.Context, req domain.UpdateOrderStatusRequest) (domain.Order, error) {
	status := strings.TrimSpace(req.Status)
	return s.Update(ctx, domain.UpdateOrderRequest{ID: req.ID, Status: &status})
}

func (s *Service) Delete(ctx context.Context, req domain.DeleteOrderRequest) error {
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

	s.log.Info("order deleted",
		zap.String("order_id", id.String()),
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
