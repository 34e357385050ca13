package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/tailorsoft/atelier/internal/clock"
	"github.com/tailorsoft/atelier/internal/observability/metrics"
	orderdomain "github.com/tailorsoft/atelier/internal/order/domain"
	"github.com/tailorsoft/atelier/internal/payment/domain"
	"github.com/tailorsoft/atelier/internal/shopcontext"
	"github.com/tailorsoft/atelier/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Repo    domain.Repository
	Orders  orderdomain.Service
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	clock   clock.Clock
	repo    domain.Repository
	orders  orderdomain.Service
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("payment.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		orders:  p.Orders,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreatePaymentRequest) (domain.Payment, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.Payment{}, domain.ErrInvalidShop
	}

	if req.Amount <= 0 {
		return domain.Payment{}, domain.ErrInvalidAmount
	}

	order, err := s.orders.GetByID(ctx, orderdomain.GetOrderRequest{ID: req.OrderID})
	if err != nil {
		if err == orderdomain.ErrNotFound || err == orderdomain.ErrInvalidID {
			return domain.Payment{}, domain.ErrInvalidOrder
		}
		return domain.Payment{}, err
	}

	now := s.clock.Now()
	transactionDate := now
	if req.TransactionDate != nil {
		transactionDate = *req.TransactionDate
	}

	method := domain.Method(strings.TrimSpace(req.Method))
	if method == "" {
		method = domain.MethodCash
	}

	payment := domain.Payment{
		ID:              s.genID.Generate(),
		ShopID:          shopID,
		OrderID:         order.ID,
		Amount:          req.Amount,
		TransactionDate: transactionDate,
		Method:          method,
		Notes:           req.Notes,
		CreatedAt:       now,
	}

	if err := s.repo.Insert(ctx, s.db, &payment); err != nil {
		return domain.Payment{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordPaymentRecorded(ctx, string(method))
	}
	s.log.Info("payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("order_id", payment.OrderID.String()),
		zap.Float64("amount", payment.Amount),
	)

	return payment, nil
}

func (s *Service) List(ctx context.Context, req domain.ListPaymentRequest) (domain.ListPaymentResponse, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.ListPaymentResponse{}, domain.ErrInvalidShop
	}

	filter := domain.ListPaymentFilter{}
	if raw := strings.TrimSpace(req.OrderID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil || id == 0 {
			return domain.ListPaymentResponse{}, domain.ErrInvalidOrder
		}
		filter.OrderID = int64(id)
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
		return domain.ListPaymentResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(payment *domain.PaymentWithOrder) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        payment.ID.String(),
			CreatedAt: payment.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	payments := make([]domain.PaymentWithOrder, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		payments = append(payments, *item)
	}

	resp := domain.ListPaymentResponse{Payments: payments}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) FindAllByOrder(ctx context.Context, orderID string) ([]domain.Payment, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return nil, domain.ErrInvalidShop
	}

	id, err := snowflake.ParseString(strings.TrimSpace(orderID))
	if err != nil || id == 0 {
		return nil, domain.ErrInvalidOrder
	}

	items, err := s.repo.FindAllByOrder(ctx, s.db, shopID, id)
	if err != nil {
		return nil, err
	}

	payments := make([]domain.Payment, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		payments = append(payments, *item)
	}
	return payments, nil
}

// Delete removes a payment record. The order's deposit is untouched;
// deposits and payments are separate money streams.
func (s *Service) Delete(ctx context.Context, req domain.DeletePaymentRequest) error {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.ErrInvalidShop
	}

	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || id == 0 {
		return domain.ErrInvalidID
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

	s.log.Info("payment deleted",
		zap.String("payment_id", id.String()),
		zap.String("order_id", item.OrderID.String()),
	)

	return nil
}
