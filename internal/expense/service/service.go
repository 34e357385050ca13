package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/tailorsoft/atelier/internal/clock"
	"github.com/tailorsoft/atelier/internal/expense/domain"
	"github.com/tailorsoft/atelier/internal/observability/metrics"
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
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	clock   clock.Clock
	repo    domain.Repository
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("expense.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateExpenseRequest) (domain.Expense, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.Expense{}, domain.ErrInvalidShop
	}

	category := domain.Category(strings.TrimSpace(req.Category))
	if !category.Valid() {
		return domain.Expense{}, domain.ErrInvalidCategory
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return domain.Expense{}, domain.ErrInvalidDescription
	}

	if req.Amount <= 0 {
		return domain.Expense{}, domain.ErrInvalidAmount
	}

	now := s.clock.Now()
	expenseDate := now
	if req.ExpenseDate != nil {
		expenseDate = *req.ExpenseDate
	}

	expense := domain.Expense{
		ID:          s.genID.Generate(),
		ShopID:      shopID,
		Category:    category,
		Description: description,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &expense); err != nil {
		return domain.Expense{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordExpenseRecorded(ctx, string(category))
	}
	s.log.Info("expense recorded",
		zap.String("expense_id", expense.ID.String()),
		zap.String("category", string(category)),
		zap.Float64("amount", expense.Amount),
	)

	return expense, nil
}

func (s *Service) List(ctx context.Context, req domain.ListExpenseRequest) (domain.ListExpenseResponse, error) {
	shopID, ok := shopcontext.ShopIDFromContext(ctx)
	if !ok || shopID == 0 {
		return domain.ListExpenseResponse{}, domain.ErrInvalidShop
	}

	filter := domain.ListExpenseFilter{}
	if raw := strings.TrimSpace(req.Category); raw != "" {
		category := domain.Category(raw)
		if !category.Valid() {
			return domain.ListExpenseResponse{}, domain.ErrInvalidCategory
		}
		filter.Category = category
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
		return domain.ListExpenseResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(expense *domain.Expense) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        expense.ID.String(),
			CreatedAt: expense.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	expenses := make([]domain.Expense, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		expenses = append(expenses, *item)
	}

	resp := domain.ListExpenseResponse{Expenses: expenses}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) Delete(ctx context.Context, req domain.DeleteExpenseRequest) error {
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

	return s.repo.Delete(ctx, s.db, shopID, id)
}
