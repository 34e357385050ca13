package domain

import "context"

type Repository interface {
	ListGarmentTypes(ctx context.Context) ([]Option, error)
	ListOrderStatuses(ctx context.Context) ([]Option, error)
	ListExpenseCategories(ctx context.Context) ([]Option, error)
	ListPaymentMethods(ctx context.Context) ([]Option, error)
}
