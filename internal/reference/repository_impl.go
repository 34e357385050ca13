package reference

import (
	"context"

	expensedomain "github.com/tailorsoft/atelier/internal/expense/domain"
	orderdomain "github.com/tailorsoft/atelier/internal/order/domain"
	paymentdomain "github.com/tailorsoft/atelier/internal/payment/domain"
	"github.com/tailorsoft/atelier/internal/reference/domain"
)

// repository serves the enumerations that populate form dropdowns.
// They are compiled into the domain packages, so no storage is
// involved; the repository shape keeps the handler wiring uniform.
type repository struct{}

func NewRepository() domain.Repository {
	return &repository{}
}

func (r *repository) ListGarmentTypes(ctx context.Context) ([]domain.Option, error) {
	options := make([]domain.Option, 0, len(orderdomain.GarmentTypes))
	for _, garment := range orderdomain.GarmentTypes {
		options = append(options, domain.Option{
			Value: string(garment),
			Label: garment.Label(),
		})
	}
	return options, nil
}

func (r *repository) ListOrderStatuses(ctx context.Context) ([]domain.Option, error) {
	options := make([]domain.Option, 0, len(orderdomain.Statuses))
	for _, status := range orderdomain.Statuses {
		options = append(options, domain.Option{
			Value: string(status),
			Label: status.Label(),
		})
	}
	return options, nil
}

func (r *repository) ListExpenseCategories(ctx context.Context) ([]domain.Option, error) {
	options := make([]domain.Option, 0, len(expensedomain.Categories))
	for _, category := range expensedomain.Categories {
		options = append(options, domain.Option{
			Value: string(category),
			Label: category.Label(),
		})
	}
	return options, nil
}

func (r *repository) ListPaymentMethods(ctx context.Context) ([]domain.Option, error) {
	options := make([]domain.Option, 0, len(paymentdomain.Methods))
	for _, method := range paymentdomain.Methods {
		options = append(options, domain.Option{
			Value: string(method),
			Label: method.Label(),
		})
	}
	return options, nil
}
