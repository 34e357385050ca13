package domain

import (
	"context"
	"errors"
	"time"

	"github.com/tailorsoft/atelier/pkg/db/pagination"
)

type ListPaymentRequest struct {
	PageToken string
	PageSize  int32
	OrderID   string
}

type ListPaymentFilter struct {
	OrderID int64
}

type ListPaymentResponse struct {
	pagination.PageInfo
	Payments []PaymentWithOrder `json:"payments"`
}

type CreatePaymentRequest struct {
	OrderID         string     `json:"order_id"`
	Amount          float64    `json:"amount"`
	TransactionDate *time.Time `json:"transaction_date"`
	Method          string     `json:"method"`
	Notes           string     `json:"notes"`
}

type DeletePaymentRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreatePaymentRequest) (Payment, error)
	List(context.Context, ListPaymentRequest) (ListPaymentResponse, error)
	// FindAllByOrder returns the complete payment history of one
	// order, for ledger math and document rendering.
	FindAllByOrder(ctx context.Context, orderID string) ([]Payment, error)
	Delete(context.Context, DeletePaymentRequest) error
}

var (
	ErrInvalidShop   = errors.New("invalid_shop")
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidOrder  = errors.New("invalid_order")
	ErrInvalidAmount = errors.New("invalid_amount")
	ErrNotFound      = errors.New("not_found")
)
