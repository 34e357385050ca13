package domain

import (
	"context"
	"errors"
	"time"

	"github.com/tailorsoft/atelier/pkg/db/pagination"
)

type ListOrderRequest struct {
	PageToken  string
	PageSize   int32
	Status     string
	CustomerID string
}

type ListOrderFilter struct {
	Status     Status
	CustomerID int64
}

type ListOrderResponse struct {
	pagination.PageInfo
	Orders []Order `json:"orders"`
}

type CreateOrderRequest struct {
	CustomerID  string     `json:"customer_id"`
	Description string     `json:"description"`
	GarmentType string     `json:"garment_type"`
	Price       float64    `json:"price"`
	Deposit     float64    `json:"deposit"`
	DueDate     *time.Time `json:"due_date"`
	Notes       string     `json:"notes"`
}

type UpdateOrderRequest struct {
	ID          string     `json:"-"`
	Description *string    `json:"description"`
	GarmentType *string    `json:"garment_type"`
	Status      *string    `json:"status"`
	Price       *float64   `json:"price"`
	Deposit     *float64   `json:"deposit"`
	DueDate     *time.Time `json:"due_date"`
	Notes       *string    `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

type GetOrderRequest struct {
	ID string
}

type DeleteOrderRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateOrderRequest) (Order, error)
	List(context.Context, ListOrderRequest) (ListOrderResponse, error)
	GetByID(context.Context, GetOrderRequest) (Order, error)
	Update(context.Context, UpdateOrderRequest) (Order, error)
	UpdateStatus(context.Context, UpdateOrderStatusRequest) (Order, error)
	Delete(context.Context, DeleteOrderRequest) error
}

var (
	ErrInvalidShop        = errors.New("invalid_shop")
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidCustomer    = errors.New("invalid_customer")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidGarmentType = errors.New("invalid_garment_type")
	ErrInvalidStatus      = errors.New("invalid_status")
	ErrInvalidPrice       = errors.New("invalid_price")
	ErrInvalidDeposit     = errors.New("invalid_deposit")
	ErrNotFound           = errors.New("not_found")
)
