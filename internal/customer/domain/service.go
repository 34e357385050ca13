package domain

import (
	"context"
	"errors"

	"github.com/tailorsoft/atelier/pkg/db/pagination"
)

type ListCustomerRequest struct {
	PageToken string
	PageSize  int32
	Search    string
}

type ListCustomerFilter struct {
	// Search matches against name and phone, case-insensitive substring.
	Search string
}

type ListCustomerResponse struct {
	pagination.PageInfo
	Customers []Customer `json:"customers"`
}

type CreateCustomerRequest struct {
	Name         string        `json:"name"`
	Phone        string        `json:"phone"`
	Email        string        `json:"email"`
	Address      string        `json:"address"`
	Measurements *Measurements `json:"measurements"`
	Notes        string        `json:"notes"`
}

type UpdateCustomerRequest struct {
	ID           string        `json:"-"`
	Name         *string       `json:"name"`
	Phone        *string       `json:"phone"`
	Email        *string       `json:"email"`
	Address      *string       `json:"address"`
	Measurements *Measurements `json:"measurements"`
	Notes        *string       `json:"notes"`
}

type GetCustomerRequest struct {
	ID string
}

type DeleteCustomerRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (Customer, error)
	List(context.Context, ListCustomerRequest) (ListCustomerResponse, error)
	GetByID(context.Context, GetCustomerRequest) (Customer, error)
	Update(context.Context, UpdateCustomerRequest) (Customer, error)
	Delete(context.Context, DeleteCustomerRequest) error
}

var (
	ErrInvalidShop = errors.New("invalid_shop")
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)
