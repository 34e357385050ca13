package domain

import (
	"context"
	"errors"
	"time"

	"github.com/tailorsoft/atelier/pkg/db/pagination"
)

type ListExpenseRequest struct {
	PageToken string
	PageSize  int32
	Category  string
}

type ListExpenseFilter struct {
	Category Category
}

type ListExpenseResponse struct {
	pagination.PageInfo
	Expenses []Expense `json:"expenses"`
}

type CreateExpenseRequest struct {
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	ExpenseDate *time.Time `json:"expense_date"`
	Notes       string     `json:"notes"`
}

type DeleteExpenseRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateExpenseRequest) (Expense, error)
	List(context.Context, ListExpenseRequest) (ListExpenseResponse, error)
	Delete(context.Context, DeleteExpenseRequest) error
}

var (
	ErrInvalidShop        = errors.New("invalid_shop")
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidCategory    = errors.New("invalid_category")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidAmount      = errors.New("invalid_amount")
	ErrNotFound           = errors.New("not_found")
)
