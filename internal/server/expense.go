package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	expensedomain "github.com/tailorsoft/atelier/internal/expense/domain"
	"github.com/tailorsoft/atelier/pkg/db/pagination"
)

type createExpenseRequest struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expense_date"`
	Notes       string  `json:"notes"`
}

func (s *Server) CreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	expenseDate, err := parseOptionalTime(req.ExpenseDate, false)
	if err != nil {
		AbortWithError(c, newValidationError("expense_date", "invalid_expense_date", "invalid expense_date"))
		return
	}

	resp, err := s.expenseSvc.Create(c.Request.Context(), expensedomain.CreateExpenseRequest{
		Category:    strings.TrimSpace(req.Category),
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
		Notes:       req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListExpenses(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Category string `form:"category"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.expenseSvc.List(c.Request.Context(), expensedomain.ListExpenseRequest{
		PageToken: query.PageToken,
		PageSize:  int32(query.PageSize),
		Category:  strings.TrimSpace(query.Category),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteExpense(c *gin.Context) {
	err := s.expenseSvc.Delete(c.Request.Context(), expensedomain.DeleteExpenseRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
