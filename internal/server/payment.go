package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	paymentdomain "github.com/tailorsoft/atelier/internal/payment/domain"
	"github.com/tailorsoft/atelier/pkg/db/pagination"
)

type createPaymentRequest struct {
	OrderID         string  `json:"order_id"`
	Amount          float64 `json:"amount"`
	TransactionDate string  `json:"transaction_date"`
	Method          string  `json:"method"`
	Notes           string  `json:"notes"`
}

func (s *Server) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	transactionDate, err := parseOptionalTime(req.TransactionDate, false)
	if err != nil {
		AbortWithError(c, newValidationError("transaction_date", "invalid_transaction_date", "invalid transaction_date"))
		return
	}

	resp, err := s.paymentSvc.Create(c.Request.Context(), paymentdomain.CreatePaymentRequest{
		OrderID:         strings.TrimSpace(req.OrderID),
		Amount:          req.Amount,
		TransactionDate: transactionDate,
		Method:          req.Method,
		Notes:           req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPayments(c *gin.Context) {
	var query struct {
		pagination.Pagination
		OrderID string `form:"order_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.paymentSvc.List(c.Request.Context(), paymentdomain.ListPaymentRequest{
		PageToken: query.PageToken,
		PageSize:  int32(query.PageSize),
		OrderID:   strings.TrimSpace(query.OrderID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeletePayment(c *gin.Context) {
	err := s.paymentSvc.Delete(c.Request.Context(), paymentdomain.DeletePaymentRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
