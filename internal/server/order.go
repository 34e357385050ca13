package server

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tailorsoft/atelier/internal/finance/rollup"
	orderdomain "github.com/tailorsoft/atelier/internal/order/domain"
	paymentdomain "github.com/tailorsoft/atelier/internal/payment/domain"
	"github.com/tailorsoft/atelier/internal/providers/pdf"
	"github.com/tailorsoft/atelier/pkg/db/pagination"
)

func (s *Server) CreateOrder(c *gin.Context) {
	var req orderdomain.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListOrders(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Status     string `form:"status"`
		CustomerID string `form:"customer_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderSvc.List(c.Request.Context(), orderdomain.ListOrderRequest{
		PageToken:  query.PageToken,
		PageSize:   int32(query.PageSize),
		Status:     strings.TrimSpace(query.Status),
		CustomerID: strings.TrimSpace(query.CustomerID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetOrderByID(c *gin.Context) {
	resp, err := s.orderSvc.GetByID(c.Request.Context(), orderdomain.GetOrderRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateOrder(c *gin.Context) {
	var req orderdomain.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.orderSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateOrderStatus(c *gin.Context) {
	var req orderdomain.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.orderSvc.UpdateStatus(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteOrder(c *gin.Context) {
	err := s.orderSvc.Delete(c.Request.Context(), orderdomain.DeleteOrderRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) GetOrderBalance(c *gin.Context) {
	order, payments, err := s.loadOrderWithPayments(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	balance := rollup.OrderBalance(order, payments)
	c.JSON(http.StatusOK, gin.H{"data": balance})
}

func (s *Server) GetOrderInvoice(c *gin.Context) {
	order, payments, err := s.loadOrderWithPayments(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data := s.buildInvoiceData(c.Request.Context(), order, payments)
	reader, err := s.pdfProvider.GenerateInvoice(c.Request.Context(), data)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if s.obsMetrics != nil {
		s.obsMetrics.RecordPDFRendered(c.Request.Context(), "invoice")
	}

	s.servePDF(c, reader, "invoice-"+order.ID.String()+".pdf")
}

func (s *Server) GetOrderReceipt(c *gin.Context) {
	order, payments, err := s.loadOrderWithPayments(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data := pdf.ReceiptData{
		InvoiceData: s.buildInvoiceData(c.Request.Context(), order, payments),
		DatePaid:    s.clock.Now().Format(dateOnlyLayout),
	}
	reader, err := s.pdfProvider.GenerateReceipt(c.Request.Context(), data)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if s.obsMetrics != nil {
		s.obsMetrics.RecordPDFRendered(c.Request.Context(), "receipt")
	}

	s.servePDF(c, reader, "receipt-"+order.ID.String()+".pdf")
}

func (s *Server) loadOrderWithPayments(c *gin.Context) (orderdomain.Order, []paymentdomain.Payment, error) {
	id := strings.TrimSpace(c.Param("id"))

	order, err := s.orderSvc.GetByID(c.Request.Context(), orderdomain.GetOrderRequest{ID: id})
	if err != nil {
		return orderdomain.Order{}, nil, err
	}

	// Full history, not a page: the balance and the printed documents
	// must account for every payment on the order.
	payments, err := s.paymentSvc.FindAllByOrder(c.Request.Context(), id)
	if err != nil {
		return orderdomain.Order{}, nil, err
	}
	return order, payments, nil
}

func (s *Server) buildInvoiceData(ctx context.Context, order orderdomain.Order, payments []paymentdomain.Payment) pdf.InvoiceData {
	balance := rollup.OrderBalance(order, payments)
	formatter := s.formatterFor(ctx)

	lines := make([]pdf.PaymentLine, 0, len(payments))
	for _, payment := range payments {
		lines = append(lines, pdf.PaymentLine{
			Date:   payment.TransactionDate.Format(dateOnlyLayout),
			Method: payment.Method.Label(),
			Amount: formatter.Format(payment.Amount),
		})
	}

	dueDate := ""
	if order.DueDate != nil {
		dueDate = order.DueDate.Format(dateOnlyLayout)
	}

	return pdf.InvoiceData{
		ShopName:      s.cfg.ShopName,
		InvoiceNumber: order.ID.String(),
		Date:          order.CreatedAt.Format(dateOnlyLayout),
		CustomerName:  order.CustomerName,
		Description:   order.Description,
		GarmentType:   order.GarmentType.Label(),
		Status:        order.Status.Label(),
		DueDate:       dueDate,
		Price:         formatter.Format(order.Price),
		Deposit:       formatter.Format(order.Deposit),
		Payments:      lines,
		TotalPaid:     formatter.Format(balance.TotalPaid),
		Balance:       formatter.Format(balance.Balance),
		FullyPaid:     balance.FullyPaid,
	}
}

func (s *Server) servePDF(c *gin.Context, reader io.Reader, filename string) {
	doc, err := io.ReadAll(reader)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", doc)
}
