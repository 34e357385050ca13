package pdf

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// PaymentLine is one settled payment printed on an invoice or receipt.
type PaymentLine struct {
	Date   string
	Method string
	Amount string
}

// InvoiceData is everything the renderer needs, already formatted.
// Money fields arrive as display strings so the document matches the
// dashboard exactly.
type InvoiceData struct {
	ShopName      string
	InvoiceNumber string
	Date          string
	CustomerName  string
	Description   string
	GarmentType   string
	Status        string
	DueDate       string
	Price         string
	Deposit       string
	Payments      []PaymentLine
	TotalPaid     string
	Balance       string
	FullyPaid     bool
}

// ReceiptData is an invoice plus the settlement date.
type ReceiptData struct {
	InvoiceData
	DatePaid string
}

type Provider interface {
	GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error)
	GenerateReceipt(ctx context.Context, data ReceiptData) (io.Reader, error)
}

type PDFProvider struct {
	log *zap.Logger
}

func NewProvider(log *zap.Logger) Provider {
	return &PDFProvider{log: log.Named("providers.pdf")}
}

var Module = fx.Module("providers.pdf",
	fx.Provide(NewProvider),
)
