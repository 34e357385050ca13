package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

func (p *PDFProvider) GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(25,
		text.NewCol(8, data.ShopName, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(4, "Invoice", props.Text{
			Size:  16,
			Align: align.Right,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New("Invoice number: "+data.InvoiceNumber, props.Text{Top: 0}),
			text.New("Date: "+data.Date, props.Text{Top: 4}),
			text.New("Due date: "+data.DueDate, props.Text{Top: 8}),
		),
		col.New(6).Add(
			text.New("Customer", props.Text{Style: fontstyle.Bold}),
			text.New(data.CustomerName, props.Text{Top: 5}),
		),
	)

	m.AddRow(10,
		text.NewCol(8, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Type", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	m.AddRow(15,
		text.NewCol(8, data.Description, props.Text{Size: 9}),
		text.NewCol(2, data.GarmentType, props.Text{Size: 9}),
		text.NewCol(2, data.Price, props.Text{Size: 9, Align: align.Right}),
	)

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Deposit", props.Text{Size: 9}),
		text.NewCol(2, data.Deposit, props.Text{Size: 9, Align: align.Right}),
	)

	if len(data.Payments) > 0 {
		m.AddRow(10,
			text.NewCol(12, "Payments", props.Text{Style: fontstyle.Bold, Size: 9}),
		)
		for _, payment := range data.Payments {
			m.AddRow(8,
				text.NewCol(4, payment.Date, props.Text{Size: 9}),
				text.NewCol(4, payment.Method, props.Text{Size: 9}),
				text.NewCol(4, payment.Amount, props.Text{Size: 9, Align: align.Right}),
			)
		}
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total paid", props.Text{Size: 9}),
		text.NewCol(2, data.TotalPaid, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(12,
		col.New(8),
		text.NewCol(2, "Balance due", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, data.Balance, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
