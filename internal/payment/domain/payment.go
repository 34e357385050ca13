package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Method string

const (
	MethodCash         Method = "cash"
	MethodCard         Method = "card"
	MethodBankTransfer Method = "bank_transfer"
	MethodCheque       Method = "cheque"
)

// Methods lists the well-known payment methods. Records are free text,
// staff occasionally write things like "cash + card split", so unknown
// values are stored as-is.
var Methods = []Method{
	MethodCash,
	MethodCard,
	MethodBankTransfer,
	MethodCheque,
}

var methodLabels = map[Method]string{
	MethodCash:         "Cash",
	MethodCard:         "Card",
	MethodBankTransfer: "Bank Transfer",
	MethodCheque:       "Cheque",
}

func (m Method) Label() string {
	if label, ok := methodLabels[m]; ok {
		return label
	}
	return string(m)
}

type Payment struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	ShopID          snowflake.ID `gorm:"not null;index" json:"shop_id"`
	OrderID         snowflake.ID `gorm:"not null;index" json:"order_id"`
	Amount          float64      `gorm:"not null" json:"amount"`
	TransactionDate time.Time    `gorm:"not null" json:"transaction_date"`
	Method          Method       `gorm:"not null;default:cash" json:"method"`
	Notes           string       `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// PaymentWithOrder is a payment joined with the description of the
// order it paid toward, for history views. Orders can be deleted out
// from under their payments; those resolve to an "Unknown" placeholder.
type PaymentWithOrder struct {
	Payment
	OrderDescription  string `json:"order_description"`
	OrderCustomerName string `json:"order_customer_name"`
}

const UnknownOrderPlaceholder = "Unknown"
