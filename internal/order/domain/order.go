package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusMeasuring Status = "measuring"
	StatusCutting   Status = "cutting"
	StatusSewing    Status = "sewing"
	StatusFitting   Status = "fitting"
	StatusFinishing Status = "finishing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
)

// Statuses lists every workflow state in display order. There is no
// transition graph; any status can be assigned at any time.
var Statuses = []Status{
	StatusPending,
	StatusMeasuring,
	StatusCutting,
	StatusSewing,
	StatusFitting,
	StatusFinishing,
	StatusReady,
	StatusDelivered,
}

var statusLabels = map[Status]string{
	StatusPending:   "Pending",
	StatusMeasuring: "Measuring",
	StatusCutting:   "Cutting",
	StatusSewing:    "Sewing",
	StatusFitting:   "Fitting",
	StatusFinishing: "Finishing",
	StatusReady:     "Ready",
	StatusDelivered: "Delivered",
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display label, falling back to the raw tag for
// values written before a rename or by an older client.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsActive reports whether the order still needs work. Ready and
// delivered orders are considered complete.
func (s Status) IsActive() bool {
	return s != StatusReady && s != StatusDelivered
}

type GarmentType string

const (
	GarmentSuit               GarmentType = "suit"
	GarmentShirt              GarmentType = "shirt"
	GarmentTrousers           GarmentType = "trousers"
	GarmentDress              GarmentType = "dress"
	GarmentCoat               GarmentType = "coat"
	GarmentVest               GarmentType = "vest"
	GarmentAlteration         GarmentType = "alteration"
	GarmentEmbroideryLogo     GarmentType = "embroidery_logo"
	GarmentEmbroideryMonogram GarmentType = "embroidery_monogram"
	GarmentEmbroideryCustom   GarmentType = "embroidery_custom"
	GarmentEmbroideryPatch    GarmentType = "embroidery_patch"
	GarmentUniform            GarmentType = "uniform"
	GarmentCurtains           GarmentType = "curtains"
	GarmentOther              GarmentType = "other"
)

var GarmentTypes = []GarmentType{
	GarmentSuit,
	GarmentShirt,
	GarmentTrousers,
	GarmentDress,
	GarmentCoat,
	GarmentVest,
	GarmentAlteration,
	GarmentEmbroideryLogo,
	GarmentEmbroideryMonogram,
	GarmentEmbroideryCustom,
	GarmentEmbroideryPatch,
	GarmentUniform,
	GarmentCurtains,
	GarmentOther,
}

var garmentLabels = map[GarmentType]string{
	GarmentSuit:               "Suit",
	GarmentShirt:              "Shirt",
	GarmentTrousers:           "Trousers",
	GarmentDress:              "Dress",
	GarmentCoat:               "Coat",
	GarmentVest:               "Vest",
	GarmentAlteration:         "Alteration",
	GarmentEmbroideryLogo:     "Embroidery - Logo",
	GarmentEmbroideryMonogram: "Embroidery - Monogram",
	GarmentEmbroideryCustom:   "Embroidery - Custom Design",
	GarmentEmbroideryPatch:    "Embroidery - Patch",
	GarmentUniform:            "Uniform",
	GarmentCurtains:           "Curtains",
	GarmentOther:              "Other",
}

func (g GarmentType) Valid() bool {
	_, ok := garmentLabels[g]
	return ok
}

func (g GarmentType) Label() string {
	if label, ok := garmentLabels[g]; ok {
		return label
	}
	return string(g)
}

type Order struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	ShopID      snowflake.ID `gorm:"not null;index" json:"shop_id"`
	CustomerID  snowflake.ID `gorm:"not null;index" json:"customer_id"`
	// CustomerName is snapshotted at creation and never re-synced with
	// later customer edits.
	CustomerName string      `gorm:"not null" json:"customer_name"`
	Description  string      `gorm:"not null" json:"description"`
	GarmentType  GarmentType `gorm:"not null" json:"garment_type"`
	Status       Status      `gorm:"not null;index" json:"status"`
	Price        float64     `gorm:"not null" json:"price"`
	Deposit      float64     `gorm:"not null;default:0" json:"deposit"`
	DueDate      *time.Time  `gorm:"column:due_date" json:"due_date,omitempty"`
	Notes        string      `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt    time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
