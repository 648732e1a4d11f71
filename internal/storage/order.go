package storage

import "time"

// OrderUnit wire codes: 0=Adet (piece), 1=Metre, 2=Takım (set).
type OrderUnit int

const (
	UnitPiece OrderUnit = 0
	UnitMeter OrderUnit = 1
	UnitSet   OrderUnit = 2
)

type Order struct {
	ID             int         `json:"order_id"`
	FirmID         int         `json:"firm_id"`
	FirmName       string      `json:"firm_name,omitempty"`
	ModelID        int         `json:"model_id"`
	ModelName      string      `json:"model_name,omitempty"`
	Quantity       float64     `json:"quantity"`
	Unit           OrderUnit   `json:"unit"`
	Price          float64     `json:"price"`
	PriceCurrency  string      `json:"price_currency"`
	Status         OrderStatus `json:"status"`
	WorkshopID     *int        `json:"workshop_id"`
	WorkshopName   *string     `json:"workshop_name,omitempty"`
	OperatorID     *int        `json:"operator_id"`
	Priority       int         `json:"priority"`
	Deadline       *time.Time  `json:"deadline"`
	AcceptanceDate time.Time   `json:"acceptance_date"`
	CompletionDate *time.Time  `json:"completion_date"`
	Invoice        bool        `json:"invoice"`
	InvoiceNumber  *string     `json:"invoice_number"`
	Note           *string     `json:"note"`
	IsActive       bool        `json:"is_active"`
}

// SaveOrder is the create/update payload, no server-assigned fields.
type SaveOrder struct {
	FirmID        int       `json:"firm_id"`
	ModelID       int       `json:"model_id"`
	Quantity      float64   `json:"quantity"`
	Unit          OrderUnit `json:"unit"`
	Price         float64   `json:"price"`
	PriceCurrency string    `json:"price_currency"`
	Priority      int       `json:"priority"`
	Deadline      *string   `json:"deadline"`
	Invoice       bool      `json:"invoice"`
	InvoiceNumber *string   `json:"invoice_number"`
	Note          *string   `json:"note"`
}

// OrderFilter narrows the order listing. Zero values mean "no filter",
// Search is matched against firm, model and note with Turkish folding.
type OrderFilter struct {
	Year            int
	Month           int
	FirmID          int
	ModelID         int
	WorkshopID      int
	Status          *OrderStatus
	Search          string
	IncludeInactive bool
}

// OrderLog is an append-only change record, display only.
type OrderLog struct {
	ID        int       `json:"log_id"`
	OrderID   int       `json:"order_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
