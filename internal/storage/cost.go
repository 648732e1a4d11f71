package storage

import "time"

type CostCategory struct {
	ID   int    `json:"cost_category_id"`
	Name string `json:"name"`
}

type CostUnit struct {
	ID   int    `json:"cost_unit_id"`
	Name string `json:"name"`
}

// CostItem is the reference catalog row. Up to three unit dimensions,
// e.g. fabric priced per meter x width x weight.
type CostItem struct {
	ID                int      `json:"cost_item_id"`
	ItemName          string   `json:"item_name"`
	UnitPrice         float64  `json:"unit_price"`
	Currency          string   `json:"currency"`
	CostCategoryID    int      `json:"cost_category_id"`
	CostUnitID        int      `json:"cost_unit_id"`
	CostUnitID2       *int     `json:"cost_unit_id_2"`
	CostUnitID3       *int     `json:"cost_unit_id_3"`
	WastagePercentage *float64 `json:"wastage_percentage"`
	Supplier          *string  `json:"supplier"`
	IsActive          bool     `json:"is_active"`
}

// WorkshopCostItem joins Workshop x CostItem. EffectivePrice is the
// workshop-specific price when present, otherwise the catalog price,
// resolved at read time.
type WorkshopCostItem struct {
	ID                    int      `json:"workshop_cost_item_id"`
	WorkshopID            int      `json:"workshop_id"`
	CostItemID            int      `json:"cost_item_id"`
	ItemName              string   `json:"item_name"`
	Currency              string   `json:"currency"`
	CatalogPrice          float64  `json:"catalog_price"`
	WorkshopSpecificPrice *float64 `json:"workshop_specific_price"`
	EffectivePrice        float64  `json:"effective_price"`
	IsPreferred           bool     `json:"is_preferred"`
	Priority              int      `json:"priority"`
	IsActive              bool     `json:"is_active"`
}

// OrderWorkshopCost is a ledger line. TotalCost is fixed at save time
// as QuantityUsed*ActualPrice and never recomputed from the catalog.
type OrderWorkshopCost struct {
	ID           int       `json:"order_workshop_cost_id"`
	OrderID      int       `json:"order_id"`
	WorkshopID   int       `json:"workshop_id"`
	CostItemID   int       `json:"cost_item_id"`
	ItemName     string    `json:"item_name"`
	QuantityUsed float64   `json:"quantity_used"`
	ActualPrice  float64   `json:"actual_price"`
	Currency     string    `json:"currency"`
	TotalCost    float64   `json:"total_cost"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// ModelCost is a ledger line attributed to a model, optionally linked
// to an order (nil OrderID means a "general" model cost). The usd/eur/gbp
// rates are snapshots taken when the line was recorded; conversion must
// only ever read these, never a live rate.
type ModelCost struct {
	ID                   int      `json:"model_cost_id"`
	ModelID              int      `json:"model_id"`
	OrderID              *int     `json:"order_id"`
	FirmID               *int     `json:"firm_id"`
	FirmName             *string  `json:"firm_name"`
	OrderFirmID          *int     `json:"order_firm_id"`
	OrderFirmName        *string  `json:"order_firm_name"`
	CostItemID           int      `json:"cost_item_id"`
	ItemName             string   `json:"item_name"`
	Quantity             float64  `json:"quantity"`
	Quantity2            *float64 `json:"quantity_2"`
	Quantity3            *float64 `json:"quantity_3"`
	UnitPrice            float64  `json:"unit_price"`
	Currency             string   `json:"currency"`
	TotalCost            float64  `json:"total_cost"`
	WastagePercentage    *float64 `json:"wastage_percentage"`
	ActualQuantityNeeded *float64 `json:"actual_quantity_needed"`
	Priority             int      `json:"priority"`
	Usage                *string  `json:"usage"`
	UsdRate              *float64 `json:"usd_rate"`
	EurRate              *float64 `json:"eur_rate"`
	GbpRate              *float64 `json:"gbp_rate"`
}

// SaveModelCost is the create payload for a model cost line.
type SaveModelCost struct {
	ModelID              int      `json:"model_id"`
	OrderID              *int     `json:"order_id"`
	FirmID               *int     `json:"firm_id"`
	CostItemID           int      `json:"cost_item_id"`
	Quantity             float64  `json:"quantity"`
	Quantity2            *float64 `json:"quantity_2"`
	Quantity3            *float64 `json:"quantity_3"`
	UnitPrice            float64  `json:"unit_price"`
	Currency             string   `json:"currency"`
	TotalCost            float64  `json:"total_cost"`
	WastagePercentage    *float64 `json:"wastage_percentage"`
	ActualQuantityNeeded *float64 `json:"actual_quantity_needed"`
	Priority             int      `json:"priority"`
	Usage                *string  `json:"usage"`
	UsdRate              *float64 `json:"usd_rate"`
	EurRate              *float64 `json:"eur_rate"`
	GbpRate              *float64 `json:"gbp_rate"`
}

type ExchangeRate struct {
	CurrencyCode    string    `json:"currency_code"`
	BanknoteSelling float64   `json:"banknote_selling"`
	FetchedAt       time.Time `json:"fetched_at"`
}

// Settings is a single row, used only for the pricing preview.
type Settings struct {
	ProfitMargin     float64 `json:"profit_margin"`
	OverheadCostRate float64 `json:"overhead_cost_rate"`
}
