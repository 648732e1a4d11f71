// Package costreport merges the two cost ledgers into per-order
// groups and normalizes multi-currency totals into TRY.
package costreport

import (
	"strconv"

	"tekstil-golang/internal/constants"
	"tekstil-golang/internal/storage"
)

// GeneralKey is the bucket for model costs not linked to any order.
const GeneralKey = "general"

// Rates are the per-line snapshots recorded when the ledger line was
// saved. Conversion never consults a live rate.
type Rates struct {
	Usd *float64
	Eur *float64
	Gbp *float64
}

func LineRates(line *storage.ModelCost) Rates {
	return Rates{Usd: line.UsdRate, Eur: line.EurRate, Gbp: line.GbpRate}
}

// Convert normalizes an amount into TRY. A missing rate converts to 0
// rather than failing, the caller counts these via ok=false so the
// degradation stays visible.
func Convert(amount float64, currency string, rates Rates) (value float64, ok bool) {
	if currency == constants.HomeCurrency || currency == "" {
		return amount, true
	}

	var rate *float64
	switch currency {
	case "USD":
		rate = rates.Usd
	case "EUR":
		rate = rates.Eur
	case "GBP":
		rate = rates.Gbp
	}

	if rate == nil || *rate == 0 {
		return 0, false
	}
	return amount * *rate, true
}

// Group is one bucket of the order partition.
type Group struct {
	Key          string               `json:"key"`
	OrderID      *int                 `json:"order_id"`
	Lines        []*storage.ModelCost `json:"lines"`
	Total        float64              `json:"total"`
	UnitCost     *float64             `json:"unit_cost"`
	MissingRates int                  `json:"missing_rates"`
}

// GroupByOrder partitions ledger lines by their order, keeping the
// insertion order of first occurrence. Lines without an order all land
// in the single "general" bucket.
func GroupByOrder(lines []*storage.ModelCost) []*Group {
	var groups []*Group
	index := make(map[string]*Group)

	for _, line := range lines {
		key := GeneralKey
		if line.OrderID != nil {
			key = strconv.Itoa(*line.OrderID)
		}

		g, ok := index[key]
		if !ok {
			g = &Group{Key: key, OrderID: line.OrderID}
			index[key] = g
			groups = append(groups, g)
		}
		g.Lines = append(g.Lines, line)

		converted, rateOK := Convert(line.TotalCost, line.Currency, LineRates(line))
		g.Total += converted
		if !rateOK {
			g.MissingRates++
		}
	}

	return groups
}

// GroupTotal sums converted line totals; missing counts lines whose
// snapshot rate was absent and therefore contributed 0.
func GroupTotal(lines []*storage.ModelCost) (total float64, missing int) {
	for _, line := range lines {
		converted, ok := Convert(line.TotalCost, line.Currency, LineRates(line))
		total += converted
		if !ok {
			missing++
		}
	}
	return total, missing
}

// UnitCost is undefined (nil) for non-positive quantities.
func UnitCost(total, quantity float64) *float64 {
	if quantity <= 0 {
		return nil
	}
	u := total / quantity
	return &u
}

// LineFirm resolves the firm of a ledger line: the direct field wins,
// otherwise the linked order's firm.
func LineFirm(line *storage.ModelCost) (id *int, name *string) {
	if line.FirmID != nil {
		return line.FirmID, line.FirmName
	}
	return line.OrderFirmID, line.OrderFirmName
}

// FirmRef is one entry of the firm filter candidate list.
type FirmRef struct {
	ID   int    `json:"firm_id"`
	Name string `json:"name"`
}

// DistinctFirms lists the firms actually present in the ledger, in
// first-occurrence order. This, not the firm catalog, is what the
// filter offers.
func DistinctFirms(lines []*storage.ModelCost) []FirmRef {
	var firms []FirmRef
	seen := make(map[int]bool)

	for _, line := range lines {
		id, name := LineFirm(line)
		if id == nil || seen[*id] {
			continue
		}
		seen[*id] = true
		ref := FirmRef{ID: *id}
		if name != nil {
			ref.Name = *name
		}
		firms = append(firms, ref)
	}

	return firms
}

// FilterByFirm keeps lines belonging to the firm, resolved per
// LineFirm. firmID 0 keeps everything.
func FilterByFirm(lines []*storage.ModelCost, firmID int) []*storage.ModelCost {
	if firmID == 0 {
		return lines
	}

	var out []*storage.ModelCost
	for _, line := range lines {
		if id, _ := LineFirm(line); id != nil && *id == firmID {
			out = append(out, line)
		}
	}
	return out
}
