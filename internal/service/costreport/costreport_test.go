package costreport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tekstil-golang/internal/storage"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }
func sptr(s string) *string   { return &s }

func TestConvert_HomeCurrencyIdentity(t *testing.T) {
	for _, amount := range []float64{0, 1, 99.99, 15200, -3} {
		got, ok := Convert(amount, "TRY", Rates{})
		assert.True(t, ok)
		assert.Equal(t, amount, got)
	}

	// rates present must not change the identity
	got, ok := Convert(100, "TRY", Rates{Usd: fptr(30), Eur: fptr(35)})
	assert.True(t, ok)
	assert.Equal(t, 100.0, got)
}

func TestConvert_WithSnapshotRate(t *testing.T) {
	got, ok := Convert(500, "USD", Rates{Usd: fptr(30)})
	assert.True(t, ok)
	assert.Equal(t, 15000.0, got)

	got, ok = Convert(10, "EUR", Rates{Eur: fptr(35.5)})
	assert.True(t, ok)
	assert.Equal(t, 355.0, got)

	got, ok = Convert(2, "GBP", Rates{Gbp: fptr(40)})
	assert.True(t, ok)
	assert.Equal(t, 80.0, got)
}

func TestConvert_MissingRateDegradesToZero(t *testing.T) {
	got, ok := Convert(100, "USD", Rates{})
	assert.False(t, ok)
	assert.Equal(t, 0.0, got)

	// a zero rate is as good as a missing one
	got, ok = Convert(100, "EUR", Rates{Eur: fptr(0)})
	assert.False(t, ok)
	assert.Equal(t, 0.0, got)
}

func TestGroupByOrder_Partition(t *testing.T) {
	lines := []*storage.ModelCost{
		{ID: 1, OrderID: iptr(5), TotalCost: 10, Currency: "TRY"},
		{ID: 2, TotalCost: 20, Currency: "TRY"},
		{ID: 3, OrderID: iptr(9), TotalCost: 30, Currency: "TRY"},
		{ID: 4, OrderID: iptr(5), TotalCost: 40, Currency: "TRY"},
		{ID: 5, TotalCost: 50, Currency: "TRY"},
	}

	groups := GroupByOrder(lines)

	// insertion order of first occurrence
	assert.Len(t, groups, 3)
	assert.Equal(t, "5", groups[0].Key)
	assert.Equal(t, GeneralKey, groups[1].Key)
	assert.Equal(t, "9", groups[2].Key)

	// every line in exactly one group
	total := 0
	seen := map[int]bool{}
	for _, g := range groups {
		total += len(g.Lines)
		for _, l := range g.Lines {
			assert.False(t, seen[l.ID], "line %d appears twice", l.ID)
			seen[l.ID] = true
		}
	}
	assert.Equal(t, len(lines), total)

	assert.Equal(t, 50.0, groups[0].Total)
	assert.Equal(t, 70.0, groups[1].Total)
	assert.Equal(t, 30.0, groups[2].Total)
}

func TestGroupByOrder_Empty(t *testing.T) {
	assert.Empty(t, GroupByOrder(nil))
}

// End-to-end case: quantity 10, one USD line with a snapshot rate of
// 30 and one TRY line.
func TestGroupTotalAndUnitCost(t *testing.T) {
	lines := []*storage.ModelCost{
		{OrderID: iptr(1), TotalCost: 500, Currency: "USD", UsdRate: fptr(30)},
		{OrderID: iptr(1), TotalCost: 200, Currency: "TRY"},
	}

	total, missing := GroupTotal(lines)
	assert.Equal(t, 15200.0, total)
	assert.Equal(t, 0, missing)

	unit := UnitCost(total, 10)
	if assert.NotNil(t, unit) {
		assert.Equal(t, 1520.0, *unit)
	}

	assert.Nil(t, UnitCost(total, 0))
	assert.Nil(t, UnitCost(total, -1))
}

func TestGroupTotal_CountsMissingRates(t *testing.T) {
	lines := []*storage.ModelCost{
		{TotalCost: 100, Currency: "USD"},
		{TotalCost: 200, Currency: "TRY"},
	}

	total, missing := GroupTotal(lines)
	assert.Equal(t, 200.0, total)
	assert.Equal(t, 1, missing)
}

func TestLineFirm_DirectWins(t *testing.T) {
	line := &storage.ModelCost{
		FirmID: iptr(2), FirmName: sptr("Moda Tekstil"),
		OrderFirmID: iptr(9), OrderFirmName: sptr("Başka Firma"),
	}
	id, name := LineFirm(line)
	assert.Equal(t, 2, *id)
	assert.Equal(t, "Moda Tekstil", *name)

	// fallback to the linked order's firm
	line = &storage.ModelCost{OrderFirmID: iptr(9), OrderFirmName: sptr("Başka Firma")}
	id, name = LineFirm(line)
	assert.Equal(t, 9, *id)
	assert.Equal(t, "Başka Firma", *name)

	// nothing to resolve
	id, _ = LineFirm(&storage.ModelCost{})
	assert.Nil(t, id)
}

func TestDistinctFirmsAndFilter(t *testing.T) {
	lines := []*storage.ModelCost{
		{ID: 1, FirmID: iptr(2), FirmName: sptr("Moda Tekstil")},
		{ID: 2, OrderFirmID: iptr(9), OrderFirmName: sptr("Başka Firma")},
		{ID: 3, FirmID: iptr(2), FirmName: sptr("Moda Tekstil")},
		{ID: 4},
	}

	firms := DistinctFirms(lines)
	assert.Equal(t, []FirmRef{{ID: 2, Name: "Moda Tekstil"}, {ID: 9, Name: "Başka Firma"}}, firms)

	filtered := FilterByFirm(lines, 2)
	assert.Len(t, filtered, 2)
	assert.Equal(t, 1, filtered[0].ID)
	assert.Equal(t, 3, filtered[1].ID)

	// 0 means no filter
	assert.Len(t, FilterByFirm(lines, 0), 4)
}

func TestSuggestPrice(t *testing.T) {
	set := storage.Settings{ProfitMargin: 20, OverheadCostRate: 10}
	assert.InDelta(t, 132.0, SuggestPrice(100, set), 1e-9)

	// defaults leave the cost untouched
	assert.Equal(t, 100.0, SuggestPrice(100, storage.Settings{}))
}
