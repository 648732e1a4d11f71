package costreport

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"tekstil-golang/internal/storage"
)

type ReportStorage interface {
	GetModelCosts(ctx context.Context, modelID int) ([]*storage.ModelCost, error)
	GetModelCostsByOrder(ctx context.Context, orderID int) ([]*storage.ModelCost, error)
	GetOrders(ctx context.Context, filter storage.OrderFilter) ([]*storage.Order, error)
	GetOrder(ctx context.Context, id int) (*storage.Order, error)
	GetOrderCosts(ctx context.Context, orderID int) ([]*storage.OrderWorkshopCost, error)
}

type Service struct {
	storage ReportStorage
}

func NewService(storage ReportStorage) *Service {
	return &Service{storage: storage}
}

// ModelReport is the aggregation view over one model's cost ledger.
type ModelReport struct {
	ModelID      int       `json:"model_id"`
	Groups       []*Group  `json:"groups"`
	GrandTotal   float64   `json:"grand_total"`
	MissingRates int       `json:"missing_rates"`
	Firms        []FirmRef `json:"firms"`
}

// ModelReport groups the model's ledger by order and fills in unit
// economics from the orders themselves. The firm candidate list is
// derived from the unfiltered ledger, an applied firm filter must not
// shrink its own options.
func (s *Service) ModelReport(ctx context.Context, modelID, firmID int) (*ModelReport, error) {
	const op = "service.costreport.ModelReport"

	var (
		lines  []*storage.ModelCost
		orders []*storage.Order
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lines, err = s.storage.GetModelCosts(gCtx, modelID)
		if err != nil {
			return fmt.Errorf("model costs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		orders, err = s.storage.GetOrders(gCtx, storage.OrderFilter{ModelID: modelID, IncludeInactive: true})
		if err != nil {
			return fmt.Errorf("orders: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	firms := DistinctFirms(lines)
	filtered := FilterByFirm(lines, firmID)
	groups := GroupByOrder(filtered)

	byID := make(map[int]*storage.Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}

	report := &ModelReport{ModelID: modelID, Groups: groups, Firms: firms}
	for _, grp := range groups {
		report.GrandTotal += grp.Total
		report.MissingRates += grp.MissingRates
		if grp.OrderID != nil {
			if order, ok := byID[*grp.OrderID]; ok {
				grp.UnitCost = UnitCost(grp.Total, order.Quantity)
			}
		}
	}

	return report, nil
}

// OrderSummary combines both ledgers for one order. Workshop cost
// lines are recorded in the home currency and summed as-is; model
// cost lines go through their snapshot rates.
type OrderSummary struct {
	Order             *storage.Order               `json:"order"`
	WorkshopCosts     []*storage.OrderWorkshopCost `json:"workshop_costs"`
	ModelCosts        []*storage.ModelCost         `json:"model_costs"`
	WorkshopCostTotal float64                      `json:"workshop_cost_total"`
	ModelCostTotal    float64                      `json:"model_cost_total"`
	CombinedTotal     float64                      `json:"combined_total"`
	UnitCost          *float64                     `json:"unit_cost"`
	MissingRates      int                          `json:"missing_rates"`
}

func (s *Service) OrderSummary(ctx context.Context, orderID int) (*OrderSummary, error) {
	const op = "service.costreport.OrderSummary"

	var (
		order         *storage.Order
		workshopCosts []*storage.OrderWorkshopCost
		modelCosts    []*storage.ModelCost
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		order, err = s.storage.GetOrder(gCtx, orderID)
		if err != nil {
			return fmt.Errorf("order: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		workshopCosts, err = s.storage.GetOrderCosts(gCtx, orderID)
		if err != nil {
			return fmt.Errorf("workshop costs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		modelCosts, err = s.storage.GetModelCostsByOrder(gCtx, orderID)
		if err != nil {
			return fmt.Errorf("model costs: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	summary := &OrderSummary{
		Order:         order,
		WorkshopCosts: workshopCosts,
		ModelCosts:    modelCosts,
	}

	for _, c := range workshopCosts {
		summary.WorkshopCostTotal += c.TotalCost
	}
	summary.ModelCostTotal, summary.MissingRates = GroupTotal(modelCosts)
	summary.CombinedTotal = summary.WorkshopCostTotal + summary.ModelCostTotal
	summary.UnitCost = UnitCost(summary.CombinedTotal, order.Quantity)

	return summary, nil
}

// SuggestPrice applies the overhead rate and then the profit margin
// on top of a unit cost. Preview only, nothing derived is stored.
func SuggestPrice(unitCost float64, set storage.Settings) float64 {
	withOverhead := unitCost * (1 + set.OverheadCostRate/100)
	return withOverhead * (1 + set.ProfitMargin/100)
}
