package mysql

import (
	"context"
	"fmt"

	"tekstil-golang/internal/storage"
)

const modelCostColumns = `mc.id, mc.model_id, mc.order_id, mc.firm_id, f.name,
	       o.firm_id, fo.name, mc.cost_item_id, ci.item_name,
	       mc.quantity, mc.quantity_2, mc.quantity_3, mc.unit_price, mc.currency,
	       mc.total_cost, mc.wastage_percentage, mc.actual_quantity_needed,
	       mc.priority, mc.usage_note, mc.usd_rate, mc.eur_rate, mc.gbp_rate`

const modelCostJoins = `
	         FROM model_costs mc
	         JOIN cost_items ci ON ci.id = mc.cost_item_id
	         LEFT JOIN firms f ON f.id = mc.firm_id
	         LEFT JOIN orders o ON o.id = mc.order_id
	         LEFT JOIN firms fo ON fo.id = o.firm_id`

func scanModelCost(row interface{ Scan(...any) error }) (*storage.ModelCost, error) {
	var c storage.ModelCost
	err := row.Scan(&c.ID, &c.ModelID, &c.OrderID, &c.FirmID, &c.FirmName,
		&c.OrderFirmID, &c.OrderFirmName, &c.CostItemID, &c.ItemName,
		&c.Quantity, &c.Quantity2, &c.Quantity3, &c.UnitPrice, &c.Currency,
		&c.TotalCost, &c.WastagePercentage, &c.ActualQuantityNeeded,
		&c.Priority, &c.Usage, &c.UsdRate, &c.EurRate, &c.GbpRate)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetModelCosts returns every ledger line for a model, ordered so
// that grouping by order keeps a stable first-occurrence order.
func (s *Storage) GetModelCosts(ctx context.Context, modelID int) ([]*storage.ModelCost, error) {
	const op = "storage.mysql.GetModelCosts"

	stmt := `SELECT ` + modelCostColumns + modelCostJoins + `
	         WHERE mc.model_id = ?
	         ORDER BY mc.priority ASC, mc.id ASC`

	rows, err := s.db.QueryContext(ctx, stmt, modelID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var costs []*storage.ModelCost
	for rows.Next() {
		c, err := scanModelCost(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		costs = append(costs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return costs, nil
}

// GetModelCostsByOrder returns the model-cost lines linked to one order.
func (s *Storage) GetModelCostsByOrder(ctx context.Context, orderID int) ([]*storage.ModelCost, error) {
	const op = "storage.mysql.GetModelCostsByOrder"

	stmt := `SELECT ` + modelCostColumns + modelCostJoins + `
	         WHERE mc.order_id = ?
	         ORDER BY mc.priority ASC, mc.id ASC`

	rows, err := s.db.QueryContext(ctx, stmt, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var costs []*storage.ModelCost
	for rows.Next() {
		c, err := scanModelCost(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		costs = append(costs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return costs, nil
}

// SaveModelCost inserts one ledger line. The exchange-rate snapshots
// in the request are stored as-is and become the only rates ever used
// to convert this line.
func (s *Storage) SaveModelCost(ctx context.Context, req storage.SaveModelCost) (int64, error) {
	const op = "storage.mysql.SaveModelCost"

	stmt := `INSERT INTO model_costs
	            (model_id, order_id, firm_id, cost_item_id, quantity, quantity_2, quantity_3,
	             unit_price, currency, total_cost, wastage_percentage, actual_quantity_needed,
	             priority, usage_note, usd_rate, eur_rate, gbp_rate)
	         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, stmt, req.ModelID, req.OrderID, req.FirmID,
		req.CostItemID, req.Quantity, req.Quantity2, req.Quantity3,
		req.UnitPrice, req.Currency, req.TotalCost, req.WastagePercentage,
		req.ActualQuantityNeeded, req.Priority, req.Usage,
		req.UsdRate, req.EurRate, req.GbpRate)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdateModelCost(ctx context.Context, id int, req storage.SaveModelCost) error {
	const op = "storage.mysql.UpdateModelCost"

	stmt := `UPDATE model_costs
	         SET order_id = ?, firm_id = ?, cost_item_id = ?, quantity = ?, quantity_2 = ?,
	             quantity_3 = ?, unit_price = ?, currency = ?, total_cost = ?,
	             wastage_percentage = ?, actual_quantity_needed = ?, priority = ?, usage_note = ?
	         WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, req.OrderID, req.FirmID, req.CostItemID,
		req.Quantity, req.Quantity2, req.Quantity3, req.UnitPrice, req.Currency,
		req.TotalCost, req.WastagePercentage, req.ActualQuantityNeeded,
		req.Priority, req.Usage, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: model cost %d: %w", op, id, ErrNotFound)
	}

	return nil
}

func (s *Storage) DeleteModelCost(ctx context.Context, id int) error {
	const op = "storage.mysql.DeleteModelCost"

	res, err := s.db.ExecContext(ctx, `DELETE FROM model_costs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: model cost %d: %w", op, id, ErrNotFound)
	}

	return nil
}
