package mysql

import (
	"context"
	"fmt"

	"tekstil-golang/internal/storage"
)

// GetWorkshopCostItems returns the per-workshop price list. The
// effective price is resolved here with COALESCE so callers never
// reimplement the override rule.
func (s *Storage) GetWorkshopCostItems(ctx context.Context, workshopID int) ([]*storage.WorkshopCostItem, error) {
	const op = "storage.mysql.GetWorkshopCostItems"

	stmt := `SELECT wci.id, wci.workshop_id, wci.cost_item_id, ci.item_name, ci.currency,
	                ci.unit_price, wci.workshop_specific_price,
	                COALESCE(wci.workshop_specific_price, ci.unit_price) AS effective_price,
	                wci.is_preferred, wci.priority, wci.is_active
	         FROM workshop_cost_items wci
	         JOIN cost_items ci ON ci.id = wci.cost_item_id
	         WHERE wci.workshop_id = ? AND wci.is_active = TRUE
	         ORDER BY wci.priority ASC, ci.item_name ASC`

	rows, err := s.db.QueryContext(ctx, stmt, workshopID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []*storage.WorkshopCostItem
	for rows.Next() {
		var it storage.WorkshopCostItem
		err := rows.Scan(&it.ID, &it.WorkshopID, &it.CostItemID, &it.ItemName,
			&it.Currency, &it.CatalogPrice, &it.WorkshopSpecificPrice,
			&it.EffectivePrice, &it.IsPreferred, &it.Priority, &it.IsActive)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		items = append(items, &it)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return items, nil
}

func (s *Storage) SaveWorkshopCostItem(ctx context.Context, it storage.WorkshopCostItem) (int64, error) {
	const op = "storage.mysql.SaveWorkshopCostItem"

	stmt := `INSERT INTO workshop_cost_items
	            (workshop_id, cost_item_id, workshop_specific_price, is_preferred, priority, is_active)
	         VALUES (?, ?, ?, ?, ?, TRUE)`

	res, err := s.db.ExecContext(ctx, stmt, it.WorkshopID, it.CostItemID,
		it.WorkshopSpecificPrice, it.IsPreferred, it.Priority)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdateWorkshopCostItem(ctx context.Context, it storage.WorkshopCostItem) error {
	const op = "storage.mysql.UpdateWorkshopCostItem"

	stmt := `UPDATE workshop_cost_items
	         SET workshop_specific_price = ?, is_preferred = ?, priority = ?
	         WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, it.WorkshopSpecificPrice, it.IsPreferred, it.Priority, it.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: workshop cost item %d: %w", op, it.ID, ErrNotFound)
	}

	return nil
}

func (s *Storage) DeleteWorkshopCostItem(ctx context.Context, id int) error {
	const op = "storage.mysql.DeleteWorkshopCostItem"

	res, err := s.db.ExecContext(ctx, `UPDATE workshop_cost_items SET is_active = FALSE WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: workshop cost item %d: %w", op, id, ErrNotFound)
	}

	return nil
}

// GetOrderCosts returns the workshop cost ledger for one order.
func (s *Storage) GetOrderCosts(ctx context.Context, orderID int) ([]*storage.OrderWorkshopCost, error) {
	const op = "storage.mysql.GetOrderCosts"

	stmt := `SELECT owc.id, owc.order_id, owc.workshop_id, owc.cost_item_id, ci.item_name,
	                owc.quantity_used, owc.actual_price, owc.currency, owc.total_cost,
	                owc.notes, owc.created_at
	         FROM order_workshop_costs owc
	         JOIN cost_items ci ON ci.id = owc.cost_item_id
	         WHERE owc.order_id = ?
	         ORDER BY owc.created_at ASC, owc.id ASC`

	rows, err := s.db.QueryContext(ctx, stmt, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var costs []*storage.OrderWorkshopCost
	for rows.Next() {
		var c storage.OrderWorkshopCost
		err := rows.Scan(&c.ID, &c.OrderID, &c.WorkshopID, &c.CostItemID, &c.ItemName,
			&c.QuantityUsed, &c.ActualPrice, &c.Currency, &c.TotalCost, &c.Notes, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		costs = append(costs, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return costs, nil
}

// SaveOrderCost fixes total_cost = quantity_used * actual_price at
// save time, it is never recomputed from the catalog afterwards.
func (s *Storage) SaveOrderCost(ctx context.Context, c storage.OrderWorkshopCost) (int64, error) {
	const op = "storage.mysql.SaveOrderCost"

	stmt := `INSERT INTO order_workshop_costs
	            (order_id, workshop_id, cost_item_id, quantity_used, actual_price, currency, total_cost, notes, created_at)
	         VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	total := c.QuantityUsed * c.ActualPrice
	res, err := s.db.ExecContext(ctx, stmt, c.OrderID, c.WorkshopID, c.CostItemID,
		c.QuantityUsed, c.ActualPrice, c.Currency, total, c.Notes)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.LastInsertId()
}
