package mysql

import (
	"context"
	"fmt"

	"tekstil-golang/internal/storage"
)

func (s *Storage) GetCostItems(ctx context.Context) ([]*storage.CostItem, error) {
	const op = "storage.mysql.GetCostItems"

	stmt := `SELECT id, item_name, unit_price, currency, cost_category_id,
	                cost_unit_id, cost_unit_id_2, cost_unit_id_3,
	                wastage_percentage, supplier, is_active
	         FROM cost_items WHERE is_active = TRUE ORDER BY item_name ASC`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []*storage.CostItem
	for rows.Next() {
		var it storage.CostItem
		err := rows.Scan(&it.ID, &it.ItemName, &it.UnitPrice, &it.Currency,
			&it.CostCategoryID, &it.CostUnitID, &it.CostUnitID2, &it.CostUnitID3,
			&it.WastagePercentage, &it.Supplier, &it.IsActive)
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

func (s *Storage) SaveCostItem(ctx context.Context, it storage.CostItem) (int64, error) {
	const op = "storage.mysql.SaveCostItem"

	stmt := `INSERT INTO cost_items (item_name, unit_price, currency, cost_category_id,
	            cost_unit_id, cost_unit_id_2, cost_unit_id_3, wastage_percentage, supplier, is_active)
	         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, TRUE)`

	res, err := s.db.ExecContext(ctx, stmt, it.ItemName, it.UnitPrice, it.Currency,
		it.CostCategoryID, it.CostUnitID, it.CostUnitID2, it.CostUnitID3,
		it.WastagePercentage, it.Supplier)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.LastInsertId()
}

// UpdateCostItemPrice is the only catalog mutation available outside
// the admin surface, the public UI offers price-only editing.
func (s *Storage) UpdateCostItemPrice(ctx context.Context, id int, unitPrice float64, currency string) error {
	const op = "storage.mysql.UpdateCostItemPrice"

	stmt := `UPDATE cost_items SET unit_price = ?, currency = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, stmt, unitPrice, currency, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: cost item %d: %w", op, id, ErrNotFound)
	}

	return nil
}

func (s *Storage) UpdateCostItem(ctx context.Context, it storage.CostItem) error {
	const op = "storage.mysql.UpdateCostItem"

	stmt := `UPDATE cost_items SET item_name = ?, unit_price = ?, currency = ?,
	            cost_category_id = ?, cost_unit_id = ?, cost_unit_id_2 = ?, cost_unit_id_3 = ?,
	            wastage_percentage = ?, supplier = ?
	         WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, it.ItemName, it.UnitPrice, it.Currency,
		it.CostCategoryID, it.CostUnitID, it.CostUnitID2, it.CostUnitID3,
		it.WastagePercentage, it.Supplier, it.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: cost item %d: %w", op, it.ID, ErrNotFound)
	}

	return nil
}

func (s *Storage) DeleteCostItem(ctx context.Context, id int) error {
	const op = "storage.mysql.DeleteCostItem"

	// soft delete, ledger lines keep referencing the row
	res, err := s.db.ExecContext(ctx, `UPDATE cost_items SET is_active = FALSE WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: cost item %d: %w", op, id, ErrNotFound)
	}

	return nil
}

func (s *Storage) GetCostCategories(ctx context.Context) ([]*storage.CostCategory, error) {
	const op = "storage.mysql.GetCostCategories"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM cost_categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var cats []*storage.CostCategory
	for rows.Next() {
		var c storage.CostCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		cats = append(cats, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return cats, nil
}

func (s *Storage) GetCostUnits(ctx context.Context) ([]*storage.CostUnit, error) {
	const op = "storage.mysql.GetCostUnits"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM cost_units ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var units []*storage.CostUnit
	for rows.Next() {
		var u storage.CostUnit
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		units = append(units, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return units, nil
}
