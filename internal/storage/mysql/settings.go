package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tekstil-golang/internal/storage"
)

// GetSettings reads the single settings row, defaults when missing.
func (s *Storage) GetSettings(ctx context.Context) (*storage.Settings, error) {
	const op = "storage.mysql.GetSettings"

	var set storage.Settings
	err := s.db.QueryRowContext(ctx,
		`SELECT profit_margin, overhead_cost_rate FROM settings LIMIT 1`).
		Scan(&set.ProfitMargin, &set.OverheadCostRate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &storage.Settings{}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &set, nil
}

func (s *Storage) UpdateSettings(ctx context.Context, set storage.Settings) error {
	const op = "storage.mysql.UpdateSettings"

	stmt := `INSERT INTO settings (id, profit_margin, overhead_cost_rate)
	         VALUES (1, ?, ?)
	         ON DUPLICATE KEY UPDATE
	             profit_margin = VALUES(profit_margin),
	             overhead_cost_rate = VALUES(overhead_cost_rate)`

	if _, err := s.db.ExecContext(ctx, stmt, set.ProfitMargin, set.OverheadCostRate); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
