package mysql

import (
	"context"
	"fmt"

	"tekstil-golang/internal/storage"
)

func (s *Storage) GetFirms(ctx context.Context) ([]*storage.Firm, error) {
	const op = "storage.mysql.GetFirms"

	stmt := `SELECT id, name, contact_person, phone, is_active FROM firms WHERE is_active = TRUE ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var firms []*storage.Firm
	for rows.Next() {
		var f storage.Firm
		if err := rows.Scan(&f.ID, &f.Name, &f.ContactPerson, &f.Phone, &f.IsActive); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		firms = append(firms, &f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return firms, nil
}

func (s *Storage) SaveFirm(ctx context.Context, f storage.Firm) (int64, error) {
	const op = "storage.mysql.SaveFirm"

	stmt := `INSERT INTO firms (name, contact_person, phone, is_active) VALUES (?, ?, ?, TRUE)`
	res, err := s.db.ExecContext(ctx, stmt, f.Name, f.ContactPerson, f.Phone)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdateFirm(ctx context.Context, f storage.Firm) error {
	const op = "storage.mysql.UpdateFirm"

	stmt := `UPDATE firms SET name = ?, contact_person = ?, phone = ?, is_active = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, stmt, f.Name, f.ContactPerson, f.Phone, f.IsActive, f.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: firm %d: %w", op, f.ID, ErrNotFound)
	}

	return nil
}

// GetModels lists models, optionally for a single firm (firmID 0 = all).
func (s *Storage) GetModels(ctx context.Context, firmID int) ([]*storage.Model, error) {
	const op = "storage.mysql.GetModels"

	stmt := `SELECT id, firm_id, code, name, note, is_active FROM models WHERE is_active = TRUE`
	var args []interface{}
	if firmID != 0 {
		stmt += ` AND firm_id = ?`
		args = append(args, firmID)
	}
	stmt += ` ORDER BY code ASC`

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var models []*storage.Model
	for rows.Next() {
		var m storage.Model
		if err := rows.Scan(&m.ID, &m.FirmID, &m.Code, &m.Name, &m.Note, &m.IsActive); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		models = append(models, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return models, nil
}

func (s *Storage) SaveModel(ctx context.Context, m storage.Model) (int64, error) {
	const op = "storage.mysql.SaveModel"

	stmt := `INSERT INTO models (firm_id, code, name, note, is_active) VALUES (?, ?, ?, ?, TRUE)`
	res, err := s.db.ExecContext(ctx, stmt, m.FirmID, m.Code, m.Name, m.Note)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdateModel(ctx context.Context, m storage.Model) error {
	const op = "storage.mysql.UpdateModel"

	stmt := `UPDATE models SET firm_id = ?, code = ?, name = ?, note = ?, is_active = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, stmt, m.FirmID, m.Code, m.Name, m.Note, m.IsActive, m.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: model %d: %w", op, m.ID, ErrNotFound)
	}

	return nil
}
