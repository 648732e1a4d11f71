package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tekstil-golang/internal/storage"
)

func (s *Storage) GetWorkshops(ctx context.Context) ([]*storage.Workshop, error) {
	const op = "storage.mysql.GetWorkshops"

	stmt := `SELECT id, name, location, contact_person, phone FROM workshops ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var workshops []*storage.Workshop
	for rows.Next() {
		var w storage.Workshop
		if err := rows.Scan(&w.ID, &w.Name, &w.Location, &w.ContactPerson, &w.Phone); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		workshops = append(workshops, &w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return workshops, nil
}

func (s *Storage) GetWorkshop(ctx context.Context, id int) (*storage.Workshop, error) {
	const op = "storage.mysql.GetWorkshop"

	stmt := `SELECT id, name, location, contact_person, phone FROM workshops WHERE id = ?`

	var w storage.Workshop
	err := s.db.QueryRowContext(ctx, stmt, id).Scan(&w.ID, &w.Name, &w.Location, &w.ContactPerson, &w.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: workshop %d: %w", op, id, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &w, nil
}

func (s *Storage) SaveWorkshop(ctx context.Context, w storage.Workshop) (int64, error) {
	const op = "storage.mysql.SaveWorkshop"

	stmt := `INSERT INTO workshops (name, location, contact_person, phone) VALUES (?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, stmt, w.Name, w.Location, w.ContactPerson, w.Phone)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdateWorkshop(ctx context.Context, w storage.Workshop) error {
	const op = "storage.mysql.UpdateWorkshop"

	stmt := `UPDATE workshops SET name = ?, location = ?, contact_person = ?, phone = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, stmt, w.Name, w.Location, w.ContactPerson, w.Phone, w.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: workshop %d: %w", op, w.ID, ErrNotFound)
	}

	return nil
}

// GetOperators lists operators, optionally narrowed to one workshop
// (workshopID 0 returns everyone).
func (s *Storage) GetOperators(ctx context.Context, workshopID int) ([]*storage.Operator, error) {
	const op = "storage.mysql.GetOperators"

	stmt := `SELECT id, first_name, last_name, workshop_id FROM operators`
	var args []interface{}
	if workshopID != 0 {
		stmt += ` WHERE workshop_id = ?`
		args = append(args, workshopID)
	}
	stmt += ` ORDER BY last_name ASC, first_name ASC`

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var operators []*storage.Operator
	for rows.Next() {
		var o storage.Operator
		var wsID sql.NullInt64
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &wsID); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if wsID.Valid {
			id := int(wsID.Int64)
			o.WorkshopID = &id
		}
		operators = append(operators, &o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return operators, nil
}

func (s *Storage) SaveOperator(ctx context.Context, o storage.Operator) (int64, error) {
	const op = "storage.mysql.SaveOperator"

	stmt := `INSERT INTO operators (first_name, last_name, workshop_id) VALUES (?, ?, ?)`
	res, err := s.db.ExecContext(ctx, stmt, o.FirstName, o.LastName, o.WorkshopID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdateOperator(ctx context.Context, o storage.Operator) error {
	const op = "storage.mysql.UpdateOperator"

	stmt := `UPDATE operators SET first_name = ?, last_name = ?, workshop_id = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, stmt, o.FirstName, o.LastName, o.WorkshopID, o.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: operator %d: %w", op, o.ID, ErrNotFound)
	}

	return nil
}
