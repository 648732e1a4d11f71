package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tekstil-golang/internal/storage"
)

var ErrNotFound = errors.New("not found")

const orderColumns = `o.id, o.firm_id, f.name, o.model_id, m.name, o.quantity, o.unit,
	       o.price, o.price_currency, o.status, o.workshop_id, w.name,
	       o.operator_id, o.priority, o.deadline, o.acceptance_date,
	       o.completion_date, o.invoice, o.invoice_number, o.note, o.is_active`

func scanOrder(row interface{ Scan(...any) error }) (*storage.Order, error) {
	var o storage.Order
	var workshopID, operatorID sql.NullInt64
	var workshopName, invoiceNumber, note sql.NullString
	var deadline, completionDate sql.NullTime

	err := row.Scan(&o.ID, &o.FirmID, &o.FirmName, &o.ModelID, &o.ModelName,
		&o.Quantity, &o.Unit, &o.Price, &o.PriceCurrency, &o.Status,
		&workshopID, &workshopName, &operatorID, &o.Priority, &deadline,
		&o.AcceptanceDate, &completionDate, &o.Invoice, &invoiceNumber,
		&note, &o.IsActive)
	if err != nil {
		return nil, err
	}

	if workshopID.Valid {
		id := int(workshopID.Int64)
		o.WorkshopID = &id
	}
	if workshopName.Valid {
		o.WorkshopName = &workshopName.String
	}
	if operatorID.Valid {
		id := int(operatorID.Int64)
		o.OperatorID = &id
	}
	if deadline.Valid {
		o.Deadline = &deadline.Time
	}
	if completionDate.Valid {
		o.CompletionDate = &completionDate.Time
	}
	if invoiceNumber.Valid {
		o.InvoiceNumber = &invoiceNumber.String
	}
	if note.Valid {
		o.Note = &note.String
	}

	return &o, nil
}

func (s *Storage) GetOrders(ctx context.Context, filter storage.OrderFilter) ([]*storage.Order, error) {
	const op = "storage.mysql.GetOrders"

	stmt := `SELECT ` + orderColumns + `
	         FROM orders o
	         JOIN firms f ON f.id = o.firm_id
	         JOIN models m ON m.id = o.model_id
	         LEFT JOIN workshops w ON w.id = o.workshop_id
	         WHERE 1=1`
	var args []interface{}

	if !filter.IncludeInactive {
		stmt += " AND o.is_active = TRUE"
	}
	if filter.Year != 0 {
		start := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
		if filter.Month == 0 {
			start = time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
			stmt += " AND o.acceptance_date >= ? AND o.acceptance_date < ?"
			args = append(args, start, start.AddDate(1, 0, 0))
		} else {
			stmt += " AND o.acceptance_date >= ? AND o.acceptance_date < ?"
			args = append(args, start, start.AddDate(0, 1, 0))
		}
	}
	if filter.FirmID != 0 {
		stmt += " AND o.firm_id = ?"
		args = append(args, filter.FirmID)
	}
	if filter.ModelID != 0 {
		stmt += " AND o.model_id = ?"
		args = append(args, filter.ModelID)
	}
	if filter.WorkshopID != 0 {
		stmt += " AND o.workshop_id = ?"
		args = append(args, filter.WorkshopID)
	}
	if filter.Status != nil {
		stmt += " AND o.status = ?"
		args = append(args, int(*filter.Status))
	}

	stmt += " ORDER BY o.priority ASC, o.acceptance_date DESC"

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var orders []*storage.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		orders = append(orders, order)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return orders, nil
}

func (s *Storage) GetOrder(ctx context.Context, id int) (*storage.Order, error) {
	const op = "storage.mysql.GetOrder"

	stmt := `SELECT ` + orderColumns + `
	         FROM orders o
	         JOIN firms f ON f.id = o.firm_id
	         JOIN models m ON m.id = o.model_id
	         LEFT JOIN workshops w ON w.id = o.workshop_id
	         WHERE o.id = ?`

	order, err := scanOrder(s.db.QueryRowContext(ctx, stmt, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: order %d: %w", op, id, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return order, nil
}

func (s *Storage) SaveOrder(ctx context.Context, req storage.SaveOrder) (int64, error) {
	const op = "storage.mysql.SaveOrder"

	stmt := `INSERT INTO orders (firm_id, model_id, quantity, unit, price, price_currency,
	            status, priority, deadline, acceptance_date, invoice, invoice_number, note, is_active)
	         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), ?, ?, ?, TRUE)`

	res, err := s.db.ExecContext(ctx, stmt, req.FirmID, req.ModelID, req.Quantity,
		int(req.Unit), req.Price, req.PriceCurrency, int(storage.StatusUnassigned),
		req.Priority, req.Deadline, req.Invoice, req.InvoiceNumber, req.Note)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdateOrder(ctx context.Context, id int, req storage.SaveOrder) error {
	const op = "storage.mysql.UpdateOrder"

	stmt := `UPDATE orders SET firm_id = ?, model_id = ?, quantity = ?, unit = ?, price = ?,
	            price_currency = ?, priority = ?, deadline = ?, invoice = ?, invoice_number = ?, note = ?
	         WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, req.FirmID, req.ModelID, req.Quantity,
		int(req.Unit), req.Price, req.PriceCurrency, req.Priority, req.Deadline,
		req.Invoice, req.InvoiceNumber, req.Note, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: order %d: %w", op, id, ErrNotFound)
	}

	return nil
}

// AssignOrder persists workshop, operator and status as one UPDATE.
// completion_date is set exactly when the new status is Completed and
// cleared otherwise, keeping the date/status invariant in one place.
func (s *Storage) AssignOrder(ctx context.Context, orderID int, workshopID int, operatorID *int, status storage.OrderStatus) error {
	const op = "storage.mysql.AssignOrder"

	stmt := `UPDATE orders
	         SET workshop_id = ?, operator_id = ?, status = ?,
	             completion_date = IF(? = ?, NOW(), NULL)
	         WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, workshopID, operatorID, int(status),
		int(status), int(storage.StatusCompleted), orderID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: order %d: %w", op, orderID, ErrNotFound)
	}

	return nil
}

func (s *Storage) UpdateOrderStatus(ctx context.Context, orderID int, status storage.OrderStatus) error {
	const op = "storage.mysql.UpdateOrderStatus"

	stmt := `UPDATE orders
	         SET status = ?, completion_date = IF(? = ?, NOW(), NULL)
	         WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, int(status), int(status),
		int(storage.StatusCompleted), orderID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: order %d: %w", op, orderID, ErrNotFound)
	}

	return nil
}

// DeactivateOrder soft-deletes, orders are never removed.
func (s *Storage) DeactivateOrder(ctx context.Context, orderID int) error {
	const op = "storage.mysql.DeactivateOrder"

	res, err := s.db.ExecContext(ctx, `UPDATE orders SET is_active = FALSE WHERE id = ?`, orderID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: order %d: %w", op, orderID, ErrNotFound)
	}

	return nil
}

func (s *Storage) SaveOrderLog(ctx context.Context, orderID int, action, detail string) error {
	const op = "storage.mysql.SaveOrderLog"

	stmt := `INSERT INTO order_logs (order_id, action, detail, created_at) VALUES (?, ?, ?, NOW())`
	if _, err := s.db.ExecContext(ctx, stmt, orderID, action, detail); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetOrderLogs(ctx context.Context, orderID int) ([]*storage.OrderLog, error) {
	const op = "storage.mysql.GetOrderLogs"

	stmt := `SELECT id, order_id, action, detail, created_at
	         FROM order_logs WHERE order_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, stmt, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var logs []*storage.OrderLog
	for rows.Next() {
		var l storage.OrderLog
		if err := rows.Scan(&l.ID, &l.OrderID, &l.Action, &l.Detail, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		logs = append(logs, &l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return logs, nil
}
