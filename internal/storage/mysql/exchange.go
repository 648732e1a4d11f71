package mysql

import (
	"context"
	"fmt"

	"tekstil-golang/internal/storage"
)

// GetLatestRates returns the newest banknote-selling rate per currency.
func (s *Storage) GetLatestRates(ctx context.Context) ([]*storage.ExchangeRate, error) {
	const op = "storage.mysql.GetLatestRates"

	stmt := `SELECT er.currency_code, er.banknote_selling, er.fetched_at
	         FROM exchange_rates er
	         JOIN (SELECT currency_code, MAX(fetched_at) AS fetched_at
	               FROM exchange_rates GROUP BY currency_code) latest
	           ON latest.currency_code = er.currency_code AND latest.fetched_at = er.fetched_at
	         ORDER BY er.currency_code ASC`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var rates []*storage.ExchangeRate
	for rows.Next() {
		var r storage.ExchangeRate
		if err := rows.Scan(&r.CurrencyCode, &r.BanknoteSelling, &r.FetchedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		rates = append(rates, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return rates, nil
}

// SaveRates appends a batch of fetched rates, history is kept.
func (s *Storage) SaveRates(ctx context.Context, rates []storage.ExchangeRate) error {
	const op = "storage.mysql.SaveRates"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO exchange_rates (currency_code, banknote_selling, fetched_at) VALUES (?, ?, NOW())`)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	for _, r := range rates {
		if _, err := stmt.ExecContext(ctx, r.CurrencyCode, r.BanknoteSelling); err != nil {
			return fmt.Errorf("%s: insert %s: %w", op, r.CurrencyCode, err)
		}
	}

	return tx.Commit()
}
