package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"earn-recycle-engine/internal/domain"
)

// timeLayout is wall-clock time without a zone, read back in time.Local.
const timeLayout = "2006-01-02T15:04:05"

// ListRequests returns every request in insertion order.
func ListRequests(ctx context.Context, db *sql.DB) ([]domain.Request, error) {
	rows, err := db.QueryContext(ctx, `
SELECT id, request_name, category, status, submitted, collected, duration,
       weight, earnings, location, recycling_center, failure_reason
FROM requests
ORDER BY seq ASC;`)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	out := []domain.Request{}
	for rows.Next() {
		var r domain.Request
		var status, submitted string
		var collected sql.NullString
		if err := rows.Scan(
			&r.ID,
			&r.RequestName,
			&r.Category,
			&status,
			&submitted,
			&collected,
			&r.Duration,
			&r.Weight,
			&r.Earnings,
			&r.Location,
			&r.RecyclingCenter,
			&r.FailureReason,
		); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		r.Status = domain.Status(status)
		if r.Submitted, err = time.ParseInLocation(timeLayout, submitted, time.Local); err != nil {
			return nil, fmt.Errorf("request %s submitted: %w", r.ID, err)
		}
		if collected.Valid && collected.String != "" {
			t, err := time.ParseInLocation(timeLayout, collected.String, time.Local)
			if err != nil {
				return nil, fmt.Errorf("request %s collected: %w", r.ID, err)
			}
			r.Collected = &t
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// InsertRequestIgnore adds r unless a request with the same id exists.
func InsertRequestIgnore(ctx context.Context, tx *sql.Tx, r domain.Request) (added bool, err error) {
	var collected any
	if r.Collected != nil {
		collected = r.Collected.Format(timeLayout)
	}
	res, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO requests (id, request_name, category, status, submitted, collected,
                                duration, weight, earnings, location, recycling_center, failure_reason)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		r.ID, r.RequestName, r.Category, string(r.Status), r.Submitted.Format(timeLayout), collected,
		r.Duration, r.Weight, r.Earnings, r.Location, r.RecyclingCenter, r.FailureReason,
	)
	if err != nil {
		return false, fmt.Errorf("insert request %s: %w", r.ID, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
