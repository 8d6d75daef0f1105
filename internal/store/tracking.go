package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"earn-recycle-engine/internal/domain"
)

func ListTracking(ctx context.Context, db *sql.DB) ([]domain.TrackingItem, error) {
	rows, err := db.QueryContext(ctx, `
SELECT id, route, order_id, status, status_type, pickup, destination, driver, items, coordinates
FROM tracking_items
ORDER BY id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("list tracking: %w", err)
	}
	defer rows.Close()

	out := []domain.TrackingItem{}
	for rows.Next() {
		var it domain.TrackingItem
		var statusType, pickup, dest, driver, items, coords string
		if err := rows.Scan(&it.ID, &it.Route, &it.OrderID, &it.Status, &statusType,
			&pickup, &dest, &driver, &items, &coords); err != nil {
			return nil, fmt.Errorf("scan tracking: %w", err)
		}
		it.StatusType = domain.StatusType(statusType)

		for _, col := range []struct {
			name string
			raw  string
			dst  any
		}{
			{"pickup", pickup, &it.Pickup},
			{"destination", dest, &it.Destination},
			{"driver", driver, &it.Driver},
			{"items", items, &it.Items},
			{"coordinates", coords, &it.Coordinates},
		} {
			if err := json.Unmarshal([]byte(col.raw), col.dst); err != nil {
				return nil, fmt.Errorf("tracking %d %s: %w", it.ID, col.name, err)
			}
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func InsertTrackingIgnore(ctx context.Context, tx *sql.Tx, it domain.TrackingItem) (added bool, err error) {
	enc := func(v any) string {
		b, _ := json.Marshal(v)
		return string(b)
	}
	items := it.Items
	if items == nil {
		items = []string{}
	}
	res, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO tracking_items (id, route, order_id, status, status_type, pickup, destination, driver, items, coordinates)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		it.ID, it.Route, it.OrderID, it.Status, string(it.StatusType),
		enc(it.Pickup), enc(it.Destination), enc(it.Driver), enc(items), enc(it.Coordinates),
	)
	if err != nil {
		return false, fmt.Errorf("insert tracking %d: %w", it.ID, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
