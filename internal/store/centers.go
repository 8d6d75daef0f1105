package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"earn-recycle-engine/internal/domain"
)

func ListCenters(ctx context.Context, db *sql.DB) ([]domain.Center, error) {
	rows, err := db.QueryContext(ctx, `
SELECT id, name, location, rating, materials, price_per_kg, image
FROM centers
ORDER BY id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("list centers: %w", err)
	}
	defer rows.Close()

	out := []domain.Center{}
	for rows.Next() {
		var c domain.Center
		var materials string
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Rating, &materials, &c.PricePerKg, &c.Image); err != nil {
			return nil, fmt.Errorf("scan center: %w", err)
		}
		_ = json.Unmarshal([]byte(materials), &c.Materials)
		out = append(out, c)
	}
	return out, rows.Err()
}

func ListCategories(ctx context.Context, db *sql.DB) ([]domain.Category, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, price, icon FROM categories ORDER BY seq ASC;`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Price, &c.Icon); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func insertCenterIgnore(ctx context.Context, tx *sql.Tx, c domain.Center) (bool, error) {
	materials, _ := json.Marshal(c.Materials)
	res, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO centers (id, name, location, rating, materials, price_per_kg, image)
VALUES (?, ?, ?, ?, ?, ?, ?);`,
		c.ID, c.Name, c.Location, c.Rating, string(materials), c.PricePerKg, c.Image)
	if err != nil {
		return false, fmt.Errorf("insert center %d: %w", c.ID, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func insertCategoryIgnore(ctx context.Context, tx *sql.Tx, c domain.Category) (bool, error) {
	res, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO categories (id, name, price, icon)
VALUES (?, ?, ?, ?);`, c.ID, c.Name, c.Price, c.Icon)
	if err != nil {
		return false, fmt.Errorf("insert category %s: %w", c.ID, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
