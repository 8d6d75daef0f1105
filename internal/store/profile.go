package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"earn-recycle-engine/internal/domain"
)

const (
	sectionNotifications = "notifications"
	sectionSecurity      = "security"
)

// GetProfile returns the stored profile, or nil when none has been seeded.
func GetProfile(ctx context.Context, db *sql.DB) (*domain.Profile, error) {
	var p domain.Profile
	err := db.QueryRowContext(ctx, `SELECT name, email, phone FROM profile WHERE id = 1;`).
		Scan(&p.Name, &p.Email, &p.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p.Notifications = []domain.Setting{}
	p.Security = []domain.SecurityOption{}
	rows, err := db.QueryContext(ctx, `
SELECT section, name, label, enabled
FROM profile_settings
ORDER BY seq ASC;`)
	if err != nil {
		return nil, fmt.Errorf("list profile settings: %w", err)
	}
	for rows.Next() {
		var section, name, label string
		var enabled sql.NullBool
		if err := rows.Scan(&section, &name, &label, &enabled); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan profile setting: %w", err)
		}
		switch section {
		case sectionNotifications:
			p.Notifications = append(p.Notifications, domain.Setting{Name: name, Label: label, Enabled: enabled.Bool})
		case sectionSecurity:
			opt := domain.SecurityOption{Name: name, Label: label}
			if enabled.Valid {
				opt.Enabled = &enabled.Bool
			}
			p.Security = append(p.Security, opt)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	p.PaymentMethods = []domain.PaymentMethod{}
	rows, err = db.QueryContext(ctx, `SELECT id, type, last4, is_primary FROM payment_methods ORDER BY id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m domain.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Type, &m.Last4, &m.Primary); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		p.PaymentMethods = append(p.PaymentMethods, m)
	}
	return &p, rows.Err()
}

// insertProfileIgnore seeds p. Settings and payment methods are only
// written together with a new profile row.
func insertProfileIgnore(ctx context.Context, tx *sql.Tx, p domain.Profile) (bool, error) {
	res, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO profile (id, name, email, phone)
VALUES (1, ?, ?, ?);`, p.Name, p.Email, p.Phone)
	if err != nil {
		return false, fmt.Errorf("insert profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, nil
	}

	insertSetting := func(section, name, label string, enabled *bool) error {
		var v any
		if enabled != nil {
			v = *enabled
		}
		_, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO profile_settings (section, name, label, enabled)
VALUES (?, ?, ?, ?);`, section, name, label, v)
		if err != nil {
			return fmt.Errorf("insert %s setting %s: %w", section, name, err)
		}
		return nil
	}
	for _, s := range p.Notifications {
		if err := insertSetting(sectionNotifications, s.Name, s.Label, &s.Enabled); err != nil {
			return false, err
		}
	}
	for _, o := range p.Security {
		if err := insertSetting(sectionSecurity, o.Name, o.Label, o.Enabled); err != nil {
			return false, err
		}
	}
	for _, m := range p.PaymentMethods {
		_, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO payment_methods (id, type, last4, is_primary)
VALUES (?, ?, ?, ?);`, m.ID, string(m.Type), m.Last4, m.Primary)
		if err != nil {
			return false, fmt.Errorf("insert payment method %d: %w", m.ID, err)
		}
	}
	return true, nil
}
