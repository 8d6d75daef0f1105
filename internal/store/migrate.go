package store

import (
	"database/sql"
	"fmt"
)

const schemaVersion = 2

var schemaV1 = []string{`
CREATE TABLE IF NOT EXISTS requests (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  request_name TEXT NOT NULL,
  category TEXT NOT NULL,
  status TEXT NOT NULL CHECK (status IN ('completed','processing','pending','failed')),
  submitted TEXT NOT NULL,
  collected TEXT,
  duration TEXT NOT NULL DEFAULT '',
  weight TEXT NOT NULL DEFAULT '',
  earnings TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  recycling_center TEXT NOT NULL DEFAULT '',
  failure_reason TEXT NOT NULL DEFAULT ''
);`, `
CREATE TABLE IF NOT EXISTS tracking_items (
  id INTEGER PRIMARY KEY,
  route TEXT NOT NULL,
  order_id TEXT NOT NULL UNIQUE,
  status TEXT NOT NULL,
  status_type TEXT NOT NULL,
  pickup TEXT NOT NULL DEFAULT '{}',
  destination TEXT NOT NULL DEFAULT '{}',
  driver TEXT NOT NULL DEFAULT '{}',
  items TEXT NOT NULL DEFAULT '[]',
  coordinates TEXT NOT NULL DEFAULT '{}'
);`, `
CREATE TABLE IF NOT EXISTS centers (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  location TEXT NOT NULL,
  rating REAL NOT NULL DEFAULT 0,
  materials TEXT NOT NULL DEFAULT '[]',
  price_per_kg TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL DEFAULT ''
);`, `
CREATE TABLE IF NOT EXISTS categories (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  price TEXT NOT NULL,
  icon TEXT NOT NULL DEFAULT ''
);`, `
CREATE INDEX IF NOT EXISTS idx_requests_status ON requests(status);`,
}

var schemaV2 = []string{`
CREATE TABLE IF NOT EXISTS profile (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT ''
);`, `
CREATE TABLE IF NOT EXISTS profile_settings (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  section TEXT NOT NULL CHECK (section IN ('notifications','security')),
  name TEXT NOT NULL,
  label TEXT NOT NULL,
  enabled INTEGER,
  UNIQUE (section, name)
);`, `
CREATE TABLE IF NOT EXISTS payment_methods (
  id INTEGER PRIMARY KEY,
  type TEXT NOT NULL CHECK (type IN ('bank','card')),
  last4 TEXT NOT NULL,
  is_primary INTEGER NOT NULL DEFAULT 0
);`,
}

// migrations[i] takes the schema from user_version i to i+1.
var migrations = [][]string{schemaV1, schemaV2}

// Migrate brings the schema up to schemaVersion, tracked in PRAGMA user_version.
func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= schemaVersion {
		return tx.Commit()
	}

	for i := v; i < len(migrations); i++ {
		for _, stmt := range migrations[i] {
			if _, err := tx.Exec(stmt); err != nil {
				return fmt.Errorf("migrate v%d: %w", i+1, err)
			}
		}
	}

	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d;`, schemaVersion)); err != nil {
		return err
	}
	return tx.Commit()
}
