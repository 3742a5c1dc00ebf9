package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	_ "modernc.org/sqlite"

	"machbridge/internal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS machines (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  brand TEXT NOT NULL,
  year INTEGER,
  condition TEXT NOT NULL,
  price REAL,
  location TEXT NOT NULL,
  source TEXT NOT NULL,
  icon TEXT NOT NULL,
  imageUrl TEXT,
  specsJson TEXT NOT NULL,
  description TEXT NOT NULL,
  hsCode TEXT NOT NULL,
  customsDuty REAL NOT NULL,
  url TEXT,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_machines_category ON machines(category);
CREATE INDEX IF NOT EXISTS idx_machines_source ON machines(source);

CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  summaryJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

// ReplaceCatalog swaps the whole catalog in one transaction. Records are
// immutable, so regeneration always replaces wholesale.
func (d *DB) ReplaceCatalog(records []internal.CatalogRecord) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM machines`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
INSERT INTO machines (
  id, name, category, brand, year, condition, price, location, source,
  icon, imageUrl, specsJson, description, hsCode, customsDuty, url
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		specsJSON, _ := json.Marshal(rec.Specs)
		if _, err := stmt.Exec(
			rec.ID, rec.Name, string(rec.Category), rec.Brand, rec.Year, string(rec.Condition),
			rec.Price, rec.Location, rec.Source, rec.Icon, rec.ImageURL,
			string(specsJSON), rec.Description, rec.HSCode, rec.CustomsDuty, rec.URL,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListMachines returns the catalog in id (encounter) order.
func (d *DB) ListMachines() ([]internal.CatalogRecord, error) {
	rows, err := d.conn.Query(`
SELECT id, name, category, brand, year, condition, price, location, source,
       icon, imageUrl, specsJson, description, hsCode, customsDuty, url
FROM machines ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.CatalogRecord
	for rows.Next() {
		var rec internal.CatalogRecord
		var category, condition, specsJSON string
		if err := rows.Scan(
			&rec.ID, &rec.Name, &category, &rec.Brand, &rec.Year, &condition,
			&rec.Price, &rec.Location, &rec.Source, &rec.Icon, &rec.ImageURL,
			&specsJSON, &rec.Description, &rec.HSCode, &rec.CustomsDuty, &rec.URL,
		); err != nil {
			return nil, err
		}
		rec.Category = internal.Category(category)
		rec.Condition = internal.Condition(condition)
		_ = json.Unmarshal([]byte(specsJSON), &rec.Specs)
		out = append(out, rec)
	}

	return out, rows.Err()
}

func (d *DB) CountByCategory() (map[string]int, error) {
	return d.countBy(`SELECT category, COUNT(*) FROM machines GROUP BY category`)
}

func (d *DB) CountBySource() (map[string]int, error) {
	return d.countBy(`SELECT source, COUNT(*) FROM machines GROUP BY source`)
}

func (d *DB) countBy(query string) (map[string]int, error) {
	rows, err := d.conn.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		out[key] = count
	}
	return out, rows.Err()
}

func (d *DB) InsertRun(traceID string, summary internal.RunSummary) error {
	summaryJSON, _ := json.Marshal(summary)
	_, err := d.conn.Exec(`INSERT INTO runs (traceId, summaryJson) VALUES (?, ?)`, traceID, string(summaryJSON))
	return err
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
