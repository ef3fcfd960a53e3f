package buildlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Mavwarf/tabicons/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite database at path and creates
// the icons table.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}

	ddl := `
CREATE TABLE IF NOT EXISTS icons (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp TEXT    NOT NULL,
    variant   TEXT    NOT NULL,
    file      TEXT    NOT NULL,
    size      INTEGER NOT NULL,
    bytes     INTEGER NOT NULL,
    sha256    TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_icons_file ON icons(file);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Record(r Record) error {
	if r.Time.IsZero() {
		r.Time = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO icons (timestamp, variant, file, size, bytes, sha256) VALUES (?, ?, ?, ?, ?, ?)`,
		r.Time.Format(time.RFC3339), r.Variant, r.File, r.Size, r.Bytes, r.SHA256,
	)
	return err
}

func (s *SQLiteStore) Entries(limit int) ([]Record, error) {
	query := `SELECT timestamp, variant, file, size, bytes, sha256 FROM icons ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var tsStr string
		if err := rows.Scan(&tsStr, &r.Variant, &r.File, &r.Size, &r.Bytes, &r.SHA256); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			continue
		}
		r.Time = ts
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Query newest first so LIMIT keeps the latest; return oldest first.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM icons`)
	return err
}

func (s *SQLiteStore) Path() string {
	return s.path
}
