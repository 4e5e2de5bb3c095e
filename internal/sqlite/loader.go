package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// jsonlTableMapping maps JSONL filenames to their SQLite tables and column lists.
var jsonlTableMapping = []struct {
	file    string
	table   string
	columns []string
}{
	{contactsFile, "contacts", []string{"contact_id", "first_name", "last_name", "email", "phone", "created_at", "updated_at"}},
	{inquiriesFile, "inquiries", []string{"inquiry_id", "name", "email", "phone", "category", "priority", "description", "attachment", "submitted_at"}},
}

// loadAllJSONL reads each JSONL file from dataDir and inserts its records
// into the matching table, in file order. Loading is transactional: all
// files load or the database stays empty. Malformed lines, records that
// violate constraints, and unknown JSON fields are skipped.
func loadAllJSONL(ctx context.Context, db *sql.DB, dataDir string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, mapping := range jsonlTableMapping {
		records, err := readJSONL(filepath.Join(dataDir, mapping.file))
		if err != nil {
			return fmt.Errorf("reading %s: %w", mapping.file, err)
		}
		if len(records) == 0 {
			continue
		}
		if err := insertRecords(ctx, tx, mapping.table, mapping.columns, records); err != nil {
			return fmt.Errorf("loading %s into %s: %w", mapping.file, mapping.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// insertRecords inserts parsed JSONL records into table. Only the listed
// columns are read; missing string columns load as "". The first column is
// the primary key and records without one are skipped.
func insertRecords(ctx context.Context, tx *sql.Tx, table string, columns []string, records []json.RawMessage) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders)

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert for %s: %w", table, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		var obj map[string]any
		if err := json.Unmarshal(rec, &obj); err != nil {
			continue
		}

		args := make([]any, len(columns))
		for i, col := range columns {
			args[i] = stringValue(obj[col])
		}
		if args[0] == "" {
			continue
		}

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			continue
		}
	}
	return nil
}
