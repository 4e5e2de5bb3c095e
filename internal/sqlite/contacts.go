package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

const selectContacts = `SELECT contact_id, first_name, last_name, email, phone, created_at, updated_at
FROM contacts ORDER BY rowid`

// FetchRecords returns every contact in insertion order.
func (b *Backend) FetchRecords(ctx context.Context) ([]types.Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}

	rows, err := queryContacts(ctx, b.db)
	if err != nil {
		return nil, err
	}
	records := make([]types.Record, 0, len(rows))
	for _, c := range rows {
		records = append(records, c.record())
	}
	return records, nil
}

// SaveRecords applies every draft in one transaction. An empty record ID
// fails with types.ErrInvalidID, an unknown record with types.ErrNotFound,
// and an unknown field with types.ErrInvalidField; any failure rolls back
// the whole batch and leaves contacts.jsonl untouched.
func (b *Backend) SaveRecords(ctx context.Context, drafts []types.DraftEdit) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return types.ErrDetached
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, d := range drafts {
		stmt, args, err := updateStatement(d, now)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, stmt, args...)
		if err != nil {
			return fmt.Errorf("update contact %s: %w", d.RecordID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update contact %s: %w", d.RecordID, err)
		}
		if n == 0 {
			return fmt.Errorf("update contact %s: %w", d.RecordID, types.ErrNotFound)
		}
	}

	if err := b.persistContacts(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	b.logger.Info("Saved contact drafts", zap.Int("records", len(drafts)))
	return nil
}

// AddContact inserts a new contact and returns its generated ID.
func (b *Backend) AddContact(ctx context.Context, fields map[string]any) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return "", types.ErrDetached
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin add: %w", err)
	}
	defer tx.Rollback()

	id := newUUID()
	if err := insertContact(ctx, tx, id, fields, time.Now().UTC()); err != nil {
		return "", err
	}
	if err := b.persistContacts(ctx, tx); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit add: %w", err)
	}
	return id, nil
}

// insertContact writes one contacts row. Unknown fields fail with
// types.ErrInvalidField.
func insertContact(ctx context.Context, tx *sql.Tx, id string, fields map[string]any, at time.Time) error {
	for f := range fields {
		if _, ok := contactColumns[f]; !ok {
			return fmt.Errorf("%w: %q", types.ErrInvalidField, f)
		}
	}
	ts := at.Format(time.RFC3339)
	_, err := tx.ExecContext(ctx,
		`INSERT INTO contacts (contact_id, first_name, last_name, email, phone, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id,
		stringValue(fields[types.FieldFirstName]),
		stringValue(fields[types.FieldLastName]),
		stringValue(fields[types.FieldEmail]),
		stringValue(fields[types.FieldPhone]),
		ts, ts,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// updateStatement builds the UPDATE for one draft. Columns are emitted in
// sorted field order so the statement is deterministic.
func updateStatement(d types.DraftEdit, updatedAt string) (string, []any, error) {
	if d.RecordID == "" {
		return "", nil, types.ErrInvalidID
	}
	fields := make([]string, 0, len(d.Changes))
	for f := range d.Changes {
		fields = append(fields, f)
	}
	slices.Sort(fields)

	sets := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)
	for _, f := range fields {
		col, ok := contactColumns[f]
		if !ok {
			return "", nil, fmt.Errorf("update contact %s: %w: %q", d.RecordID, types.ErrInvalidField, f)
		}
		sets = append(sets, col+" = ?")
		args = append(args, stringValue(d.Changes[f]))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, updatedAt, d.RecordID)
	return "UPDATE contacts SET " + strings.Join(sets, ", ") + " WHERE contact_id = ?", args, nil
}

// persistContacts rewrites contacts.jsonl from the rows visible to q.
func (b *Backend) persistContacts(ctx context.Context, q querier) error {
	rows, err := queryContacts(ctx, q)
	if err != nil {
		return err
	}
	if err := writeJSONL(filepath.Join(b.dataDir, contactsFile), rows); err != nil {
		return fmt.Errorf("persist %s: %w", contactsFile, err)
	}
	return nil
}

func queryContacts(ctx context.Context, q querier) ([]contactJSON, error) {
	rows, err := q.QueryContext(ctx, selectContacts)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	out := []contactJSON{}
	for rows.Next() {
		var c contactJSON
		if err := rows.Scan(&c.ContactID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// record converts a row into a Record keyed by the standard field names.
func (c contactJSON) record() types.Record {
	values := []string{c.FirstName, c.LastName, c.Email, c.Phone}
	fields := make(map[string]any, len(values))
	for i, f := range contactFieldOrder {
		fields[f] = values[i]
	}
	return types.Record{ID: c.ContactID, Fields: fields}
}

// stringValue renders a scalar as column text; nil becomes "".
func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
