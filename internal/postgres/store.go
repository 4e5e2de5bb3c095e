// Package postgres implements the contact store on PostgreSQL using a pgx
// connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS contacts (
    seq BIGSERIAL UNIQUE,
    contact_id TEXT PRIMARY KEY,
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS inquiries (
    seq BIGSERIAL UNIQUE,
    inquiry_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    priority TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL,
    attachment TEXT NOT NULL DEFAULT '',
    submitted_at TIMESTAMPTZ NOT NULL
);`

// contactColumns maps record field names to contacts columns.
var contactColumns = map[string]string{
	types.FieldFirstName: "first_name",
	types.FieldLastName:  "last_name",
	types.FieldEmail:     "email",
	types.FieldPhone:     "phone",
}

// Store implements types.ContactStore and types.InquirySubmitter for PostgreSQL.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// Open connects to dsn and verifies the connection.
func Open(ctx context.Context, dsn string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool, logger: logger}, nil
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}

// EnsureSchema creates the tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// FetchRecords returns every contact in insertion order.
func (s *Store) FetchRecords(ctx context.Context) ([]types.Record, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT contact_id, first_name, last_name, email, phone
		FROM contacts
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	records := []types.Record{}
	for rows.Next() {
		var id, first, last, email, phone string
		if err := rows.Scan(&id, &first, &last, &email, &phone); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		records = append(records, types.Record{ID: id, Fields: map[string]any{
			types.FieldFirstName: first,
			types.FieldLastName:  last,
			types.FieldEmail:     email,
			types.FieldPhone:     phone,
		}})
	}
	return records, rows.Err()
}

// SaveRecords applies every draft in one transaction, with the same
// rejection rules as the SQLite backend.
func (s *Store) SaveRecords(ctx context.Context, drafts []types.DraftEdit) (err error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				s.logger.Warn("Rollback failed", zap.Error(rbErr))
			}
		}
	}()

	now := time.Now().UTC()
	for _, d := range drafts {
		stmt, args, err := updateStatement(d, now)
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, stmt, args...)
		if err != nil {
			return fmt.Errorf("update contact %s: %w", d.RecordID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("update contact %s: %w", d.RecordID, types.ErrNotFound)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	s.logger.Info("Saved contact drafts", zap.Int("records", len(drafts)))
	return nil
}

// AddContact inserts a contact and returns its generated ID.
func (s *Store) AddContact(ctx context.Context, fields map[string]any) (string, error) {
	for f := range fields {
		if _, ok := contactColumns[f]; !ok {
			return "", fmt.Errorf("%w: %q", types.ErrInvalidField, f)
		}
	}
	id := uuid.Must(uuid.NewV7()).String()
	now := time.Now().UTC()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO contacts (contact_id, first_name, last_name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`,
		id,
		text(fields[types.FieldFirstName]),
		text(fields[types.FieldLastName]),
		text(fields[types.FieldEmail]),
		text(fields[types.FieldPhone]),
		now,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert contact: %w", err)
	}
	return id, nil
}

// Seed inserts the sample contacts when the contacts table is empty and
// returns how many were inserted.
func (s *Store) Seed(ctx context.Context) (int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var count int
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM contacts").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	samples := types.SampleContacts()
	for _, fields := range samples {
		_, err := tx.Exec(ctx, `
			INSERT INTO contacts (contact_id, first_name, last_name, email, phone, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
		`,
			uuid.Must(uuid.NewV7()).String(),
			text(fields[types.FieldFirstName]),
			text(fields[types.FieldLastName]),
			text(fields[types.FieldEmail]),
			text(fields[types.FieldPhone]),
			now,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert sample contact: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	s.logger.Info("Seeded sample contacts", zap.Int("count", len(samples)))
	return len(samples), nil
}

// SubmitInquiry stores inq and returns its generated ID.
func (s *Store) SubmitInquiry(ctx context.Context, inq types.Inquiry) (string, error) {
	if inq.SubmittedAt.IsZero() {
		inq.SubmittedAt = time.Now()
	}
	id := uuid.Must(uuid.NewV7()).String()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO inquiries (inquiry_id, name, email, phone, category, priority, description, attachment, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, id, inq.Name, inq.Email, inq.Phone, inq.Category, inq.Priority, inq.Description, inq.Attachment, inq.SubmittedAt.UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return id, nil
}

// updateStatement builds the UPDATE for one draft with numbered
// placeholders, columns in sorted field order.
func updateStatement(d types.DraftEdit, updatedAt time.Time) (string, []any, error) {
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
		args = append(args, text(d.Changes[f]))
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	args = append(args, updatedAt)
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, d.RecordID)
	stmt := fmt.Sprintf("UPDATE contacts SET %s WHERE contact_id = $%d", strings.Join(sets, ", "), len(args))
	return stmt, args, nil
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
