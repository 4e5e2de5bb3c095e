package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// SubmitInquiry stores inq with a generated ID and rewrites inquiries.jsonl.
// A zero SubmittedAt is set to the current time.
func (b *Backend) SubmitInquiry(ctx context.Context, inq types.Inquiry) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return "", types.ErrDetached
	}

	if inq.SubmittedAt.IsZero() {
		inq.SubmittedAt = time.Now()
	}
	inq.InquiryID = newUUID()

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin inquiry: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO inquiries (inquiry_id, name, email, phone, category, priority, description, attachment, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inq.InquiryID, inq.Name, inq.Email, inq.Phone, inq.Category, inq.Priority,
		inq.Description, inq.Attachment, inq.SubmittedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert inquiry: %w", err)
	}

	rows, err := queryInquiries(ctx, tx)
	if err != nil {
		return "", err
	}
	if err := writeJSONL(filepath.Join(b.dataDir, inquiriesFile), rows); err != nil {
		return "", fmt.Errorf("persist %s: %w", inquiriesFile, err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit inquiry: %w", err)
	}

	b.logger.Info("Stored inquiry", zap.String("inquiry_id", inq.InquiryID))
	return inq.InquiryID, nil
}

// Inquiries returns every stored inquiry in submission order.
func (b *Backend) Inquiries(ctx context.Context) ([]types.Inquiry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}

	rows, err := queryInquiries(ctx, b.db)
	if err != nil {
		return nil, err
	}
	out := make([]types.Inquiry, 0, len(rows))
	for _, r := range rows {
		submitted, err := time.Parse(time.RFC3339, r.SubmittedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing inquiry submitted_at: %w", err)
		}
		out = append(out, types.Inquiry{
			InquiryID:   r.InquiryID,
			Name:        r.Name,
			Email:       r.Email,
			Phone:       r.Phone,
			Category:    r.Category,
			Priority:    r.Priority,
			Description: r.Description,
			Attachment:  r.Attachment,
			SubmittedAt: submitted,
		})
	}
	return out, nil
}

func queryInquiries(ctx context.Context, q querier) ([]inquiryJSON, error) {
	rows, err := q.QueryContext(ctx, `SELECT inquiry_id, name, email, phone, category, priority, description, attachment, submitted_at
FROM inquiries ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query inquiries: %w", err)
	}
	defer rows.Close()

	out := []inquiryJSON{}
	for rows.Next() {
		var r inquiryJSON
		if err := rows.Scan(&r.InquiryID, &r.Name, &r.Email, &r.Phone, &r.Category, &r.Priority, &r.Description, &r.Attachment, &r.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scanning inquiry: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
