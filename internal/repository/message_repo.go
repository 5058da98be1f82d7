package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
)

// MessageRepository defines operations for the message queue and history
type MessageRepository interface {
	CreateCampaign(ctx context.Context, messages []model.Message) error
	History(ctx context.Context, limit int) ([]model.HistoryEntry, error)
	ClaimDue(ctx context.Context, limit int) ([]model.PendingDelivery, error)
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, reason string) error
}

type messageRepository struct {
	db DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db DB) MessageRepository {
	return &messageRepository{db: db}
}

// CreateCampaign inserts one pending message per contact inside a single
// transaction so the campaign is all-or-nothing.
func (r *messageRepository) CreateCampaign(ctx context.Context, messages []model.Message) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin campaign insert: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sql := `INSERT INTO messages (contact_id, batch_id, content, scheduled_at, status)
            VALUES ($1, $2, $3, $4, $5)`
	for i := range messages {
		m := &messages[i]
		if _, err := tx.Exec(ctx, sql, m.ContactID, m.BatchID, m.Content, m.ScheduledAt, m.Status); err != nil {
			return fmt.Errorf("failed to insert campaign message: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit campaign insert: %w", err)
	}
	return nil
}

// History retrieves recent messages joined with contact and batch names, newest first
func (r *messageRepository) History(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	sql := `SELECT m.id, m.contact_id, m.batch_id, m.content, m.status,
                   m.scheduled_at, m.sent_at, m.error_message, m.created_at,
                   c.name, c.phone, b.name
            FROM messages m
            LEFT JOIN contacts c ON m.contact_id = c.id
            LEFT JOIN batches b ON m.batch_id = b.id
            ORDER BY m.created_at DESC
            LIMIT $1`
	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query message history: %w", err)
	}
	defer rows.Close()

	var history []model.HistoryEntry
	for rows.Next() {
		var h model.HistoryEntry
		var status string
		if err := rows.Scan(
			&h.ID, &h.ContactID, &h.BatchID, &h.Content, &status,
			&h.ScheduledAt, &h.SentAt, &h.ErrorMessage, &h.CreatedAt,
			&h.ContactName, &h.ContactPhone, &h.BatchName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		h.Status = model.MessageStatus(status)
		history = append(history, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}
	return history, nil
}

// ClaimDue selects up to limit due pending messages and moves them to
// "processing" within the same transaction. SKIP LOCKED keeps concurrent
// dispatcher instances from claiming the same rows.
func (r *messageRepository) ClaimDue(ctx context.Context, limit int) ([]model.PendingDelivery, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be > 0")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin claim: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
		SELECT m.id, m.contact_id, COALESCE(c.phone, ''), m.content
		FROM messages m
		LEFT JOIN contacts c ON m.contact_id = c.id
		WHERE m.status = 'pending'
		  AND (m.scheduled_at IS NULL OR m.scheduled_at <= now())
		ORDER BY m.created_at ASC
		FOR UPDATE OF m SKIP LOCKED
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query due messages: %w", err)
	}

	var claimed []model.PendingDelivery
	for rows.Next() {
		var d model.PendingDelivery
		if err := rows.Scan(&d.MessageID, &d.ContactID, &d.Phone, &d.Content); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan due message: %w", err)
		}
		claimed = append(claimed, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating due messages: %w", err)
	}

	if len(claimed) == 0 {
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit empty claim: %w", err)
		}
		return nil, nil
	}

	for _, d := range claimed {
		if _, err := tx.Exec(ctx,
			`UPDATE messages SET status = 'processing' WHERE id = $1`, d.MessageID); err != nil {
			return nil, fmt.Errorf("failed to mark message %d processing: %w", d.MessageID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// MarkSent transitions a message to "sent" and stamps sent_at
func (r *messageRepository) MarkSent(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE messages SET status = 'sent', sent_at = now(), error_message = NULL WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark message %d sent: %w", id, err)
	}
	return nil
}

// MarkFailed transitions a message to "failed" and records the reason
func (r *messageRepository) MarkFailed(ctx context.Context, id int64, reason string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE messages SET status = 'failed', error_message = $2 WHERE id = $1`, id, reason)
	if err != nil {
		return fmt.Errorf("failed to mark message %d failed: %w", id, err)
	}
	return nil
}
