package repository

import (
	"context"
	"fmt"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
)

// ContactRepository defines operations for contact data
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	CreateBulk(ctx context.Context, contacts []model.Contact) error
	List(ctx context.Context) ([]model.Contact, error)
	ListIDsByBatch(ctx context.Context, batchID int64) ([]int64, error)
}

type contactRepository struct {
	db DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create inserts a new contact into the database
func (r *contactRepository) Create(ctx context.Context, c *model.Contact) error {
	sql := `INSERT INTO contacts (name, phone, batch_id, tags, category, notes)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, c.Name, c.Phone, c.BatchID, c.Tags, c.Category, c.Notes).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// CreateBulk inserts all contacts inside a single transaction so the import
// is all-or-nothing.
func (r *contactRepository) CreateBulk(ctx context.Context, contacts []model.Contact) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin bulk insert: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sql := `INSERT INTO contacts (name, phone, batch_id, tags, category, notes)
            VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range contacts {
		c := &contacts[i]
		if _, err := tx.Exec(ctx, sql, c.Name, c.Phone, c.BatchID, c.Tags, c.Category, c.Notes); err != nil {
			return fmt.Errorf("failed to insert contact %q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit bulk insert: %w", err)
	}
	return nil
}

// List retrieves all contacts, newest first
func (r *contactRepository) List(ctx context.Context) ([]model.Contact, error) {
	sql := `SELECT id, name, phone, batch_id, tags, category, notes, created_at
            FROM contacts ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.BatchID, &c.Tags, &c.Category, &c.Notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}
	return contacts, nil
}

// ListIDsByBatch returns the ids of all contacts currently in the batch
func (r *contactRepository) ListIDsByBatch(ctx context.Context, batchID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM contacts WHERE batch_id = $1`, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query batch contacts: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan contact id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact ids: %w", err)
	}
	return ids, nil
}
