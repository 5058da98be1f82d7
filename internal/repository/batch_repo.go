package repository

import (
	"context"
	"fmt"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
)

// BatchRepository defines operations for batch data
type BatchRepository interface {
	Create(ctx context.Context, batch *model.Batch) error
	List(ctx context.Context) ([]model.Batch, error)
}

type batchRepository struct {
	db DB
}

// NewBatchRepository creates a new BatchRepository
func NewBatchRepository(db DB) BatchRepository {
	return &batchRepository{db: db}
}

// Create inserts a new batch. Returns ErrDuplicate on a name collision.
func (r *batchRepository) Create(ctx context.Context, b *model.Batch) error {
	sql := `INSERT INTO batches (name, description) VALUES ($1, $2) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, b.Name, b.Description).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create batch: %w", err)
	}
	return nil
}

// List retrieves all batches
func (r *batchRepository) List(ctx context.Context) ([]model.Batch, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description, created_at FROM batches ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query batches: %w", err)
	}
	defer rows.Close()

	var batches []model.Batch
	for rows.Next() {
		var b model.Batch
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan batch row: %w", err)
		}
		batches = append(batches, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating batch rows: %w", err)
	}
	return batches, nil
}
