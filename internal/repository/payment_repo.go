package repository

import (
	"context"
	"fmt"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
)

// PaymentRepository defines operations for payment claims
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
}

type paymentRepository struct {
	db DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create inserts a new payment claim
func (r *paymentRepository) Create(ctx context.Context, p *model.Payment) error {
	sql := `INSERT INTO payments (account_id, plan_name, amount, transaction_id, status)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, p.AccountID, p.PlanName, p.Amount, p.TransactionID, p.Status).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}
