package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
)

// AccountRepository defines operations for account data
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	FindByUsername(ctx context.Context, username string) (*model.Account, error)
}

type accountRepository struct {
	db DB
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create inserts a new account. Returns ErrDuplicate on a username collision.
func (r *accountRepository) Create(ctx context.Context, a *model.Account) error {
	sql := `INSERT INTO accounts (username, password, role, subscription_plan, subscription_expiry)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, a.Username, a.Password, a.Role, a.SubscriptionPlan, a.SubscriptionExpiry).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// FindByUsername retrieves an account by username. Not found is not an error
// for this method's contract; the service layer handles the nil account.
func (r *accountRepository) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	a := &model.Account{}
	sql := `SELECT id, username, password, role, subscription_plan, subscription_expiry, created_at
            FROM accounts WHERE username = $1`
	err := r.db.QueryRow(ctx, sql, username).Scan(
		&a.ID, &a.Username, &a.Password, &a.Role, &a.SubscriptionPlan, &a.SubscriptionExpiry, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find account by username: %w", err)
	}
	return a, nil
}
