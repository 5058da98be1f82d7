package service

import (
	"context"
	"fmt"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
	"github.com/prajwalnawale3040/trio-developers/internal/repository"
)

// The console is single-tenant; every claim is recorded against the seeded
// admin account until multi-account billing exists.
const defaultAccountID = 1

// PaymentService records subscription payment claims
type PaymentService interface {
	RecordClaim(ctx context.Context, req model.VerifyPaymentRequest) (*model.Payment, error)
}

type paymentService struct {
	repo repository.PaymentRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(repo repository.PaymentRepository) PaymentService {
	return &paymentService{repo: repo}
}

// RecordClaim inserts the claim as "pending". Review of the claim (manual or
// via a gateway webhook) is out of scope; nothing here transitions it.
func (s *paymentService) RecordClaim(ctx context.Context, req model.VerifyPaymentRequest) (*model.Payment, error) {
	payment := &model.Payment{
		AccountID:     defaultAccountID,
		PlanName:      req.PlanName,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		Status:        model.PaymentPending,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment claim: %w", err)
	}
	return payment, nil
}
