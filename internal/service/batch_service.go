package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
	"github.com/prajwalnawale3040/trio-developers/internal/repository"
)

var ErrBatchNameTaken = errors.New("batch name already exists")

// BatchService defines operations for batches
type BatchService interface {
	CreateBatch(ctx context.Context, req model.CreateBatchRequest) (*model.Batch, error)
	ListBatches(ctx context.Context) ([]model.Batch, error)
}

type batchService struct {
	repo repository.BatchRepository
}

// NewBatchService creates a new BatchService
func NewBatchService(repo repository.BatchRepository) BatchService {
	return &batchService{repo: repo}
}

func (s *batchService) CreateBatch(ctx context.Context, req model.CreateBatchRequest) (*model.Batch, error) {
	batch := &model.Batch{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, batch); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrBatchNameTaken
		}
		return nil, fmt.Errorf("failed to create batch in repo: %w", err)
	}
	return batch, nil
}

func (s *batchService) ListBatches(ctx context.Context) ([]model.Batch, error) {
	batches, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches from repo: %w", err)
	}
	return batches, nil
}
