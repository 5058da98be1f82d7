package service

import (
	"context"
	"fmt"
	"log"

	"github.com/prajwalnawale3040/trio-developers/internal/cache"
	"github.com/prajwalnawale3040/trio-developers/internal/model"
	"github.com/prajwalnawale3040/trio-developers/internal/repository"
)

// StatsService serves the dashboard aggregate counts
type StatsService interface {
	Stats(ctx context.Context) (*model.Stats, error)
}

type statsService struct {
	repo  repository.StatsRepository
	cache cache.StatsCache // nil when Redis is not configured
}

// NewStatsService creates a new StatsService
func NewStatsService(repo repository.StatsRepository, statsCache cache.StatsCache) StatsService {
	return &statsService{repo: repo, cache: statsCache}
}

// Stats returns the counts, served from cache within the TTL when a cache is
// configured. Cache failures fall through to the store.
func (s *statsService) Stats(ctx context.Context) (*model.Stats, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			log.Printf("stats cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	stats, err := s.repo.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect stats: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			log.Printf("stats cache write failed: %v", err)
		}
	}
	return stats, nil
}
