package repository

import (
	"context"
	"fmt"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
)

// StatsRepository computes the dashboard aggregate counts
type StatsRepository interface {
	Collect(ctx context.Context) (*model.Stats, error)
}

type statsRepository struct {
	db DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db DB) StatsRepository {
	return &statsRepository{db: db}
}

// Collect runs the count queries. ActiveCampaigns stays 0; campaigns are not
// tracked as rows, only expanded into messages.
func (r *statsRepository) Collect(ctx context.Context) (*model.Stats, error) {
	stats := &model.Stats{}

	sql := `SELECT
	            (SELECT COUNT(*) FROM messages),
	            (SELECT COUNT(*) FROM messages WHERE status = 'sent'),
	            (SELECT COUNT(*) FROM messages WHERE status = 'failed'),
	            (SELECT COUNT(*) FROM contacts),
	            (SELECT COUNT(*) FROM batches)`
	err := r.db.QueryRow(ctx, sql).Scan(
		&stats.TotalMessages,
		&stats.SentMessages,
		&stats.FailedMessages,
		&stats.TotalContacts,
		&stats.TotalBatches,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to collect stats: %w", err)
	}
	return stats, nil
}
