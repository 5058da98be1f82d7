package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/prajwalnawale3040/trio-developers/internal/metrics"
	"github.com/prajwalnawale3040/trio-developers/internal/model"
	"github.com/prajwalnawale3040/trio-developers/internal/repository"
)

var (
	// ErrAmbiguousTarget is returned when a send request names both an
	// explicit contact list and a batch. The two expansion paths are
	// mutually exclusive request variants.
	ErrAmbiguousTarget = errors.New("specify either contact_ids or batch_id, not both")
	ErrNoTarget        = errors.New("specify contact_ids or batch_id")
	ErrEmptyBatch      = errors.New("batch has no contacts")
)

// CampaignService expands send requests into queued messages and serves history
type CampaignService interface {
	SendCampaign(ctx context.Context, req model.SendCampaignRequest) (int, error)
	History(ctx context.Context, limit int) ([]model.HistoryEntry, error)
}

type campaignService struct {
	messages repository.MessageRepository
	contacts repository.ContactRepository
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(messages repository.MessageRepository, contacts repository.ContactRepository) CampaignService {
	return &campaignService{messages: messages, contacts: contacts}
}

// SendCampaign resolves the target contacts and enqueues one pending message
// per contact in a single transaction. Returns the number of messages queued.
func (s *campaignService) SendCampaign(ctx context.Context, req model.SendCampaignRequest) (int, error) {
	hasList := len(req.ContactIDs) > 0
	hasBatch := req.BatchID != nil

	switch {
	case hasList && hasBatch:
		return 0, ErrAmbiguousTarget
	case !hasList && !hasBatch:
		return 0, ErrNoTarget
	}

	var msgs []model.Message
	if hasList {
		for _, id := range req.ContactIDs {
			contactID := id
			msgs = append(msgs, model.Message{
				ContactID:   &contactID,
				Content:     req.Content,
				ScheduledAt: req.ScheduledAt,
				Status:      model.MessagePending,
			})
		}
	} else {
		ids, err := s.contacts.ListIDsByBatch(ctx, *req.BatchID)
		if err != nil {
			return 0, fmt.Errorf("failed to resolve batch contacts: %w", err)
		}
		if len(ids) == 0 {
			return 0, ErrEmptyBatch
		}
		for _, id := range ids {
			contactID := id
			msgs = append(msgs, model.Message{
				ContactID:   &contactID,
				BatchID:     req.BatchID,
				Content:     req.Content,
				ScheduledAt: req.ScheduledAt,
				Status:      model.MessagePending,
			})
		}
	}

	if err := s.messages.CreateCampaign(ctx, msgs); err != nil {
		return 0, fmt.Errorf("failed to enqueue campaign: %w", err)
	}

	metrics.CampaignsEnqueued.Inc()
	return len(msgs), nil
}

func (s *campaignService) History(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	history, err := s.messages.History(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch message history: %w", err)
	}
	return history, nil
}
