package dispatch

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/prajwalnawale3040/trio-developers/internal/client"
	"github.com/prajwalnawale3040/trio-developers/internal/metrics"
	"github.com/prajwalnawale3040/trio-developers/internal/repository"
)

// Processor advances the message lifecycle: claim a bounded batch of due
// pending rows, deliver each one, record the terminal status.
type Processor struct {
	repo      repository.MessageRepository
	delivery  client.DeliveryClient
	limiter   *rate.Limiter
	batchSize int
	log       *zap.Logger
}

func NewProcessor(
	repo repository.MessageRepository,
	delivery client.DeliveryClient,
	limiter *rate.Limiter,
	batchSize int,
	log *zap.Logger,
) *Processor {
	return &Processor{
		repo:      repo,
		delivery:  delivery,
		limiter:   limiter,
		batchSize: batchSize,
		log:       log,
	}
}

// Tick runs one dispatch pass. Claimed rows are already in "processing", so a
// crash between claim and terminal update leaves them visible for operator
// review rather than silently re-dispatched.
func (p *Processor) Tick(ctx context.Context) {
	claimed, err := p.repo.ClaimDue(ctx, p.batchSize)
	if err != nil {
		p.log.Error("failed to claim due messages", zap.Error(err))
		return
	}
	if len(claimed) == 0 {
		return
	}

	for _, msg := range claimed {
		if err := p.limiter.Wait(ctx); err != nil {
			p.log.Warn("rate limiter stopped by context", zap.Error(err))
			return
		}

		if err := p.delivery.Send(ctx, msg.Phone, msg.Content); err != nil {
			p.log.Error("message delivery failed",
				zap.Int64("message_id", msg.MessageID),
				zap.Error(err),
			)
			if dbErr := p.repo.MarkFailed(ctx, msg.MessageID, err.Error()); dbErr != nil {
				p.log.Error("failed to record delivery failure",
					zap.Int64("message_id", msg.MessageID),
					zap.Error(dbErr),
				)
			}
			metrics.MessagesFailed.Inc()
			continue
		}

		if err := p.repo.MarkSent(ctx, msg.MessageID); err != nil {
			p.log.Error("failed to mark message sent",
				zap.Int64("message_id", msg.MessageID),
				zap.Error(err),
			)
			continue
		}

		p.log.Info("message dispatched",
			zap.Int64("message_id", msg.MessageID),
			zap.String("phone", msg.Phone),
		)
		metrics.MessagesSent.Inc()
	}
}
