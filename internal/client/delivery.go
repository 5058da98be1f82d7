package client

import (
	"context"

	"go.uber.org/zap"
)

// DeliveryClient hands a message to the outbound channel. The log client
// simulates delivery; the webhook client posts to a real gateway.
type DeliveryClient interface {
	Send(ctx context.Context, phone, content string) error
}

// LogDelivery simulates delivery by writing a log line. It never fails.
type LogDelivery struct {
	log *zap.Logger
}

func NewLogDelivery(log *zap.Logger) *LogDelivery {
	return &LogDelivery{log: log}
}

func (d *LogDelivery) Send(_ context.Context, phone, content string) error {
	d.log.Info("delivering message",
		zap.String("phone", phone),
		zap.String("content", content),
	)
	return nil
}
