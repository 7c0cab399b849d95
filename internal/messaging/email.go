package messaging

import (
	"context"

	"go.uber.org/zap"
)

// Sender delivers one message to one target. Implementations own the
// transport; the core only supplies resolved content.
type Sender interface {
	Send(ctx context.Context, target, subject, body string) error
}

// EmailSimulator stands in for a real email transport. Delivery is
// simulated: the message is logged and the caller records it in the send
// history.
type EmailSimulator struct {
	logger *zap.Logger
}

// NewEmailSimulator creates a simulated email sender
func NewEmailSimulator(logger *zap.Logger) *EmailSimulator {
	return &EmailSimulator{logger: logger}
}

func (s *EmailSimulator) Send(ctx context.Context, target, subject, body string) error {
	s.logger.Info("Simulated email delivery",
		zap.String("to", target),
		zap.String("subject", subject),
		zap.Int("body_length", len(body)),
	)
	return nil
}
