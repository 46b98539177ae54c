package service

import (
	"context"

	"ai-salescoach-be/internal/pkg/logger"
	"ai-salescoach-be/pkg/events"
	pktNats "ai-salescoach-be/pkg/nats"
)

// CueAuditService consumes emitted-cue events off the bus and writes them to
// the audit log. Runs as a durable consumer so the trail survives restarts;
// other downstream consumers (analytics, CRM sync) subscribe the same way.
type CueAuditService struct {
	subscriber *pktNats.Subscriber
	logger     logger.ILogger
}

func NewCueAuditService(sub *pktNats.Subscriber, log logger.ILogger) *CueAuditService {
	return &CueAuditService{
		subscriber: sub,
		logger:     log,
	}
}

func (s *CueAuditService) Start() {
	err := s.subscriber.Subscribe("coach.>", "cue-audit-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("CueAudit", "Failed to subscribe to cue events", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *CueAuditService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("CueAudit", "Cue event", map[string]interface{}{
		"type":    event.EventType(),
		"payload": event.Payload(),
	})
	return nil
}
