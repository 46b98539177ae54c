package service

import (
	"context"
	"time"

	"ai-salescoach-be/internal/dto"
	"ai-salescoach-be/internal/entity"
	"ai-salescoach-be/internal/pkg/logger"
	"ai-salescoach-be/internal/repository/contract"
	"ai-salescoach-be/internal/repository/memory"
	"ai-salescoach-be/pkg/coach/dedup"
	"ai-salescoach-be/pkg/coach/gate"
	"ai-salescoach-be/pkg/coach/prompt"
	"ai-salescoach-be/pkg/events"
	"ai-salescoach-be/pkg/llm"
	"ai-salescoach-be/pkg/trigger"

	"github.com/google/uuid"
)

// CueDelivery pushes a cue to the owner's connected overlay clients. The
// websocket hub implements this; a nil delivery means cues are only persisted.
type CueDelivery interface {
	Send(userId uuid.UUID, payload dto.CuePayload)
}

// EventPublisher fans cue events out to external consumers (NATS).
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type ICoachingService interface {
	// ProcessVoiceEvent runs one transcription event through the full
	// pipeline: ingestion gate, trigger detection, retrieval, generation,
	// dedup, persistence and delivery. It never returns an error; the
	// webhook has already been acknowledged by the time this runs.
	ProcessVoiceEvent(ctx context.Context, event *dto.VoiceEvent)
}

type CoachingConfig struct {
	RagTopK       int
	DedupLookback int
}

type coachingService struct {
	transcriptRepo contract.TranscriptRepository
	cueRepo        contract.CueRepository
	playbookRepo   contract.PlaybookRepository
	sessions       *memory.CallSessionRepository
	detector       *trigger.Detector
	gate           *gate.Gate
	retrieval      IRetrievalService
	generator      *llm.Cascade
	dedup          *dedup.Deduplicator
	delivery       CueDelivery    // nil-able
	eventPub       EventPublisher // nil-able
	logger         logger.ILogger
	cfg            CoachingConfig
}

func NewCoachingService(
	transcriptRepo contract.TranscriptRepository,
	cueRepo contract.CueRepository,
	playbookRepo contract.PlaybookRepository,
	sessions *memory.CallSessionRepository,
	detector *trigger.Detector,
	ingestionGate *gate.Gate,
	retrieval IRetrievalService,
	generator *llm.Cascade,
	deduplicator *dedup.Deduplicator,
	delivery CueDelivery,
	eventPub EventPublisher,
	log logger.ILogger,
	cfg CoachingConfig,
) ICoachingService {
	if cfg.RagTopK <= 0 {
		cfg.RagTopK = 5
	}
	if cfg.DedupLookback <= 0 {
		cfg.DedupLookback = 10
	}
	return &coachingService{
		transcriptRepo: transcriptRepo,
		cueRepo:        cueRepo,
		playbookRepo:   playbookRepo,
		sessions:       sessions,
		detector:       detector,
		gate:           ingestionGate,
		retrieval:      retrieval,
		generator:      generator,
		dedup:          deduplicator,
		delivery:       delivery,
		eventPub:       eventPub,
		logger:         log,
		cfg:            cfg,
	}
}

func (s *coachingService) ProcessVoiceEvent(ctx context.Context, event *dto.VoiceEvent) {
	callId := event.Call()
	text := event.UtteranceText()

	recent, err := s.cueRepo.RecentByCall(ctx, callId, s.cfg.DedupLookback)
	if err != nil {
		s.logger.Warn("Coaching", "Failed to load recent cues, proceeding without history", map[string]interface{}{
			"call_id": callId,
			"error":   err.Error(),
		})
		recent = nil
	}
	recentTexts := make([]string, 0, len(recent))
	for _, cue := range recent {
		recentTexts = append(recentTexts, cue.Text)
	}

	verdict := s.gate.Classify(gate.Event{
		Role:   event.Role,
		Type:   event.Type,
		Text:   text,
		CallID: callId,
	}, recentTexts)
	if !verdict.Admitted() {
		s.logger.Debug("Coaching", "Utterance rejected by ingestion gate", map[string]interface{}{
			"call_id": callId,
			"verdict": string(verdict.Verdict),
			"reason":  verdict.Reason,
		})
		return
	}

	session, found := s.sessions.Get(callId)
	if !found {
		s.logger.Debug("Coaching", "Event for unregistered call, dropping", map[string]interface{}{
			"call_id": callId,
		})
		return
	}

	receivedAt := event.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}
	entry := &entity.TranscriptEntry{
		Id:         uuid.New(),
		CallId:     callId,
		OwnerId:    session.OwnerId,
		Role:       event.Role,
		Text:       text,
		ReceivedAt: receivedAt,
	}
	if err := s.transcriptRepo.Create(ctx, entry); err != nil {
		s.logger.Warn("Coaching", "Failed to persist transcript entry", map[string]interface{}{
			"call_id": callId,
			"error":   err.Error(),
		})
	}

	triggers := s.detector.Detect(text)
	if !triggers.Detected() {
		return
	}

	ragContext := s.retrieval.Retrieve(ctx, session.OwnerId, text, s.cfg.RagTopK)

	customPrompt := ""
	if session.PlaybookId != nil {
		playbook, err := s.playbookRepo.FindOne(ctx, session.OwnerId, *session.PlaybookId)
		if err != nil {
			s.logger.Warn("Coaching", "Playbook lookup failed, using default persona", map[string]interface{}{
				"call_id":     callId,
				"playbook_id": session.PlaybookId,
				"error":       err.Error(),
			})
		} else if playbook != nil {
			customPrompt = playbook.SystemPrompt
		}
	}

	systemPrompt := prompt.NewBuilder(triggers, ragContext, customPrompt, s.generator.WordCap()).Build()
	cueText, source := s.generator.Generate(ctx, systemPrompt, text, triggers)
	if cueText == "" {
		return
	}

	recentCues := make([]dedup.Cue, 0, len(recent))
	for _, cue := range recent {
		recentCues = append(recentCues, dedup.Cue{Text: cue.Text, CreatedAt: cue.CreatedAt})
	}
	if s.dedup.IsDuplicate(cueText, recentCues) {
		s.logger.Debug("Coaching", "Cue suppressed as duplicate", map[string]interface{}{
			"call_id": callId,
			"text":    cueText,
		})
		return
	}

	cue := &entity.CoachingCue{
		Id:        uuid.New(),
		CallId:    callId,
		OwnerId:   session.OwnerId,
		Text:      cueText,
		Triggers:  triggers,
		RagUsed:   ragContext != "",
		Source:    string(source),
		CreatedAt: time.Now(),
	}
	if err := s.cueRepo.Create(ctx, cue); err != nil {
		s.logger.Error("Coaching", "Failed to persist coaching cue", map[string]interface{}{
			"call_id": callId,
			"error":   err.Error(),
		})
		// Deliver anyway; losing history beats losing the live cue.
	}

	payload := dto.CuePayload{
		Id:        cue.Id,
		CallId:    cue.CallId,
		Text:      cue.Text,
		Triggers:  cue.Triggers,
		RagUsed:   cue.RagUsed,
		Source:    cue.Source,
		CreatedAt: cue.CreatedAt,
	}
	if s.delivery != nil {
		s.delivery.Send(session.OwnerId, payload)
	}

	if s.eventPub != nil {
		evt := events.CueEmitted{
			CueId:      cue.Id.String(),
			CallId:     cue.CallId,
			OwnerId:    cue.OwnerId.String(),
			Text:       cue.Text,
			Source:     cue.Source,
			RagUsed:    cue.RagUsed,
			OccurredAt: cue.CreatedAt,
		}
		if err := s.eventPub.Publish(ctx, evt); err != nil {
			s.logger.Warn("Coaching", "Failed to publish cue event", map[string]interface{}{
				"call_id": callId,
				"error":   err.Error(),
			})
		}
	}

	s.logger.Info("Coaching", "Cue delivered", map[string]interface{}{
		"call_id":  callId,
		"source":   cue.Source,
		"rag_used": cue.RagUsed,
	})
}
