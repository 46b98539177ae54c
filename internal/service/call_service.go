package service

import (
	"context"
	"time"

	"ai-salescoach-be/internal/dto"
	"ai-salescoach-be/internal/pkg/serverutils"
	"ai-salescoach-be/internal/repository/contract"
	"ai-salescoach-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICallService interface {
	// Register binds a provider call id to its owner before webhook events
	// start arriving. Events for unregistered calls are dropped.
	Register(ctx context.Context, ownerId uuid.UUID, req *dto.RegisterCallRequest) (*dto.RegisterCallResponse, error)
	End(ctx context.Context, ownerId uuid.UUID, callId string) error
	SelectPlaybook(ctx context.Context, ownerId uuid.UUID, callId string, playbookId *uuid.UUID) error
	ListCues(ctx context.Context, ownerId uuid.UUID, callId string) ([]*dto.CuePayload, error)
}

type callService struct {
	sessions     *memory.CallSessionRepository
	cueRepo      contract.CueRepository
	playbookRepo contract.PlaybookRepository
}

func NewCallService(sessions *memory.CallSessionRepository, cueRepo contract.CueRepository, playbookRepo contract.PlaybookRepository) ICallService {
	return &callService{
		sessions:     sessions,
		cueRepo:      cueRepo,
		playbookRepo: playbookRepo,
	}
}

func (s *callService) Register(ctx context.Context, ownerId uuid.UUID, req *dto.RegisterCallRequest) (*dto.RegisterCallResponse, error) {
	if req.PlaybookId != nil {
		playbook, err := s.playbookRepo.FindOne(ctx, ownerId, *req.PlaybookId)
		if err != nil {
			return nil, err
		}
		if playbook == nil {
			return nil, serverutils.NewApiError(fiber.StatusNotFound, "Playbook not found")
		}
	}

	s.sessions.Save(&memory.CallSession{
		CallId:     req.CallId,
		OwnerId:    ownerId,
		PlaybookId: req.PlaybookId,
		StartedAt:  time.Now(),
	})

	return &dto.RegisterCallResponse{CallId: req.CallId}, nil
}

func (s *callService) End(ctx context.Context, ownerId uuid.UUID, callId string) error {
	session, found := s.sessions.Get(callId)
	if !found {
		return serverutils.NewApiError(fiber.StatusNotFound, "Call not found")
	}
	if session.OwnerId != ownerId {
		return serverutils.NewApiError(fiber.StatusForbidden, "Call belongs to another user")
	}

	s.sessions.Delete(callId)
	return nil
}

// SelectPlaybook swaps the playbook on a live call. The next triggered
// utterance picks it up; in-flight generations keep the prompt they started with.
func (s *callService) SelectPlaybook(ctx context.Context, ownerId uuid.UUID, callId string, playbookId *uuid.UUID) error {
	session, found := s.sessions.Get(callId)
	if !found {
		return serverutils.NewApiError(fiber.StatusNotFound, "Call not found")
	}
	if session.OwnerId != ownerId {
		return serverutils.NewApiError(fiber.StatusForbidden, "Call belongs to another user")
	}

	if playbookId != nil {
		playbook, err := s.playbookRepo.FindOne(ctx, ownerId, *playbookId)
		if err != nil {
			return err
		}
		if playbook == nil {
			return serverutils.NewApiError(fiber.StatusNotFound, "Playbook not found")
		}
	}

	session.PlaybookId = playbookId
	s.sessions.Save(session)
	return nil
}

func (s *callService) ListCues(ctx context.Context, ownerId uuid.UUID, callId string) ([]*dto.CuePayload, error) {
	cues, err := s.cueRepo.ListByCall(ctx, ownerId, callId)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CuePayload, 0, len(cues))
	for _, cue := range cues {
		out = append(out, &dto.CuePayload{
			Id:        cue.Id,
			CallId:    cue.CallId,
			Text:      cue.Text,
			Triggers:  cue.Triggers,
			RagUsed:   cue.RagUsed,
			Source:    cue.Source,
			CreatedAt: cue.CreatedAt,
		})
	}
	return out, nil
}
