package service

import (
	"context"
	"time"

	"ai-salescoach-be/internal/dto"
	"ai-salescoach-be/internal/entity"
	"ai-salescoach-be/internal/pkg/serverutils"
	"ai-salescoach-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPlaybookService interface {
	Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreatePlaybookRequest) (*dto.CreatePlaybookResponse, error)
	Update(ctx context.Context, ownerId uuid.UUID, req *dto.UpdatePlaybookRequest) error
	Delete(ctx context.Context, ownerId, id uuid.UUID) error
	Show(ctx context.Context, ownerId, id uuid.UUID) (*dto.ShowPlaybookResponse, error)
	List(ctx context.Context, ownerId uuid.UUID) ([]*dto.ShowPlaybookResponse, error)
}

type playbookService struct {
	playbookRepo contract.PlaybookRepository
}

func NewPlaybookService(playbookRepo contract.PlaybookRepository) IPlaybookService {
	return &playbookService{
		playbookRepo: playbookRepo,
	}
}

func (s *playbookService) Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreatePlaybookRequest) (*dto.CreatePlaybookResponse, error) {
	playbook := &entity.Playbook{
		Id:           uuid.New(),
		OwnerId:      ownerId,
		Name:         req.Name,
		Scenario:     req.Scenario,
		SystemPrompt: req.SystemPrompt,
		ExampleCues:  req.ExampleCues,
		CreatedAt:    time.Now(),
	}

	if err := s.playbookRepo.Create(ctx, playbook); err != nil {
		return nil, err
	}

	return &dto.CreatePlaybookResponse{Id: playbook.Id}, nil
}

func (s *playbookService) Update(ctx context.Context, ownerId uuid.UUID, req *dto.UpdatePlaybookRequest) error {
	existing, err := s.playbookRepo.FindOne(ctx, ownerId, req.Id)
	if err != nil {
		return err
	}
	if existing == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "Playbook not found")
	}

	now := time.Now()
	existing.Name = req.Name
	existing.Scenario = req.Scenario
	existing.SystemPrompt = req.SystemPrompt
	existing.ExampleCues = req.ExampleCues
	existing.UpdatedAt = &now

	return s.playbookRepo.Update(ctx, existing)
}

func (s *playbookService) Delete(ctx context.Context, ownerId, id uuid.UUID) error {
	existing, err := s.playbookRepo.FindOne(ctx, ownerId, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "Playbook not found")
	}

	return s.playbookRepo.Delete(ctx, ownerId, id)
}

func (s *playbookService) Show(ctx context.Context, ownerId, id uuid.UUID) (*dto.ShowPlaybookResponse, error) {
	playbook, err := s.playbookRepo.FindOne(ctx, ownerId, id)
	if err != nil {
		return nil, err
	}
	if playbook == nil {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "Playbook not found")
	}

	return toPlaybookResponse(playbook), nil
}

func (s *playbookService) List(ctx context.Context, ownerId uuid.UUID) ([]*dto.ShowPlaybookResponse, error) {
	playbooks, err := s.playbookRepo.FindAllByOwner(ctx, ownerId)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ShowPlaybookResponse, 0, len(playbooks))
	for _, playbook := range playbooks {
		out = append(out, toPlaybookResponse(playbook))
	}
	return out, nil
}

func toPlaybookResponse(p *entity.Playbook) *dto.ShowPlaybookResponse {
	return &dto.ShowPlaybookResponse{
		Id:           p.Id,
		Name:         p.Name,
		Scenario:     p.Scenario,
		SystemPrompt: p.SystemPrompt,
		ExampleCues:  p.ExampleCues,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
