package mapper

import (
	"time"

	"ai-salescoach-be/internal/entity"
	"ai-salescoach-be/internal/model"
)

type PlaybookMapper struct{}

func NewPlaybookMapper() *PlaybookMapper {
	return &PlaybookMapper{}
}

func (m *PlaybookMapper) ToEntity(p *model.Playbook) *entity.Playbook {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Playbook{
		Id:           p.Id,
		OwnerId:      p.OwnerId,
		Name:         p.Name,
		Scenario:     p.Scenario,
		SystemPrompt: p.SystemPrompt,
		ExampleCues:  p.ExampleCues,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *PlaybookMapper) ToModel(p *entity.Playbook) *model.Playbook {
	if p == nil {
		return nil
	}

	out := &model.Playbook{
		Id:           p.Id,
		OwnerId:      p.OwnerId,
		Name:         p.Name,
		Scenario:     p.Scenario,
		SystemPrompt: p.SystemPrompt,
		ExampleCues:  p.ExampleCues,
		CreatedAt:    p.CreatedAt,
	}
	if p.UpdatedAt != nil {
		out.UpdatedAt = *p.UpdatedAt
	}
	return out
}
