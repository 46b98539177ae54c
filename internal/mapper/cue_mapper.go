package mapper

import (
	"ai-salescoach-be/internal/entity"
	"ai-salescoach-be/internal/model"
	"ai-salescoach-be/pkg/trigger"
)

type CueMapper struct{}

func NewCueMapper() *CueMapper {
	return &CueMapper{}
}

func (m *CueMapper) ToEntity(c *model.CoachingCue) *entity.CoachingCue {
	if c == nil {
		return nil
	}
	return &entity.CoachingCue{
		Id:      c.Id,
		CallId:  c.CallId,
		OwnerId: c.OwnerId,
		Text:    c.Text,
		Triggers: trigger.Set{
			Objection:  c.TriggerObjection,
			Competitor: c.TriggerCompetitor,
			Timeline:   c.TriggerTimeline,
		},
		RagUsed:   c.RagUsed,
		Source:    c.Source,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CueMapper) ToModel(c *entity.CoachingCue) *model.CoachingCue {
	if c == nil {
		return nil
	}
	return &model.CoachingCue{
		Id:                c.Id,
		CallId:            c.CallId,
		OwnerId:           c.OwnerId,
		Text:              c.Text,
		TriggerObjection:  c.Triggers.Objection,
		TriggerCompetitor: c.Triggers.Competitor,
		TriggerTimeline:   c.Triggers.Timeline,
		RagUsed:           c.RagUsed,
		Source:            c.Source,
		CreatedAt:         c.CreatedAt,
	}
}
