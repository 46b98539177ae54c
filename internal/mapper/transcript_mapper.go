package mapper

import (
	"ai-salescoach-be/internal/entity"
	"ai-salescoach-be/internal/model"
)

type TranscriptMapper struct{}

func NewTranscriptMapper() *TranscriptMapper {
	return &TranscriptMapper{}
}

func (m *TranscriptMapper) ToEntity(t *model.TranscriptEntry) *entity.TranscriptEntry {
	if t == nil {
		return nil
	}
	return &entity.TranscriptEntry{
		Id:         t.Id,
		CallId:     t.CallId,
		OwnerId:    t.OwnerId,
		Role:       t.Role,
		Text:       t.Text,
		ReceivedAt: t.ReceivedAt,
		CreatedAt:  t.CreatedAt,
	}
}

func (m *TranscriptMapper) ToModel(t *entity.TranscriptEntry) *model.TranscriptEntry {
	if t == nil {
		return nil
	}
	return &model.TranscriptEntry{
		Id:         t.Id,
		CallId:     t.CallId,
		OwnerId:    t.OwnerId,
		Role:       t.Role,
		Text:       t.Text,
		ReceivedAt: t.ReceivedAt,
		CreatedAt:  t.CreatedAt,
	}
}
