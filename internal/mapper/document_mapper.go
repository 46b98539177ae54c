package mapper

import (
	"time"

	"ai-salescoach-be/internal/entity"
	"ai-salescoach-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.Document{
		Id:        d.Id,
		OwnerId:   d.OwnerId,
		Name:      d.Name,
		Content:   d.Content,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	out := &model.Document{
		Id:        d.Id,
		OwnerId:   d.OwnerId,
		Name:      d.Name,
		Content:   d.Content,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
	if d.UpdatedAt != nil {
		out.UpdatedAt = *d.UpdatedAt
	}
	return out
}
