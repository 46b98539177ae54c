package implementation

import (
	"context"

	"ai-salescoach-be/internal/entity"
	"ai-salescoach-be/internal/mapper"
	"ai-salescoach-be/internal/model"
	"ai-salescoach-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CueRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CueMapper
}

func NewCueRepository(db *gorm.DB) contract.CueRepository {
	return &CueRepositoryImpl{
		db:     db,
		mapper: mapper.NewCueMapper(),
	}
}

func (r *CueRepositoryImpl) Create(ctx context.Context, cue *entity.CoachingCue) error {
	m := r.mapper.ToModel(cue)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*cue = *r.mapper.ToEntity(m)
	return nil
}

func (r *CueRepositoryImpl) RecentByCall(ctx context.Context, callId string, limit int) ([]*entity.CoachingCue, error) {
	if limit <= 0 {
		limit = 10
	}
	var models []*model.CoachingCue
	err := r.db.WithContext(ctx).
		Where("call_id = ?", callId).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(models), nil
}

func (r *CueRepositoryImpl) ListByCall(ctx context.Context, ownerId uuid.UUID, callId string) ([]*entity.CoachingCue, error) {
	var models []*model.CoachingCue
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND call_id = ?", ownerId, callId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(models), nil
}

func (r *CueRepositoryImpl) toEntities(models []*model.CoachingCue) []*entity.CoachingCue {
	entities := make([]*entity.CoachingCue, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities
}
