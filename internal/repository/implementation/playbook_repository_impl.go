package implementation

import (
	"context"
	"errors"

	"ai-salescoach-be/internal/entity"
	"ai-salescoach-be/internal/mapper"
	"ai-salescoach-be/internal/model"
	"ai-salescoach-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaybookRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PlaybookMapper
}

func NewPlaybookRepository(db *gorm.DB) contract.PlaybookRepository {
	return &PlaybookRepositoryImpl{
		db:     db,
		mapper: mapper.NewPlaybookMapper(),
	}
}

func (r *PlaybookRepositoryImpl) Create(ctx context.Context, playbook *entity.Playbook) error {
	m := r.mapper.ToModel(playbook)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*playbook = *r.mapper.ToEntity(m)
	return nil
}

func (r *PlaybookRepositoryImpl) Update(ctx context.Context, playbook *entity.Playbook) error {
	m := r.mapper.ToModel(playbook)
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", playbook.OwnerId).
		Save(m).Error; err != nil {
		return err
	}
	*playbook = *r.mapper.ToEntity(m)
	return nil
}

func (r *PlaybookRepositoryImpl) Delete(ctx context.Context, ownerId, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerId, id).
		Delete(&model.Playbook{}).Error
}

func (r *PlaybookRepositoryImpl) FindOne(ctx context.Context, ownerId, id uuid.UUID) (*entity.Playbook, error) {
	var m model.Playbook
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerId, id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PlaybookRepositoryImpl) FindAllByOwner(ctx context.Context, ownerId uuid.UUID) ([]*entity.Playbook, error) {
	var models []*model.Playbook
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerId).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.Playbook, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
