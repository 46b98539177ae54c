package contract

import (
	"context"

	"ai-salescoach-be/internal/entity"

	"github.com/google/uuid"
)

type PlaybookRepository interface {
	Create(ctx context.Context, playbook *entity.Playbook) error
	Update(ctx context.Context, playbook *entity.Playbook) error
	Delete(ctx context.Context, ownerId, id uuid.UUID) error
	FindOne(ctx context.Context, ownerId, id uuid.UUID) (*entity.Playbook, error)
	FindAllByOwner(ctx context.Context, ownerId uuid.UUID) ([]*entity.Playbook, error)
}
