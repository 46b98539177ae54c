package contract

import (
	"context"

	"ai-salescoach-be/internal/entity"

	"github.com/google/uuid"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	FindOneOwned(ctx context.Context, ownerId, id uuid.UUID) (*entity.Document, error)
	FindAllByOwner(ctx context.Context, ownerId uuid.UUID) ([]*entity.Document, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, ownerId, id uuid.UUID) error
}
