package contract

import (
	"context"

	"ai-salescoach-be/internal/entity"
)

type TranscriptRepository interface {
	Create(ctx context.Context, entry *entity.TranscriptEntry) error
	FindByCall(ctx context.Context, callId string, limit int) ([]*entity.TranscriptEntry, error)
}
