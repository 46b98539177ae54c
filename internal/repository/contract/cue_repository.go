package contract

import (
	"context"

	"ai-salescoach-be/internal/entity"

	"github.com/google/uuid"
)

type CueRepository interface {
	Create(ctx context.Context, cue *entity.CoachingCue) error

	// RecentByCall returns up to limit cues for the call ordered newest
	// first. Feeds both the dedup window and the cue-echo filter.
	RecentByCall(ctx context.Context, callId string, limit int) ([]*entity.CoachingCue, error)

	// ListByCall is the owner-scoped history view for the overlay.
	ListByCall(ctx context.Context, ownerId uuid.UUID, callId string) ([]*entity.CoachingCue, error)
}
