package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CoachingCue struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CallId            string         `gorm:"type:varchar(100);not null;index:idx_cues_call_created"`
	OwnerId           uuid.UUID      `gorm:"type:uuid;not null;index"`
	Text              string         `gorm:"type:varchar(255);not null"`
	TriggerObjection  bool           `gorm:"default:false"`
	TriggerCompetitor bool           `gorm:"default:false"`
	TriggerTimeline   bool           `gorm:"default:false"`
	RagUsed           bool           `gorm:"default:false"`
	Source            string         `gorm:"type:varchar(16);not null"` // "llm" | "fallback"
	CreatedAt         time.Time      `gorm:"autoCreateTime;index:idx_cues_call_created"`
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (CoachingCue) TableName() string {
	return "coaching_cues"
}
