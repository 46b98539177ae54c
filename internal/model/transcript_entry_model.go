package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TranscriptEntry struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CallId     string         `gorm:"type:varchar(100);not null;index"`
	OwnerId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Role       string         `gorm:"type:varchar(20);not null"`
	Text       string         `gorm:"type:text;not null"`
	ReceivedAt time.Time      `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (TranscriptEntry) TableName() string {
	return "transcript_entries"
}
