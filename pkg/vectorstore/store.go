package vectorstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxStoredTextLen bounds the source text stored alongside each vector.
const maxStoredTextLen = 1000

// Namespace derives the storage partition for an owner. Enforcing ownership
// at the storage layer keeps one user's chunks out of another's queries even
// if application code forgets a filter.
func Namespace(ownerId uuid.UUID) string {
	return "user-" + ownerId.String()
}

// Record is one vector to upsert into a namespace.
type Record struct {
	Id         uuid.UUID
	DocumentId uuid.UUID
	ChunkIndex int
	Text       string
	Vector     []float32
	Metadata   map[string]interface{}
}

// Match is one query result, ordered by descending cosine similarity.
type Match struct {
	Id         uuid.UUID
	DocumentId uuid.UUID
	ChunkIndex int
	Text       string
	Score      float64
	Metadata   datatypes.JSONMap
}

type Store interface {
	Upsert(ctx context.Context, namespace string, rec Record) error
	Query(ctx context.Context, namespace string, vector []float32, topK int) ([]Match, error)
	DeleteByDocument(ctx context.Context, namespace string, documentId uuid.UUID) error
}

// ChunkVector is the gorm model backing the store.
type ChunkVector struct {
	Id             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Namespace      string            `gorm:"type:varchar(100);not null;index"`
	DocumentId     uuid.UUID         `gorm:"type:uuid;not null;index"`
	ChunkIndex     int               `gorm:"default:0"`
	Document       string            `gorm:"type:text"`
	Metadata       datatypes.JSONMap `gorm:"type:jsonb"`
	EmbeddingValue pgvector.Vector   `gorm:"type:vector(768)"`
	CreatedAt      time.Time         `gorm:"autoCreateTime"`
}

func (ChunkVector) TableName() string {
	return "chunk_vectors"
}

// PgStore implements Store on Postgres with the pgvector extension.
type PgStore struct {
	db *gorm.DB
}

func NewPgStore(db *gorm.DB) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Upsert(ctx context.Context, namespace string, rec Record) error {
	text := rec.Text
	if len(text) > maxStoredTextLen {
		text = text[:maxStoredTextLen]
	}

	m := &ChunkVector{
		Id:             rec.Id,
		Namespace:      namespace,
		DocumentId:     rec.DocumentId,
		ChunkIndex:     rec.ChunkIndex,
		Document:       text,
		Metadata:       datatypes.JSONMap(rec.Metadata),
		EmbeddingValue: pgvector.NewVector(rec.Vector),
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(m).Error
}

func (s *PgStore) Query(ctx context.Context, namespace string, vector []float32, topK int) ([]Match, error) {
	if topK <= 0 {
		topK = 5
	}

	type result struct {
		ChunkVector
		Score float64
	}
	var results []result

	queryVector := pgvector.NewVector(vector)

	// Cosine distance in pgvector is 1 - cosine_similarity, so
	// 1 - (embedding_value <=> query) gives the similarity score.
	err := s.db.WithContext(ctx).
		Table("chunk_vectors").
		Select("chunk_vectors.*, 1 - (embedding_value <=> ?) as score", queryVector).
		Where("namespace = ?", namespace).
		Order("score DESC").
		Limit(topK).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("vector query failed: %w", err)
	}

	matches := make([]Match, len(results))
	for i, res := range results {
		matches[i] = Match{
			Id:         res.Id,
			DocumentId: res.DocumentId,
			ChunkIndex: res.ChunkIndex,
			Text:       res.Document,
			Score:      res.Score,
			Metadata:   res.Metadata,
		}
	}
	return matches, nil
}

func (s *PgStore) DeleteByDocument(ctx context.Context, namespace string, documentId uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("namespace = ? AND document_id = ?", namespace, documentId).
		Delete(&ChunkVector{}).Error
}
