package service

import (
	"context"
	"strings"

	"ai-salescoach-be/internal/pkg/logger"
	"ai-salescoach-be/pkg/embedding"
	"ai-salescoach-be/pkg/vectorstore"

	"github.com/google/uuid"
)

type IRetrievalService interface {
	// Retrieve returns the knowledge-base context for a query, or "" when no
	// context is available. Retrieval is optional and never fatal: missing
	// configuration and runtime failures both degrade to "".
	Retrieve(ctx context.Context, ownerId uuid.UUID, queryText string, topK int) string
}

type retrievalService struct {
	store    vectorstore.Store // nil when no vector storage is configured
	embedder *embedding.Cascade
	logger   logger.ILogger
}

func NewRetrievalService(store vectorstore.Store, embedder *embedding.Cascade, log logger.ILogger) IRetrievalService {
	return &retrievalService{
		store:    store,
		embedder: embedder,
		logger:   log,
	}
}

func (s *retrievalService) Retrieve(ctx context.Context, ownerId uuid.UUID, queryText string, topK int) string {
	if s.store == nil {
		return ""
	}

	queryVector := s.embedder.Embed(ctx, queryText)

	matches, err := s.store.Query(ctx, vectorstore.Namespace(ownerId), queryVector, topK)
	if err != nil {
		s.logger.Warn("Retrieval", "Vector query failed, continuing without context", map[string]interface{}{
			"owner_id": ownerId,
			"error":    err.Error(),
		})
		return ""
	}

	var texts []string
	for _, match := range matches {
		if match.Text != "" {
			texts = append(texts, match.Text)
		}
	}
	if len(texts) == 0 {
		return ""
	}

	return strings.Join(texts, "\n\n")
}
