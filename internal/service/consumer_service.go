package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-salescoach-be/internal/dto"
	"ai-salescoach-be/internal/model"
	"ai-salescoach-be/internal/repository/contract"
	"ai-salescoach-be/pkg/embedding"
	"ai-salescoach-be/pkg/utils"
	"ai-salescoach-be/pkg/vectorstore"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type ConsumerConfig struct {
	ChunkSizeWords    int
	ChunkOverlapWords int
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	docRepo   contract.DocumentRepository
	embedder  *embedding.Cascade
	store     vectorstore.Store
	cfg       ConsumerConfig
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	docRepo contract.DocumentRepository,
	embedder *embedding.Cascade,
	store vectorstore.Store,
	cfg ConsumerConfig,
) IConsumerService {
	if cfg.ChunkSizeWords <= 0 {
		cfg.ChunkSizeWords = 500
	}
	if cfg.ChunkOverlapWords <= 0 {
		cfg.ChunkOverlapWords = 50
	}
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		docRepo:   docRepo,
		embedder:  embedder,
		store:     store,
		cfg:       cfg,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed job: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing document embedding for DocumentId: %s", payload.DocumentId)

	doc, err := cs.docRepo.FindOne(ctx, payload.DocumentId)
	if err != nil {
		log.Printf("[ERROR] Failed to get document %s: %v", payload.DocumentId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if doc == nil {
		log.Printf("[WARN] Document not found (deleted?): %s", payload.DocumentId)
		msg.Ack()
		return
	}

	namespace := vectorstore.Namespace(doc.OwnerId)
	chunks := utils.SplitWords(doc.Content, cs.cfg.ChunkSizeWords, cs.cfg.ChunkOverlapWords)
	log.Printf("[INFO] Document %s split into %d chunks", doc.Id, len(chunks))

	// Re-embedding replaces whatever an earlier run left behind.
	if err := cs.store.DeleteByDocument(ctx, namespace, doc.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old vectors for document %s: %v", doc.Id, err)
		cs.markFailed(ctx, doc.Id)
		msg.Nack()
		return
	}

	for i, chunk := range chunks {
		// Embed never fails: the cascade falls back to a deterministic
		// vector when every provider is down.
		vec := cs.embedder.Embed(ctx, chunk)

		rec := vectorstore.Record{
			Id:         uuid.New(),
			DocumentId: doc.Id,
			ChunkIndex: i,
			Text:       chunk,
			Vector:     vec,
			Metadata: map[string]interface{}{
				"document_name": doc.Name,
			},
		}
		if err := cs.store.Upsert(ctx, namespace, rec); err != nil {
			log.Printf("[ERROR] Failed to store chunk %d of document %s: %v", i, doc.Id, err)
			cs.markFailed(ctx, doc.Id)
			msg.Nack()
			return
		}
	}

	if err := cs.docRepo.UpdateStatus(ctx, doc.Id, model.DocumentStatusReady); err != nil {
		log.Printf("[ERROR] Failed to mark document %s ready: %v", doc.Id, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Document processed: %d chunks for DocumentId: %s", len(chunks), doc.Id)
	msg.Ack()
}

func (cs *consumerService) markFailed(ctx context.Context, id uuid.UUID) {
	if err := cs.docRepo.UpdateStatus(ctx, id, model.DocumentStatusFailed); err != nil {
		log.Printf("[ERROR] Failed to mark document %s failed: %v", id, err)
	}
}
