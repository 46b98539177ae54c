package service

import (
	"context"
	"time"

	"ai-salescoach-be/internal/dto"
	"ai-salescoach-be/internal/entity"
	"ai-salescoach-be/internal/model"
	"ai-salescoach-be/internal/pkg/logger"
	"ai-salescoach-be/internal/pkg/serverutils"
	"ai-salescoach-be/internal/repository/contract"
	"ai-salescoach-be/pkg/vectorstore"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentService interface {
	Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreateDocumentRequest) (*dto.CreateDocumentResponse, error)
	Show(ctx context.Context, ownerId, id uuid.UUID) (*dto.ShowDocumentResponse, error)
	List(ctx context.Context, ownerId uuid.UUID) ([]*dto.ShowDocumentResponse, error)
	Delete(ctx context.Context, ownerId, id uuid.UUID) error
}

type documentService struct {
	docRepo   contract.DocumentRepository
	publisher IPublisherService
	store     vectorstore.Store // nil when no vector storage is configured
	logger    logger.ILogger
}

func NewDocumentService(docRepo contract.DocumentRepository, publisher IPublisherService, store vectorstore.Store, log logger.ILogger) IDocumentService {
	return &documentService{
		docRepo:   docRepo,
		publisher: publisher,
		store:     store,
		logger:    log,
	}
}

func (s *documentService) Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreateDocumentRequest) (*dto.CreateDocumentResponse, error) {
	doc := &entity.Document{
		Id:        uuid.New(),
		OwnerId:   ownerId,
		Name:      req.Name,
		Content:   req.Content,
		Status:    model.DocumentStatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	// Chunking and embedding run async; the document stays pending until
	// the consumer finishes.
	if err := s.publisher.PublishEmbedDocument(doc.Id); err != nil {
		s.logger.Error("Document", "Failed to enqueue embed job", map[string]interface{}{
			"document_id": doc.Id,
			"error":       err.Error(),
		})
		if err := s.docRepo.UpdateStatus(ctx, doc.Id, model.DocumentStatusFailed); err != nil {
			s.logger.Error("Document", "Failed to mark document failed", map[string]interface{}{
				"document_id": doc.Id,
				"error":       err.Error(),
			})
		}
		return nil, serverutils.NewApiError(fiber.StatusInternalServerError, "Failed to schedule document processing")
	}

	return &dto.CreateDocumentResponse{
		Id:     doc.Id,
		Status: doc.Status,
	}, nil
}

func (s *documentService) Show(ctx context.Context, ownerId, id uuid.UUID) (*dto.ShowDocumentResponse, error) {
	doc, err := s.docRepo.FindOneOwned(ctx, ownerId, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "Document not found")
	}

	return &dto.ShowDocumentResponse{
		Id:        doc.Id,
		Name:      doc.Name,
		Status:    doc.Status,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (s *documentService) List(ctx context.Context, ownerId uuid.UUID) ([]*dto.ShowDocumentResponse, error) {
	docs, err := s.docRepo.FindAllByOwner(ctx, ownerId)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ShowDocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, &dto.ShowDocumentResponse{
			Id:        doc.Id,
			Name:      doc.Name,
			Status:    doc.Status,
			CreatedAt: doc.CreatedAt,
		})
	}
	return out, nil
}

func (s *documentService) Delete(ctx context.Context, ownerId, id uuid.UUID) error {
	doc, err := s.docRepo.FindOneOwned(ctx, ownerId, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "Document not found")
	}

	// Drop the vectors first so retrieval never serves chunks of a document
	// the owner has already deleted.
	if s.store != nil {
		if err := s.store.DeleteByDocument(ctx, vectorstore.Namespace(ownerId), id); err != nil {
			return err
		}
	}

	return s.docRepo.Delete(ctx, ownerId, id)
}
