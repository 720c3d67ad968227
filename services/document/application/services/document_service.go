package services

import (
	"context"
	"fmt"

	"github.com/ghuser/thoron/pkg/logger"
	documentdomain "github.com/ghuser/thoron/services/document/domain"
	"github.com/ghuser/thoron/services/document/domain/models"
	"github.com/ghuser/thoron/services/document/domain/repositories"
)

// UploadCommand is the metadata of a simulated upload.
type UploadCommand struct {
	ShipmentID *int64
	Type       string // empty infers from Filename
	Filename   string
	Size       int64
}

// DocumentService records document metadata.
type DocumentService struct {
	repo repositories.DocumentRepository
	log  logger.Logger
}

// NewDocumentService returns a DocumentService.
func NewDocumentService(repo repositories.DocumentRepository, log logger.Logger) *DocumentService {
	return &DocumentService{repo: repo, log: log}
}

// List returns documents newest first.
func (s *DocumentService) List(ctx context.Context) ([]*models.DocumentListing, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Upload records a Pending document. No file content is stored.
func (s *DocumentService) Upload(ctx context.Context, cmd UploadCommand) (*models.Document, error) {
	d, err := models.NewDocument(cmd.ShipmentID, cmd.Type, cmd.Filename, cmd.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", documentdomain.ErrInvalidDocument, err)
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "document uploaded",
		"document_id", d.ID,
		"type", d.Type,
		"size", d.Size,
	)
	return d, nil
}

func (s *DocumentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "document deleted", "document_id", id)
	return nil
}
