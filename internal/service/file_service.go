package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"moim/internal/config"
	"moim/internal/domain"
	"moim/internal/port"
)

// FileUploadInput is the DTO for file upload requests.
type FileUploadInput struct {
	OwnerID uuid.UUID
	File    multipart.File
	Header  *multipart.FileHeader
}

// FileService defines the transcript file management contract. Extraction
// happens at upload time so the stored row always carries usable text.
type FileService interface {
	Upload(ctx context.Context, input FileUploadInput) (*domain.FileMeta, error)
	GetByID(ctx context.Context, ownerID, fileID uuid.UUID) (*domain.FileMeta, error)
	List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.FileMeta, int, error)
	Delete(ctx context.Context, ownerID, fileID uuid.UUID) error
}

type fileService struct {
	fileRepo  port.FileRepository
	extractor port.TextExtractor
	cfg       *config.S3Config
	logger    *zap.Logger
}

// NewFileService creates a new FileService implementation.
func NewFileService(
	fileRepo port.FileRepository,
	extractor port.TextExtractor,
	cfg *config.S3Config,
	logger *zap.Logger,
) FileService {
	return &fileService{
		fileRepo:  fileRepo,
		extractor: extractor,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *fileService) Upload(ctx context.Context, input FileUploadInput) (*domain.FileMeta, error) {
	if _, ok := domain.MediaKindForFilename(input.Header.Filename); !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	content, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	contentType := input.Header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	s.logger.Info("extracting uploaded file",
		zap.String("filename", input.Header.Filename),
		zap.Int64("size", input.Header.Size),
		zap.String("owner_id", input.OwnerID.String()))

	result, err := s.extractor.Extract(ctx, content, input.Header.Filename, contentType)
	if err != nil {
		return nil, err
	}

	meta := &domain.FileMeta{
		ID:            uuid.New(),
		OwnerID:       input.OwnerID,
		FileName:      input.Header.Filename,
		ContentType:   contentType,
		FileSize:      input.Header.Size,
		ExtractedText: result.Text,
		SourceURL:     result.SourceURL,
	}

	if err := s.fileRepo.Create(ctx, meta); err != nil {
		return nil, fmt.Errorf("creating file metadata: %w", err)
	}

	return meta, nil
}

func (s *fileService) GetByID(ctx context.Context, ownerID, fileID uuid.UUID) (*domain.FileMeta, error) {
	return s.fileRepo.GetByID(ctx, ownerID, fileID)
}

func (s *fileService) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.FileMeta, int, error) {
	return s.fileRepo.ListByOwner(ctx, ownerID, offset, limit)
}

func (s *fileService) Delete(ctx context.Context, ownerID, fileID uuid.UUID) error {
	s.logger.Info("deleting file",
		zap.String("file_id", fileID.String()), zap.String("owner_id", ownerID.String()))
	return s.fileRepo.Delete(ctx, ownerID, fileID)
}
