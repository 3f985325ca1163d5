package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"moim/internal/domain"
	"moim/internal/port"
)

type fileRepo struct {
	db *sqlx.DB
}

// NewFileRepo creates a new PostgreSQL-backed FileRepository.
func NewFileRepo(db *sqlx.DB) port.FileRepository {
	return &fileRepo{db: db}
}

func (r *fileRepo) Create(ctx context.Context, meta *domain.FileMeta) error {
	now := time.Now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	query := `INSERT INTO files (id, owner_id, file_name, content_type, file_size,
		extracted_text, source_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		meta.ID, meta.OwnerID, meta.FileName, meta.ContentType, meta.FileSize,
		meta.ExtractedText, meta.SourceURL, meta.CreatedAt, meta.UpdatedAt)
	if err != nil {
		return fmt.Errorf("fileRepo.Create: %w", err)
	}
	return nil
}

func (r *fileRepo) GetByID(ctx context.Context, ownerID, fileID uuid.UUID) (*domain.FileMeta, error) {
	var meta domain.FileMeta
	err := r.db.GetContext(ctx, &meta,
		"SELECT * FROM files WHERE id = $1 AND owner_id = $2", fileID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fileRepo.GetByID: %w", err)
	}
	return &meta, nil
}

func (r *fileRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.FileMeta, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM files WHERE owner_id = $1", ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("fileRepo.ListByOwner count: %w", err)
	}

	var files []domain.FileMeta
	err = r.db.SelectContext(ctx, &files,
		"SELECT * FROM files WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("fileRepo.ListByOwner: %w", err)
	}
	return files, total, nil
}

func (r *fileRepo) Delete(ctx context.Context, ownerID, fileID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM files WHERE id = $1 AND owner_id = $2", fileID, ownerID)
	if err != nil {
		return fmt.Errorf("fileRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
