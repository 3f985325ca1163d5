package port

import (
	"context"

	"github.com/google/uuid"

	"moim/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// FileRepository defines the contract for uploaded-file persistence.
// All query methods include ownerID to enforce per-user isolation at the
// data layer.
type FileRepository interface {
	Create(ctx context.Context, meta *domain.FileMeta) error
	GetByID(ctx context.Context, ownerID, fileID uuid.UUID) (*domain.FileMeta, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.FileMeta, int, error)
	Delete(ctx context.Context, ownerID, fileID uuid.UUID) error
}
