package ports

import (
	"context"

	"github.com/devconnector/api/internal/core/domain"
)

// PostRepository defines persistence for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// FindAll returns all posts newest-first.
	FindAll(ctx context.Context) ([]*domain.Post, error)
	// Save persists nested like/comment edits by replacing the stored
	// sequences (read-modify-write, last write wins).
	Save(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
}
