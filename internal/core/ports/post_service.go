package ports

import (
	"context"

	"github.com/devconnector/api/internal/core/domain"
)

// PostService defines use-case operations for posts and their nested
// likes and comments.
type PostService interface {
	Create(ctx context.Context, userID, text string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	// Delete removes a post. Only the post's owner may delete it.
	Delete(ctx context.Context, userID, id string) error
	// Like prepends a like and returns the updated likes list.
	Like(ctx context.Context, userID, id string) ([]domain.Like, error)
	// Unlike removes the requester's like and returns the updated likes list.
	Unlike(ctx context.Context, userID, id string) ([]domain.Like, error)
	// AddComment prepends a comment and returns the updated comments list.
	AddComment(ctx context.Context, userID, id, text string) ([]domain.Comment, error)
	// RemoveComment removes a comment by its own id. Only the comment's
	// author may remove it.
	RemoveComment(ctx context.Context, userID, id, commentID string) ([]domain.Comment, error)
}
