package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/devconnector/api/internal/core/domain"
	"github.com/devconnector/api/internal/core/ports"
)

// PostService implements post CRUD and the ownership-checked nested edits
// for likes and comments. Each mutation is a read-modify-write against a
// single document; concurrent edits to the same post are last-write-wins.
type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, logger: logger}
}

// Create persists a new post, copying the author's name and avatar into the
// document at creation time.
func (s *PostService) Create(ctx context.Context, userID, text string) (*domain.Post, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:        newEntryID(),
		UserID:    userID,
		Text:      text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Likes:     []domain.Like{},
		Comments:  []domain.Comment{},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create post")
		return nil, err
	}
	return post, nil
}

// List returns all posts newest-first.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.FindAll(ctx)
}

// Get returns a single post by id.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

// Delete removes a post. Only its owner may delete it.
func (s *PostService) Delete(ctx context.Context, userID, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return domain.ErrNotOwner
	}
	return s.posts.Delete(ctx, id)
}

// Like prepends a like for the requester and returns the updated likes
// list. A second like from the same user fails without mutation.
func (s *PostService) Like(ctx context.Context, userID, id string) ([]domain.Like, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := post.AddLike(userID); err != nil {
		return nil, err
	}
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// Unlike removes the requester's like and returns the updated likes list.
// Unliking a post never liked fails without mutation.
func (s *PostService) Unlike(ctx context.Context, userID, id string) ([]domain.Like, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := post.RemoveLike(userID); err != nil {
		return nil, err
	}
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// AddComment prepends a comment with denormalized author fields and returns
// the updated comments list.
func (s *PostService) AddComment(ctx context.Context, userID, id, text string) ([]domain.Comment, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:        newEntryID(),
		UserID:    userID,
		Text:      text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now().UTC(),
	}
	post.Comments = append([]domain.Comment{comment}, post.Comments...)

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// RemoveComment removes exactly the comment with the given id. The
// requester must be the comment's author; the removal position is located
// by the comment's own id, so an author with several comments on the same
// post only ever loses the one addressed.
func (s *PostService) RemoveComment(ctx context.Context, userID, id, commentID string) ([]domain.Comment, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comment := post.FindComment(commentID)
	if comment == nil {
		return nil, domain.ErrCommentNotFound
	}
	if comment.UserID != userID {
		return nil, domain.ErrNotOwner
	}
	if err := post.RemoveComment(commentID); err != nil {
		return nil, err
	}

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}
