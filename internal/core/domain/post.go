package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrAlreadyLiked = errors.New("post already liked")
var ErrNotLiked = errors.New("post not yet liked")
var ErrNotOwner = errors.New("user not authorized")

// Post is the feed aggregate. Author name and avatar are copied from the user
// record at creation time, not joined live.
type Post struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user" bson:"user"`
	Text      string    `json:"text" bson:"text"`
	Name      string    `json:"name" bson:"name"`
	Avatar    string    `json:"avatar" bson:"avatar"`
	Likes     []Like    `json:"likes" bson:"likes"`
	Comments  []Comment `json:"comments" bson:"comments"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Like records a single user's reaction. At most one like per user per post.
type Like struct {
	UserID string `json:"user" bson:"user"`
}

// Comment is a nested reply on a post with denormalized author fields.
type Comment struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"user" bson:"user"`
	Text      string    `json:"text" bson:"text"`
	Name      string    `json:"name" bson:"name"`
	Avatar    string    `json:"avatar" bson:"avatar"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// LikedBy reports whether the user already has a like on this post.
func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// AddLike prepends a like for the user. A second like from the same user
// fails with ErrAlreadyLiked and leaves the list untouched.
func (p *Post) AddLike(userID string) error {
	if p.LikedBy(userID) {
		return ErrAlreadyLiked
	}
	p.Likes = append([]Like{{UserID: userID}}, p.Likes...)
	return nil
}

// RemoveLike removes the user's like. Unliking a post never liked by the
// user fails with ErrNotLiked and leaves the list untouched.
func (p *Post) RemoveLike(userID string) error {
	for i, l := range p.Likes {
		if l.UserID == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return nil
		}
	}
	return ErrNotLiked
}

// FindComment returns the comment with the given id, or nil.
func (p *Post) FindComment(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}

// RemoveComment removes exactly the comment with the given id.
func (p *Post) RemoveComment(commentID string) error {
	for i, cm := range p.Comments {
		if cm.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return ErrCommentNotFound
}
