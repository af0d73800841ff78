package ports

import (
	"context"

	"github.com/devconnector/api/internal/core/domain"
)

// ProfileFields is the sparse set of headline fields written on upsert.
// Empty strings mean "not supplied" and are left untouched on update.
type ProfileFields struct {
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         []string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// ProfileRepository defines persistence for developer profiles.
type ProfileRepository interface {
	// Upsert applies the supplied fields to the user's profile, creating it
	// with the owner set when absent, and returns the resulting document.
	Upsert(ctx context.Context, userID string, fields ProfileFields) (*domain.Profile, error)
	FindByUser(ctx context.Context, userID string) (*domain.Profile, error)
	FindAll(ctx context.Context) ([]*domain.Profile, error)
	// Save persists nested list edits by replacing the stored experience and
	// education sequences (read-modify-write, last write wins).
	Save(ctx context.Context, profile *domain.Profile) error
	DeleteByUser(ctx context.Context, userID string) error
}
