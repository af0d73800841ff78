package ports

import (
	"context"
	"time"

	"github.com/devconnector/api/internal/core/domain"
)

// UpsertProfileInput carries the profile-submit payload. Skills is the raw
// comma-separated submission; the service splits and trims it.
type UpsertProfileInput struct {
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// ExperienceInput carries a new work history entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// EducationInput carries a new schooling entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// ProfileService defines use-case operations for developer profiles.
type ProfileService interface {
	Upsert(ctx context.Context, userID string, input UpsertProfileInput) (*domain.Profile, error)
	GetByUser(ctx context.Context, userID string) (*domain.Profile, error)
	GetAll(ctx context.Context) ([]*domain.Profile, error)
	// DeleteWithUser removes the profile and its owning user together.
	DeleteWithUser(ctx context.Context, userID string) error
	AddExperience(ctx context.Context, userID string, input ExperienceInput) (*domain.Profile, error)
	RemoveExperience(ctx context.Context, userID, entryID string) (*domain.Profile, error)
	AddEducation(ctx context.Context, userID string, input EducationInput) (*domain.Profile, error)
	RemoveEducation(ctx context.Context, userID, entryID string) (*domain.Profile, error)
}
