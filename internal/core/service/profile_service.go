package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/devconnector/api/internal/core/domain"
	"github.com/devconnector/api/internal/core/ports"
)

// ProfileListCache abstracts the cached public profile listing (Redis).
// Cache failures are never fatal; the store is the source of truth.
type ProfileListCache interface {
	Get(ctx context.Context) ([]*domain.Profile, bool, error)
	Set(ctx context.Context, profiles []*domain.Profile) error
	Invalidate(ctx context.Context) error
}

// ProfileService implements profile upsert, lookup, cascade delete and
// nested experience/education edits.
type ProfileService struct {
	profiles ports.ProfileRepository
	users    ports.UserRepository
	cache    ProfileListCache
	logger   zerolog.Logger
}

func NewProfileService(profiles ports.ProfileRepository, users ports.UserRepository, cache ProfileListCache, logger zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, cache: cache, logger: logger}
}

// Upsert creates or updates the user's profile. Only supplied fields are
// written; absent fields stay untouched on update. The comma-separated
// skills submission is split and trimmed into an ordered list.
func (s *ProfileService) Upsert(ctx context.Context, userID string, input ports.UpsertProfileInput) (*domain.Profile, error) {
	fields := ports.ProfileFields{
		Company:        input.Company,
		Website:        input.Website,
		Location:       input.Location,
		Status:         input.Status,
		Skills:         splitSkills(input.Skills),
		Bio:            input.Bio,
		GithubUsername: input.GithubUsername,
		Youtube:        input.Youtube,
		Twitter:        input.Twitter,
		Facebook:       input.Facebook,
		Linkedin:       input.Linkedin,
		Instagram:      input.Instagram,
	}

	profile, err := s.profiles.Upsert(ctx, userID, fields)
	if err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	s.logger.Info().Str("user_id", userID).Msg("profile upserted")
	return profile, nil
}

// GetByUser returns the profile owned by the given user.
func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.FindByUser(ctx, userID)
}

// GetAll returns every profile, served from cache when fresh.
func (s *ProfileService) GetAll(ctx context.Context) ([]*domain.Profile, error) {
	if cached, ok, err := s.cache.Get(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("profile cache read failed, falling back to store")
	} else if ok {
		return cached, nil
	}

	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, profiles); err != nil {
		s.logger.Warn().Err(err).Msg("profile cache write failed")
	}
	return profiles, nil
}

// DeleteWithUser removes the profile and its owning user record together.
// A user without a profile can still delete their account.
func (s *ProfileService) DeleteWithUser(ctx context.Context, userID string) error {
	if err := s.profiles.DeleteByUser(ctx, userID); err != nil && err != domain.ErrProfileNotFound {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	s.logger.Info().Str("user_id", userID).Msg("user and profile deleted")
	return nil
}

// AddExperience prepends a new work history entry and returns the updated
// profile. The entry gets a generated id distinct from the owner's.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, input ports.ExperienceInput) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := domain.Experience{
		ID:          newEntryID(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}
	profile.Experience = append([]domain.Experience{entry}, profile.Experience...)

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)
	return profile, nil
}

// RemoveExperience deletes one entry by id from the requester's own profile.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, entryID string) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := profile.RemoveExperience(entryID); err != nil {
		return nil, err
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)
	return profile, nil
}

// AddEducation prepends a new schooling entry and returns the updated profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, input ports.EducationInput) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := domain.Education{
		ID:           newEntryID(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}
	profile.Education = append([]domain.Education{entry}, profile.Education...)

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)
	return profile, nil
}

// RemoveEducation deletes one entry by id from the requester's own profile.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, entryID string) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := profile.RemoveEducation(entryID); err != nil {
		return nil, err
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)
	return profile, nil
}

func (s *ProfileService) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("profile cache invalidation failed")
	}
}

// splitSkills turns "go, rust ,c" into ["go","rust","c"], dropping empties.
func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
