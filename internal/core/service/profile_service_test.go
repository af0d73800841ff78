package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/devconnector/api/internal/core/domain"
	"github.com/devconnector/api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubProfileRepo struct {
	byUser map[string]*domain.Profile
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{byUser: make(map[string]*domain.Profile)}
}

func cloneProfile(p *domain.Profile) *domain.Profile {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Skills = append([]string(nil), p.Skills...)
	clone.Experience = append([]domain.Experience(nil), p.Experience...)
	clone.Education = append([]domain.Education(nil), p.Education...)
	return &clone
}

// Upsert mirrors the sparse $set semantics of the Mongo repository: only
// supplied fields overwrite, everything else survives.
func (r *stubProfileRepo) Upsert(_ context.Context, userID string, fields ports.ProfileFields) (*domain.Profile, error) {
	p, ok := r.byUser[userID]
	if !ok {
		p = &domain.Profile{
			ID:         "profile_" + userID,
			UserID:     userID,
			Experience: []domain.Experience{},
			Education:  []domain.Education{},
			CreatedAt:  time.Now().UTC(),
		}
		r.byUser[userID] = p
	}

	setIfPresent := func(dst *string, val string) {
		if val != "" {
			*dst = val
		}
	}
	setIfPresent(&p.Company, fields.Company)
	setIfPresent(&p.Website, fields.Website)
	setIfPresent(&p.Location, fields.Location)
	setIfPresent(&p.Status, fields.Status)
	setIfPresent(&p.Bio, fields.Bio)
	setIfPresent(&p.GithubUsername, fields.GithubUsername)
	setIfPresent(&p.Social.Youtube, fields.Youtube)
	setIfPresent(&p.Social.Twitter, fields.Twitter)
	setIfPresent(&p.Social.Facebook, fields.Facebook)
	setIfPresent(&p.Social.Linkedin, fields.Linkedin)
	setIfPresent(&p.Social.Instagram, fields.Instagram)
	if fields.Skills != nil {
		p.Skills = append([]string(nil), fields.Skills...)
	}

	return cloneProfile(p), nil
}

func (r *stubProfileRepo) FindByUser(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return cloneProfile(p), nil
}

func (r *stubProfileRepo) FindAll(_ context.Context) ([]*domain.Profile, error) {
	profiles := make([]*domain.Profile, 0, len(r.byUser))
	for _, p := range r.byUser {
		profiles = append(profiles, cloneProfile(p))
	}
	return profiles, nil
}

func (r *stubProfileRepo) Save(_ context.Context, profile *domain.Profile) error {
	p, ok := r.byUser[profile.UserID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	p.Experience = append([]domain.Experience(nil), profile.Experience...)
	p.Education = append([]domain.Education(nil), profile.Education...)
	return nil
}

func (r *stubProfileRepo) DeleteByUser(_ context.Context, userID string) error {
	if _, ok := r.byUser[userID]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(r.byUser, userID)
	return nil
}

type stubProfileCache struct {
	cached      []*domain.Profile
	fresh       bool
	invalidated int
}

func (c *stubProfileCache) Get(_ context.Context) ([]*domain.Profile, bool, error) {
	return c.cached, c.fresh, nil
}

func (c *stubProfileCache) Set(_ context.Context, profiles []*domain.Profile) error {
	c.cached = profiles
	c.fresh = true
	return nil
}

func (c *stubProfileCache) Invalidate(_ context.Context) error {
	c.cached = nil
	c.fresh = false
	c.invalidated++
	return nil
}

func newTestProfileService() (*ProfileService, *stubProfileRepo, *stubUserRepo, *stubProfileCache) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	cache := &stubProfileCache{}
	svc := NewProfileService(profiles, users, cache, zerolog.Nop())
	return svc, profiles, users, cache
}

// ---------------------------------------------------------------------------
// Upsert
// ---------------------------------------------------------------------------

func TestProfileService_Upsert_Create(t *testing.T) {
	svc, _, _, _ := newTestProfileService()

	profile, err := svc.Upsert(context.Background(), "user_1", ports.UpsertProfileInput{
		Status: "Dev",
		Skills: "go, rust",
	})
	if err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	if profile.UserID != "user_1" {
		t.Fatalf("expected owner user_1, got %s", profile.UserID)
	}
	if profile.Status != "Dev" {
		t.Fatalf("unexpected status: %s", profile.Status)
	}
	if !reflect.DeepEqual(profile.Skills, []string{"go", "rust"}) {
		t.Fatalf("expected skills [go rust], got %v", profile.Skills)
	}
}

func TestProfileService_Upsert_SparseUpdateKeepsUnsetFields(t *testing.T) {
	svc, _, _, _ := newTestProfileService()

	if _, err := svc.Upsert(context.Background(), "user_1", ports.UpsertProfileInput{
		Status: "Dev",
		Skills: "go",
		Bio:    "systems programmer",
	}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	// submitting only status twice leaves the bio untouched
	for i := 0; i < 2; i++ {
		profile, err := svc.Upsert(context.Background(), "user_1", ports.UpsertProfileInput{Status: "Senior Dev"})
		if err != nil {
			t.Fatalf("upsert %d failed: %v", i, err)
		}
		if profile.Bio != "systems programmer" {
			t.Fatalf("bio lost on upsert %d: %q", i, profile.Bio)
		}
		if profile.Status != "Senior Dev" {
			t.Fatalf("status not updated on upsert %d: %q", i, profile.Status)
		}
	}
}

func TestProfileService_Upsert_SkillsSplitting(t *testing.T) {
	svc, _, _, _ := newTestProfileService()

	profile, err := svc.Upsert(context.Background(), "user_1", ports.UpsertProfileInput{
		Status: "Dev",
		Skills: " go ,rust,, c ",
	})
	if err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	if !reflect.DeepEqual(profile.Skills, []string{"go", "rust", "c"}) {
		t.Fatalf("expected trimmed skills, got %v", profile.Skills)
	}
}

func TestProfileService_Upsert_InvalidatesListingCache(t *testing.T) {
	svc, _, _, cache := newTestProfileService()

	if _, err := svc.Upsert(context.Background(), "user_1", ports.UpsertProfileInput{Status: "Dev"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if cache.invalidated == 0 {
		t.Fatalf("expected cache invalidation on upsert")
	}
}

// ---------------------------------------------------------------------------
// Lookup and listing
// ---------------------------------------------------------------------------

func TestProfileService_GetByUser_NotFound(t *testing.T) {
	svc, _, _, _ := newTestProfileService()

	if _, err := svc.GetByUser(context.Background(), "ghost"); err != domain.ErrProfileNotFound {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileService_GetAll_UsesCache(t *testing.T) {
	svc, _, _, cache := newTestProfileService()

	cached := []*domain.Profile{{ID: "cached", UserID: "user_9"}}
	cache.cached = cached
	cache.fresh = true

	profiles, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(profiles) != 1 || profiles[0].ID != "cached" {
		t.Fatalf("expected cached listing, got %+v", profiles)
	}
}

func TestProfileService_GetAll_FillsCacheOnMiss(t *testing.T) {
	svc, _, _, cache := newTestProfileService()

	if _, err := svc.Upsert(context.Background(), "user_1", ports.UpsertProfileInput{Status: "Dev"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	profiles, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected one profile, got %d", len(profiles))
	}
	if !cache.fresh {
		t.Fatalf("expected listing to be cached after miss")
	}
}

// ---------------------------------------------------------------------------
// Cascade delete
// ---------------------------------------------------------------------------

func TestProfileService_DeleteWithUser_RemovesBoth(t *testing.T) {
	svc, profiles, users, _ := newTestProfileService()

	created, err := users.Create(context.Background(), &domain.User{Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if _, err := svc.Upsert(context.Background(), created.ID, ports.UpsertProfileInput{Status: "Dev"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if err := svc.DeleteWithUser(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteWithUser returned error: %v", err)
	}
	if _, err := profiles.FindByUser(context.Background(), created.ID); err != domain.ErrProfileNotFound {
		t.Fatalf("expected profile gone, got %v", err)
	}
	if _, err := users.FindByID(context.Background(), created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected user gone, got %v", err)
	}
}

func TestProfileService_DeleteWithUser_NoProfile(t *testing.T) {
	svc, _, users, _ := newTestProfileService()

	created, err := users.Create(context.Background(), &domain.User{Name: "Bob", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	// a user without a profile can still delete their account
	if err := svc.DeleteWithUser(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteWithUser returned error: %v", err)
	}
	if _, err := users.FindByID(context.Background(), created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected user gone, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Experience / education
// ---------------------------------------------------------------------------

func TestProfileService_AddExperience_PrependsWithFreshID(t *testing.T) {
	svc, _, _, _ := newTestProfileService()

	if _, err := svc.Upsert(context.Background(), "user_1", ports.UpsertProfileInput{Status: "Dev"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	first, err := svc.AddExperience(context.Background(), "user_1", ports.ExperienceInput{
		Title: "Engineer", Company: "Acme", From: time.Now().AddDate(-2, 0, 0),
	})
	if err != nil {
		t.Fatalf("AddExperience returned error: %v", err)
	}
	second, err := svc.AddExperience(context.Background(), "user_1", ports.ExperienceInput{
		Title: "Senior Engineer", Company: "Acme", From: time.Now().AddDate(-1, 0, 0),
	})
	if err != nil {
		t.Fatalf("AddExperience returned error: %v", err)
	}

	if len(second.Experience) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(second.Experience))
	}
	// newest first
	if second.Experience[0].Title != "Senior Engineer" {
		t.Fatalf("expected newest entry first, got %s", second.Experience[0].Title)
	}
	if first.Experience[0].ID == "" || second.Experience[0].ID == first.Experience[0].ID {
		t.Fatalf("expected distinct generated ids")
	}
}

func TestProfileService_RemoveExperience(t *testing.T) {
	svc, _, _, _ := newTestProfileService()

	if _, err := svc.Upsert(context.Background(), "user_1", ports.UpsertProfileInput{Status: "Dev"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	profile, err := svc.AddExperience(context.Background(), "user_1", ports.ExperienceInput{
		Title: "Engineer", Company: "Acme", From: time.Now(),
	})
	if err != nil {
		t.Fatalf("AddExperience returned error: %v", err)
	}

	updated, err := svc.RemoveExperience(context.Background(), "user_1", profile.Experience[0].ID)
	if err != nil {
		t.Fatalf("RemoveExperience returned error: %v", err)
	}
	if len(updated.Experience) != 0 {
		t.Fatalf("expected empty experience list, got %d entries", len(updated.Experience))
	}
}

func TestProfileService_RemoveExperience_UnknownEntry(t *testing.T) {
	svc, _, _, _ := newTestProfileService()

	if _, err := svc.Upsert(context.Background(), "user_1", ports.UpsertProfileInput{Status: "Dev"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if _, err := svc.RemoveExperience(context.Background(), "user_1", "nope"); err != domain.ErrEntryNotFound {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestProfileService_AddRemoveEducation(t *testing.T) {
	svc, _, _, _ := newTestProfileService()

	if _, err := svc.Upsert(context.Background(), "user_1", ports.UpsertProfileInput{Status: "Dev"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	profile, err := svc.AddEducation(context.Background(), "user_1", ports.EducationInput{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: time.Now().AddDate(-5, 0, 0),
	})
	if err != nil {
		t.Fatalf("AddEducation returned error: %v", err)
	}
	if len(profile.Education) != 1 || profile.Education[0].School != "MIT" {
		t.Fatalf("unexpected education list: %+v", profile.Education)
	}

	updated, err := svc.RemoveEducation(context.Background(), "user_1", profile.Education[0].ID)
	if err != nil {
		t.Fatalf("RemoveEducation returned error: %v", err)
	}
	if len(updated.Education) != 0 {
		t.Fatalf("expected empty education list, got %d entries", len(updated.Education))
	}
}
