package app

import (
	"context"
	"strings"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"
)

// DefaultSearchLimit of user searches
const DefaultSearchLimit = 10

// profileService implements the ProfileService interface
type profileService struct {
	profileRepo users.ProfileRepository
	logger      logger.Logger
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(profileRepo users.ProfileRepository, logger logger.Logger) (users.ProfileService, error) {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}, nil
}

// GetByUserID fetches the profile of a user
func (s *profileService) GetByUserID(ctx context.Context, userID string) (*users.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// UpdateByUserID applies a partial update and returns the stored profile
func (s *profileService) UpdateByUserID(ctx context.Context, userID string, update users.ProfileUpdate) (*users.Profile, error) {
	if err := update.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	update.Apply(profile)
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("Updated profile of user ", userID)
	return s.profileRepo.GetByUserID(ctx, userID)
}

// SearchUsers matches first or last names, case-insensitively
func (s *profileService) SearchUsers(ctx context.Context, query string, excludeIDs []string, limit int) ([]*users.ProfileSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*users.ProfileSummary{}, nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > shared.MaxLimit {
		limit = shared.MaxLimit
	}

	profiles, err := s.profileRepo.Search(ctx, query, excludeIDs, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]*users.ProfileSummary, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, p.Summary())
	}
	return summaries, nil
}
