package app

import (
	"context"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"github.com/google/uuid"
)

// universityService implements the UniversityService interface
type universityService struct {
	universityRepo universities.UniversityRepository
	formationRepo  universities.FormationRepository
	logger         logger.Logger
}

// NewUniversityService creates a new instance of UniversityService
func NewUniversityService(universityRepo universities.UniversityRepository, formationRepo universities.FormationRepository, logger logger.Logger) (universities.UniversityService, error) {
	return &universityService{
		universityRepo: universityRepo,
		formationRepo:  formationRepo,
		logger:         logger,
	}, nil
}

// List returns universities matching the query, ordered by name
func (s *universityService) List(ctx context.Context, query *universities.UniversityQuery) ([]*universities.University, error) {
	if query == nil {
		query = &universities.UniversityQuery{}
	}
	return s.universityRepo.List(ctx, query)
}

// GetByID fetches a university
func (s *universityService) GetByID(ctx context.Context, universityID string) (*universities.University, error) {
	return s.universityRepo.GetByID(ctx, universityID)
}

// Create stores a new university
func (s *universityService) Create(ctx context.Context, university *universities.University) (*universities.University, error) {
	now := time.Now().UTC()
	university.ID = uuid.NewString()
	university.CreatedAt = now
	university.UpdatedAt = now

	if err := s.universityRepo.Create(ctx, university); err != nil {
		return nil, err
	}

	s.logger.Info("Created university ", university.Name, " with id ", university.ID)
	return s.universityRepo.GetByID(ctx, university.ID)
}

// Update applies a partial update and returns the stored university
func (s *universityService) Update(ctx context.Context, universityID string, update universities.UniversityUpdate) (*universities.University, error) {
	if err := update.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}

	university, err := s.universityRepo.GetByID(ctx, universityID)
	if err != nil {
		return nil, err
	}

	update.Apply(university)
	university.UpdatedAt = time.Now().UTC()

	if err := s.universityRepo.UpdateByID(ctx, university); err != nil {
		return nil, err
	}
	return s.universityRepo.GetByID(ctx, universityID)
}

// DeleteByID removes a university together with its formations.
// It fails with shared.ErrConflict while any formation still has applications.
func (s *universityService) DeleteByID(ctx context.Context, universityID string) error {
	if _, err := s.universityRepo.GetByID(ctx, universityID); err != nil {
		return err
	}
	if err := s.universityRepo.DeleteByID(ctx, universityID); err != nil {
		return err
	}

	s.logger.Info("Deleted university with id ", universityID)
	return nil
}

// ListFormations returns the active formations of a university, by name
func (s *universityService) ListFormations(ctx context.Context, universityID string) ([]*universities.Formation, error) {
	if _, err := s.universityRepo.GetByID(ctx, universityID); err != nil {
		return nil, err
	}
	return s.formationRepo.List(ctx, &universities.FormationQuery{UniversityID: universityID})
}

// SearchFormations returns active formations matching the query
func (s *universityService) SearchFormations(ctx context.Context, query *universities.FormationQuery) ([]*universities.Formation, error) {
	if query == nil {
		query = &universities.FormationQuery{}
	}
	return s.formationRepo.List(ctx, query)
}

// GetFormation fetches a formation with its university
func (s *universityService) GetFormation(ctx context.Context, formationID string) (*universities.Formation, error) {
	return s.formationRepo.GetByID(ctx, formationID)
}

// CreateFormation stores a formation of an existing university
func (s *universityService) CreateFormation(ctx context.Context, formation *universities.Formation) (*universities.Formation, error) {
	if _, err := s.universityRepo.GetByID(ctx, formation.UniversityID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	formation.ID = uuid.NewString()
	formation.CreatedAt = now
	formation.UpdatedAt = now

	if err := s.formationRepo.Create(ctx, formation); err != nil {
		return nil, err
	}

	s.logger.Info("Created formation with id ", formation.ID, " in university ", formation.UniversityID)
	return s.formationRepo.GetByID(ctx, formation.ID)
}

// UpdateFormation applies a partial update and returns the stored formation
func (s *universityService) UpdateFormation(ctx context.Context, formationID string, update universities.FormationUpdate) (*universities.Formation, error) {
	if err := update.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}

	formation, err := s.formationRepo.GetByID(ctx, formationID)
	if err != nil {
		return nil, err
	}

	update.Apply(formation)
	formation.UpdatedAt = time.Now().UTC()

	if err := s.formationRepo.UpdateByID(ctx, formation); err != nil {
		return nil, err
	}
	return s.formationRepo.GetByID(ctx, formationID)
}

// FilterOptions lists the domains and levels of active formations and the cities of universities
func (s *universityService) FilterOptions(ctx context.Context) (*universities.FilterOptions, error) {
	domains, err := s.formationRepo.DistinctDomains(ctx)
	if err != nil {
		return nil, err
	}
	levels, err := s.formationRepo.DistinctLevels(ctx)
	if err != nil {
		return nil, err
	}
	cities, err := s.universityRepo.DistinctCities(ctx)
	if err != nil {
		return nil, err
	}

	return &universities.FilterOptions{
		Domains: nonNil(domains),
		Levels:  nonNil(levels),
		Cities:  nonNil(cities),
	}, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
