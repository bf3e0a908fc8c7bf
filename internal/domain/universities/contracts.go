package universities

import "context"

// UniversityService covers the catalogue of universities and formations.
type UniversityService interface {
	List(ctx context.Context, query *UniversityQuery) ([]*University, error)
	GetByID(ctx context.Context, universityID string) (*University, error)
	Create(ctx context.Context, university *University) (*University, error)
	Update(ctx context.Context, universityID string, update UniversityUpdate) (*University, error)
	DeleteByID(ctx context.Context, universityID string) error

	ListFormations(ctx context.Context, universityID string) ([]*Formation, error)
	SearchFormations(ctx context.Context, query *FormationQuery) ([]*Formation, error)
	GetFormation(ctx context.Context, formationID string) (*Formation, error)
	CreateFormation(ctx context.Context, formation *Formation) (*Formation, error)
	UpdateFormation(ctx context.Context, formationID string, update FormationUpdate) (*Formation, error)
	FilterOptions(ctx context.Context) (*FilterOptions, error)
}

// UniversityRepository defines the interface for University-related operations
type UniversityRepository interface {
	Create(ctx context.Context, university *University) error
	List(ctx context.Context, query *UniversityQuery) ([]*University, error)
	GetByID(ctx context.Context, universityID string) (*University, error)
	GetByName(ctx context.Context, name string) (*University, error)
	UpdateByID(ctx context.Context, university *University) error
	DeleteByID(ctx context.Context, universityID string) error
	DistinctCities(ctx context.Context) ([]string, error)
}

// FormationRepository defines the interface for Formation-related operations
type FormationRepository interface {
	Create(ctx context.Context, formation *Formation) error
	// List returns active formations with their university embedded.
	List(ctx context.Context, query *FormationQuery) ([]*Formation, error)
	GetByID(ctx context.Context, formationID string) (*Formation, error)
	UpdateByID(ctx context.Context, formation *Formation) error
	DistinctDomains(ctx context.Context) ([]string, error)
	DistinctLevels(ctx context.Context) ([]string, error)
}
