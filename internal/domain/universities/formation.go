package universities

import (
	"errors"
	"fmt"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/pkg/validators"
)

// ErrPlacesExceeded is returned when available places exceed total places
var ErrPlacesExceeded = errors.New("available places exceed total places")

// Formation entity, a programme offered by a university
type Formation struct {
	ID                  string `validate:"required,uuid4"`
	UniversityID        string `validate:"required,uuid4"`
	Name                string `validate:"required,min=1,max=255"`
	Description         string `validate:"max=5000"`
	Level               string `validate:"required,max=100"`
	Domain              string `validate:"required,max=100"`
	DurationYears       int    `validate:"gte=0,lte=15"`
	TotalPlaces         int    `validate:"gte=0"`
	AvailablePlaces     int    `validate:"gte=0"`
	Requirements        string `validate:"max=5000"`
	AdmissionCriteria   string `validate:"max=5000"`
	ApplicationDeadline *time.Time
	TuitionFee          *float64 `validate:"omitempty,gte=0"`
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
	University          *University `validate:"-"`
}

// Validate for validating Formation struct
func (f *Formation) Validate() error {
	if err := validators.ValidateStruct(f); err != nil {
		return err
	}
	if f.AvailablePlaces > f.TotalPlaces {
		return fmt.Errorf("%w: %d > %d", ErrPlacesExceeded, f.AvailablePlaces, f.TotalPlaces)
	}
	return nil
}

// DeadlinePassed reports whether the application deadline is before now
func (f *Formation) DeadlinePassed(now time.Time) bool {
	return f.ApplicationDeadline != nil && f.ApplicationDeadline.Before(now)
}

// FormationUpdate is a partial update; nil fields are left untouched
type FormationUpdate struct {
	Name                *string    `validate:"omitempty,min=1,max=255"`
	Description         *string    `validate:"omitempty,max=5000"`
	Level               *string    `validate:"omitempty,min=1,max=100"`
	Domain              *string    `validate:"omitempty,min=1,max=100"`
	DurationYears       *int       `validate:"omitempty,gte=0,lte=15"`
	TotalPlaces         *int       `validate:"omitempty,gte=0"`
	AvailablePlaces     *int       `validate:"omitempty,gte=0"`
	Requirements        *string    `validate:"omitempty,max=5000"`
	AdmissionCriteria   *string    `validate:"omitempty,max=5000"`
	ApplicationDeadline *time.Time `validate:"omitempty"`
	TuitionFee          *float64   `validate:"omitempty,gte=0"`
	IsActive            *bool
}

// Validate for validating FormationUpdate struct
func (u *FormationUpdate) Validate() error {
	return validators.ValidateStruct(u)
}

// Apply copies the set fields of u onto f
func (u *FormationUpdate) Apply(f *Formation) {
	set(&f.Name, u.Name)
	set(&f.Description, u.Description)
	set(&f.Level, u.Level)
	set(&f.Domain, u.Domain)
	set(&f.DurationYears, u.DurationYears)
	set(&f.TotalPlaces, u.TotalPlaces)
	set(&f.AvailablePlaces, u.AvailablePlaces)
	set(&f.Requirements, u.Requirements)
	set(&f.AdmissionCriteria, u.AdmissionCriteria)
	set(&f.IsActive, u.IsActive)
	if u.ApplicationDeadline != nil {
		f.ApplicationDeadline = u.ApplicationDeadline
	}
	if u.TuitionFee != nil {
		f.TuitionFee = u.TuitionFee
	}
}

// FormationQuery filters the formation search. Only active formations match.
type FormationQuery struct {
	Search       string `validate:"max=255"`
	Domain       string `validate:"max=100"`
	Level        string `validate:"max=100"`
	City         string `validate:"max=100"`
	UniversityID string `validate:"omitempty,uuid4"`
	Limit        int    `validate:"omitempty,gt=0,lte=200"`
	Offset       int    `validate:"omitempty,gte=0"`
}

// Validate for validating FormationQuery struct
func (q *FormationQuery) Validate() error {
	return validators.ValidateStruct(q)
}

// FilterOptions lists the distinct values the search filters accept
type FilterOptions struct {
	Domains []string
	Levels  []string
	Cities  []string
}
