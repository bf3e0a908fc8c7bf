package universities

import (
	"time"

	"github.com/Tsilavina4274/odyssea/internal/pkg/validators"
)

// University types
const (
	TypePublic  = "Public"
	TypePrivate = "Privé"
)

// University entity
type University struct {
	ID              string   `validate:"required,uuid4"`
	Name            string   `validate:"required,min=1,max=255"`
	Description     string   `validate:"max=5000"`
	City            string   `validate:"required,max=100"`
	Address         string   `validate:"max=255"`
	Type            string   `validate:"required,oneof=Public Privé"`
	Website         string   `validate:"omitempty,url"`
	Email           string   `validate:"omitempty,email"`
	Phone           string   `validate:"max=30"`
	EstablishedYear *int     `validate:"omitempty,gte=800,lte=2100"`
	StudentCount    int      `validate:"gte=0"`
	Rating          float64  `validate:"gte=0,lte=5"`
	ImageURL        string   `validate:"omitempty,url"`
	LogoURL         string   `validate:"omitempty,url"`
	Latitude        *float64 `validate:"omitempty,latitude"`
	Longitude       *float64 `validate:"omitempty,longitude"`
	Accreditations  []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate for validating University struct
func (u *University) Validate() error {
	return validators.ValidateStruct(u)
}

// UniversityUpdate is a partial update; nil fields are left untouched
type UniversityUpdate struct {
	Name            *string   `validate:"omitempty,min=1,max=255"`
	Description     *string   `validate:"omitempty,max=5000"`
	City            *string   `validate:"omitempty,min=1,max=100"`
	Address         *string   `validate:"omitempty,max=255"`
	Type            *string   `validate:"omitempty,oneof=Public Privé"`
	Website         *string   `validate:"omitempty,url"`
	Email           *string   `validate:"omitempty,email"`
	Phone           *string   `validate:"omitempty,max=30"`
	EstablishedYear *int      `validate:"omitempty,gte=800,lte=2100"`
	StudentCount    *int      `validate:"omitempty,gte=0"`
	Rating          *float64  `validate:"omitempty,gte=0,lte=5"`
	ImageURL        *string   `validate:"omitempty,url"`
	LogoURL         *string   `validate:"omitempty,url"`
	Latitude        *float64  `validate:"omitempty,latitude"`
	Longitude       *float64  `validate:"omitempty,longitude"`
	Accreditations  *[]string `validate:"omitempty"`
}

// Validate for validating UniversityUpdate struct
func (u *UniversityUpdate) Validate() error {
	return validators.ValidateStruct(u)
}

// Apply copies the set fields of u onto univ
func (u *UniversityUpdate) Apply(univ *University) {
	set(&univ.Name, u.Name)
	set(&univ.Description, u.Description)
	set(&univ.City, u.City)
	set(&univ.Address, u.Address)
	set(&univ.Type, u.Type)
	set(&univ.Website, u.Website)
	set(&univ.Email, u.Email)
	set(&univ.Phone, u.Phone)
	set(&univ.StudentCount, u.StudentCount)
	set(&univ.Rating, u.Rating)
	set(&univ.ImageURL, u.ImageURL)
	set(&univ.LogoURL, u.LogoURL)
	set(&univ.Accreditations, u.Accreditations)
	if u.EstablishedYear != nil {
		univ.EstablishedYear = u.EstablishedYear
	}
	if u.Latitude != nil {
		univ.Latitude = u.Latitude
	}
	if u.Longitude != nil {
		univ.Longitude = u.Longitude
	}
}

// UniversityQuery filters the university listing
type UniversityQuery struct {
	City   string
	Type   string `validate:"omitempty,oneof=Public Privé"`
	Search string `validate:"max=255"`
	Limit  int    `validate:"omitempty,gt=0,lte=200"`
	Offset int    `validate:"omitempty,gte=0"`
}

// Validate for validating UniversityQuery struct
func (q *UniversityQuery) Validate() error {
	return validators.ValidateStruct(q)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
