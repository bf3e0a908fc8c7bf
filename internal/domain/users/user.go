package users

import (
	"errors"
	"strings"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/pkg/validators"
)

// UserType is the kind of account
type UserType string

// Account kinds
const (
	UserTypeStudent       UserType = "lyceen"
	UserTypeEstablishment UserType = "universite"
	UserTypeAdmin         UserType = "admin"
)

// IsReviewer reports whether accounts of this type may review applications
// and manage formations.
func (t UserType) IsReviewer() bool {
	return t == UserTypeEstablishment || t == UserTypeAdmin
}

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveAccount    = errors.New("account is deactivated")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWeakPassword       = errors.New("password does not meet the policy")
)

// User entity holding credentials. Profile data lives in Profile.
type User struct {
	ID           string    `validate:"required,uuid4"`
	Email        string    `validate:"required,email,max=255"`
	PasswordHash string    `validate:"required"`
	CreatedAt    time.Time `validate:"required"`
	UpdatedAt    time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.ValidateStruct(u)
}

// NormalizeEmail lower-cases and trims an address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Identity is what a verified token tells about its bearer
type Identity struct {
	UserID    string
	Email     string
	UserType  UserType
	TokenID   string
	ExpiresAt time.Time
}

// Session is returned on sign in and session retrieval
type Session struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *User
	Profile     *Profile
}

// SignUpInput carries the registration form
type SignUpInput struct {
	Email       string   `validate:"required,email,max=255"`
	Password    string   `validate:"required"`
	FirstName   string   `validate:"required,min=1,max=100"`
	LastName    string   `validate:"required,min=1,max=100"`
	UserType    UserType `validate:"required,usertype"`
	Institution string   `validate:"omitempty,max=255"`
}

// Validate for validating SignUpInput struct
func (in *SignUpInput) Validate() error {
	return validators.ValidateStruct(in)
}
