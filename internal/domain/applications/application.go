package applications

import (
	"errors"
	"fmt"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/validators"
)

// Application entity, a student's candidature to a formation
type Application struct {
	ID                  string `validate:"required,uuid4"`
	StudentID           string `validate:"required,uuid4"`
	FormationID         string `validate:"required,uuid4"`
	Status              Status `validate:"required,oneof=draft submitted under_review accepted rejected waitlisted"`
	MotivationLetter    string `validate:"max=10000"`
	AdditionalDocuments []string
	GradeAverage        *float64 `validate:"omitempty,grade"`
	Priority            int      `validate:"gte=1"`
	SubmittedAt         *time.Time
	ReviewedAt          *time.Time
	ReviewerID          *string
	ReviewNotes         string `validate:"max=5000"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Formation *universities.Formation `validate:"-"`
	Student   *users.ProfileSummary   `validate:"-"`
}

// Validate for validating Application struct
func (a *Application) Validate() error {
	return validators.ValidateStruct(a)
}

// Submit moves a draft to submitted
func (a *Application) Submit(now time.Time) error {
	if err := a.Status.CheckTransition(StatusSubmitted); err != nil {
		return err
	}
	a.Status = StatusSubmitted
	a.SubmittedAt = &now
	a.UpdatedAt = now
	return nil
}

// Review applies a reviewer decision
func (a *Application) Review(next Status, reviewerID, notes string, now time.Time) error {
	if !next.IsReviewOutcome() {
		return fmt.Errorf("%w: %s is not a review outcome", ErrInvalidTransition, next)
	}
	if err := a.Status.CheckTransition(next); err != nil {
		return err
	}
	a.Status = next
	a.ReviewedAt = &now
	a.ReviewerID = &reviewerID
	if notes != "" {
		a.ReviewNotes = notes
	}
	a.UpdatedAt = now
	return nil
}

// CreateInput carries a new draft application
type CreateInput struct {
	FormationID      string   `validate:"required,uuid4"`
	MotivationLetter string   `validate:"max=10000"`
	GradeAverage     *float64 `validate:"omitempty,grade"`
	Priority         int      `validate:"omitempty,gte=1"`
}

// Validate for validating CreateInput struct
func (in *CreateInput) Validate() error {
	return validators.ValidateStruct(in)
}

// UpdateInput is a partial update of a draft
type UpdateInput struct {
	MotivationLetter *string  `validate:"omitempty,max=10000"`
	GradeAverage     *float64 `validate:"omitempty,grade"`
	Priority         *int     `validate:"omitempty,gte=1"`
}

// Validate for validating UpdateInput struct
func (in *UpdateInput) Validate() error {
	return validators.ValidateStruct(in)
}

// Apply copies the set fields of in onto a
func (in *UpdateInput) Apply(a *Application) {
	if in.MotivationLetter != nil {
		a.MotivationLetter = *in.MotivationLetter
	}
	if in.GradeAverage != nil {
		a.GradeAverage = in.GradeAverage
	}
	if in.Priority != nil {
		a.Priority = *in.Priority
	}
}

// Stats counts applications per status
type Stats struct {
	Total       int64
	Draft       int64
	Submitted   int64
	UnderReview int64
	Accepted    int64
	Rejected    int64
	Waitlisted  int64
}

// Add counts n applications with status s
func (st *Stats) Add(s Status, n int64) {
	switch s {
	case StatusDraft:
		st.Draft += n
	case StatusSubmitted:
		st.Submitted += n
	case StatusUnderReview:
		st.UnderReview += n
	case StatusAccepted:
		st.Accepted += n
	case StatusRejected:
		st.Rejected += n
	case StatusWaitlisted:
		st.Waitlisted += n
	default:
		return
	}
	st.Total += n
}

// Ineligibility reasons
const (
	ReasonAlreadyApplied    = "already_applied"
	ReasonFormationInactive = "formation_not_active"
	ReasonNoAvailablePlaces = "no_available_places"
	ReasonDeadlinePassed    = "deadline_passed"
	ReasonFormationNotFound = "formation_not_found"
)

// ErrNotEligible is returned when a student cannot apply to a formation
var ErrNotEligible = errors.New("not eligible to apply")

// Eligibility tells whether a student may apply to a formation
type Eligibility struct {
	CanApply bool
	Reason   string
}

// Err returns nil for eligible results, ErrNotEligible with the reason otherwise
func (e *Eligibility) Err() error {
	if e.CanApply {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotEligible, e.Reason)
}
