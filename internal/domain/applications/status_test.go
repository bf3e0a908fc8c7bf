//go:build unit
// +build unit

package applications

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusDraft, StatusSubmitted, true},
		{StatusDraft, StatusAccepted, false},
		{StatusSubmitted, StatusUnderReview, true},
		{StatusSubmitted, StatusAccepted, true},
		{StatusSubmitted, StatusDraft, false},
		{StatusUnderReview, StatusWaitlisted, true},
		{StatusUnderReview, StatusSubmitted, false},
		{StatusWaitlisted, StatusAccepted, true},
		{StatusWaitlisted, StatusUnderReview, false},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusAccepted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
			err := tt.from.CheckTransition(tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, StatusAccepted.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusWaitlisted.Terminal())

	assert.True(t, StatusDraft.Editable())
	assert.False(t, StatusSubmitted.Editable())

	assert.True(t, StatusSubmitted.Deletable())
	assert.False(t, StatusUnderReview.Deletable())

	assert.False(t, StatusSubmitted.IsReviewOutcome())
	assert.False(t, Status("archived").Valid())
}

func newDraft() *Application {
	return &Application{
		ID:          uuid.NewString(),
		StudentID:   uuid.NewString(),
		FormationID: uuid.NewString(),
		Status:      StatusDraft,
		Priority:    1,
	}
}

func TestApplication_SubmitAndReview(t *testing.T) {
	app := newDraft()
	require.NoError(t, app.Validate())

	now := time.Now()
	require.NoError(t, app.Submit(now))
	assert.Equal(t, StatusSubmitted, app.Status)
	require.NotNil(t, app.SubmittedAt)

	assert.ErrorIs(t, app.Submit(now), ErrInvalidTransition)

	reviewer := uuid.NewString()
	require.NoError(t, app.Review(StatusUnderReview, reviewer, "", now))
	assert.Empty(t, app.ReviewNotes)

	require.NoError(t, app.Review(StatusAccepted, reviewer, "Bon dossier", now))
	assert.Equal(t, StatusAccepted, app.Status)
	assert.Equal(t, "Bon dossier", app.ReviewNotes)
	assert.Equal(t, reviewer, *app.ReviewerID)
	require.NotNil(t, app.ReviewedAt)

	assert.ErrorIs(t, app.Review(StatusRejected, reviewer, "", now), ErrInvalidTransition)
}

func TestApplication_ReviewRejectsDraftTarget(t *testing.T) {
	app := newDraft()
	app.Status = StatusSubmitted
	err := app.Review(StatusDraft, uuid.NewString(), "", time.Now())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApplicationValidation(t *testing.T) {
	app := newDraft()
	grade := 20.5
	app.GradeAverage = &grade
	assert.Error(t, app.Validate())

	app = newDraft()
	app.Priority = 0
	assert.Error(t, app.Validate())
}

func TestStats_Add(t *testing.T) {
	var st Stats
	st.Add(StatusDraft, 2)
	st.Add(StatusAccepted, 1)
	st.Add(Status("unknown"), 5)
	assert.Equal(t, int64(3), st.Total)
	assert.Equal(t, int64(2), st.Draft)
	assert.Equal(t, int64(1), st.Accepted)
}

func TestEligibility_Err(t *testing.T) {
	assert.NoError(t, (&Eligibility{CanApply: true}).Err())
	err := (&Eligibility{Reason: ReasonDeadlinePassed}).Err()
	assert.ErrorIs(t, err, ErrNotEligible)
	assert.Contains(t, err.Error(), ReasonDeadlinePassed)
}
