package applications

import (
	"errors"
	"fmt"
)

// Status of an application in its lifecycle
type Status string

// Application statuses
const (
	StatusDraft       Status = "draft"
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under_review"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
	StatusWaitlisted  Status = "waitlisted"
)

// ErrInvalidTransition is returned for status changes the lifecycle forbids
var ErrInvalidTransition = errors.New("invalid status transition")

var transitions = map[Status][]Status{
	StatusDraft:       {StatusSubmitted},
	StatusSubmitted:   {StatusUnderReview, StatusAccepted, StatusRejected, StatusWaitlisted},
	StatusUnderReview: {StatusAccepted, StatusRejected, StatusWaitlisted},
	StatusWaitlisted:  {StatusAccepted, StatusRejected},
}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusUnderReview, StatusAccepted, StatusRejected, StatusWaitlisted:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether the lifecycle allows s -> next
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CheckTransition returns ErrInvalidTransition when s -> next is not allowed
func (s Status) CheckTransition(next Status) error {
	if !s.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return nil
}

// IsReviewOutcome reports whether s can be set by a reviewer
func (s Status) IsReviewOutcome() bool {
	switch s {
	case StatusUnderReview, StatusAccepted, StatusRejected, StatusWaitlisted:
		return true
	}
	return false
}

// Editable reports whether the student may still edit the application
func (s Status) Editable() bool {
	return s == StatusDraft
}

// Deletable reports whether the student may withdraw the application
func (s Status) Deletable() bool {
	return s == StatusDraft || s == StatusSubmitted
}
