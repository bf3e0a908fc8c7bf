package app

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"github.com/google/uuid"
)

// ErrDocumentsDisabled is returned when no document connector is configured
var ErrDocumentsDisabled = errors.New("document storage is not configured")

var statusLabels = map[applications.Status]string{
	applications.StatusSubmitted:   "soumise",
	applications.StatusUnderReview: "en cours d'examen",
	applications.StatusAccepted:    "acceptée",
	applications.StatusRejected:    "refusée",
	applications.StatusWaitlisted:  "sur liste d'attente",
}

// applicationService implements the ApplicationService interface
type applicationService struct {
	applicationRepo     applications.ApplicationRepository
	formationRepo       universities.FormationRepository
	profileRepo         users.ProfileRepository
	notificationService notifications.NotificationService
	documentService     documents.DocumentService
	logger              logger.Logger
	now                 func() time.Time
}

// NewApplicationService creates a new instance of ApplicationService.
// documentService may be nil, AttachDocument then fails with ErrDocumentsDisabled.
func NewApplicationService(
	applicationRepo applications.ApplicationRepository,
	formationRepo universities.FormationRepository,
	profileRepo users.ProfileRepository,
	notificationService notifications.NotificationService,
	documentService documents.DocumentService,
	logger logger.Logger,
) (applications.ApplicationService, error) {
	return &applicationService{
		applicationRepo:     applicationRepo,
		formationRepo:       formationRepo,
		profileRepo:         profileRepo,
		notificationService: notificationService,
		documentService:     documentService,
		logger:              logger,
		now:                 func() time.Time { return time.Now().UTC() },
	}, nil
}

// ListByStudent returns the applications of a student with formation and university, newest first
func (s *applicationService) ListByStudent(ctx context.Context, studentID string) ([]*applications.Application, error) {
	return s.applicationRepo.ListByStudent(ctx, studentID)
}

// ListByFormation returns the non-draft applications to a formation with the students embedded
func (s *applicationService) ListByFormation(ctx context.Context, formationID string) ([]*applications.Application, error) {
	applicationList, err := s.applicationRepo.ListByFormation(ctx, formationID)
	if err != nil {
		return nil, err
	}
	if err := s.embedStudents(ctx, applicationList...); err != nil {
		return nil, err
	}
	return applicationList, nil
}

// GetByID fetches an application with formation, university and student
func (s *applicationService) GetByID(ctx context.Context, applicationID string) (*applications.Application, error) {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if err := s.embedStudents(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

// Create stores a draft application after checking eligibility
func (s *applicationService) Create(ctx context.Context, studentID string, input applications.CreateInput) (*applications.Application, error) {
	if err := input.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}

	eligibility, err := s.CanApply(ctx, studentID, input.FormationID)
	if err != nil {
		return nil, err
	}
	if err := eligibility.Err(); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority < 1 {
		priority = 1
	}

	now := s.now()
	application := &applications.Application{
		ID:               uuid.NewString(),
		StudentID:        studentID,
		FormationID:      input.FormationID,
		Status:           applications.StatusDraft,
		MotivationLetter: input.MotivationLetter,
		GradeAverage:     input.GradeAverage,
		Priority:         priority,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, shared.ErrConflict) {
			return nil, (&applications.Eligibility{Reason: applications.ReasonAlreadyApplied}).Err()
		}
		return nil, err
	}

	s.logger.Info("Created application with id ", application.ID, " for formation ", application.FormationID)
	return s.GetByID(ctx, application.ID)
}

// Update edits a draft of the student
func (s *applicationService) Update(ctx context.Context, applicationID, studentID string, input applications.UpdateInput) (*applications.Application, error) {
	if err := input.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}

	application, err := s.owned(ctx, applicationID, studentID)
	if err != nil {
		return nil, err
	}
	if !application.Status.Editable() {
		return nil, fmt.Errorf("%w: a %s application cannot be edited", applications.ErrInvalidTransition, application.Status)
	}

	input.Apply(application)
	application.UpdatedAt = s.now()

	if err := s.applicationRepo.UpdateByID(ctx, application); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, applicationID)
}

// Submit sends a draft of the student for review
func (s *applicationService) Submit(ctx context.Context, applicationID, studentID string) (*applications.Application, error) {
	application, err := s.owned(ctx, applicationID, studentID)
	if err != nil {
		return nil, err
	}
	if err := application.Submit(s.now()); err != nil {
		return nil, err
	}
	if err := s.applicationRepo.UpdateByID(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info("Submitted application with id ", applicationID)
	return s.GetByID(ctx, applicationID)
}

// UpdateStatus applies a reviewer decision and notifies the student
func (s *applicationService) UpdateStatus(ctx context.Context, applicationID, reviewerID string, status applications.Status, notes string) (*applications.Application, error) {
	if !status.Valid() {
		return nil, shared.Invalid(fmt.Errorf("unknown status %q", status))
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if err := application.Review(status, reviewerID, notes, s.now()); err != nil {
		return nil, err
	}
	if err := s.applicationRepo.UpdateByID(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info("Set status ", status, " on application with id ", applicationID, " by reviewer ", reviewerID)

	if _, err := s.notificationService.Create(ctx, statusNotification(application)); err != nil {
		s.logger.Error("Failed to notify student of update on application ", applicationID, ": ", err)
	}

	return s.GetByID(ctx, applicationID)
}

// DeleteByID withdraws a draft or submitted application of the student
func (s *applicationService) DeleteByID(ctx context.Context, applicationID, studentID string) error {
	application, err := s.owned(ctx, applicationID, studentID)
	if err != nil {
		return err
	}
	if !application.Status.Deletable() {
		return fmt.Errorf("%w: a %s application cannot be deleted", applications.ErrInvalidTransition, application.Status)
	}
	if err := s.applicationRepo.DeleteByID(ctx, applicationID); err != nil {
		return err
	}

	s.logger.Info("Deleted application with id ", applicationID)
	return nil
}

// StudentStats counts the applications of a student per status
func (s *applicationService) StudentStats(ctx context.Context, studentID string) (*applications.Stats, error) {
	counts, err := s.applicationRepo.CountByStatus(ctx, studentID, "")
	if err != nil {
		return nil, err
	}

	stats := &applications.Stats{}
	for status, n := range counts {
		stats.Add(status, n)
	}
	return stats, nil
}

// FormationStats counts the applications to a formation per status. Drafts are not counted.
func (s *applicationService) FormationStats(ctx context.Context, formationID string) (*applications.Stats, error) {
	if _, err := s.formationRepo.GetByID(ctx, formationID); err != nil {
		return nil, err
	}

	counts, err := s.applicationRepo.CountByStatus(ctx, "", formationID)
	if err != nil {
		return nil, err
	}

	stats := &applications.Stats{}
	for status, n := range counts {
		if status == applications.StatusDraft {
			continue
		}
		stats.Add(status, n)
	}
	return stats, nil
}

// CanApply tells whether the student may apply to the formation
func (s *applicationService) CanApply(ctx context.Context, studentID, formationID string) (*applications.Eligibility, error) {
	exists, err := s.applicationRepo.Exists(ctx, studentID, formationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return &applications.Eligibility{Reason: applications.ReasonAlreadyApplied}, nil
	}

	formation, err := s.formationRepo.GetByID(ctx, formationID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &applications.Eligibility{Reason: applications.ReasonFormationNotFound}, nil
		}
		return nil, err
	}

	switch {
	case !formation.IsActive:
		return &applications.Eligibility{Reason: applications.ReasonFormationInactive}, nil
	case formation.AvailablePlaces <= 0:
		return &applications.Eligibility{Reason: applications.ReasonNoAvailablePlaces}, nil
	case formation.DeadlinePassed(s.now()):
		return &applications.Eligibility{Reason: applications.ReasonDeadlinePassed}, nil
	}
	return &applications.Eligibility{CanApply: true}, nil
}

// AttachDocument stores a supporting document and links it to a draft of the student
func (s *applicationService) AttachDocument(ctx context.Context, applicationID, studentID string, file *multipart.FileHeader) (*documents.Document, error) {
	if s.documentService == nil {
		return nil, ErrDocumentsDisabled
	}

	application, err := s.owned(ctx, applicationID, studentID)
	if err != nil {
		return nil, err
	}
	if !application.Status.Editable() {
		return nil, fmt.Errorf("%w: documents can only be attached to drafts", applications.ErrInvalidTransition)
	}

	document, err := s.documentService.Upload(ctx, studentID, applicationID, file)
	if err != nil {
		return nil, err
	}

	application.AdditionalDocuments = append(application.AdditionalDocuments, document.ID)
	application.UpdatedAt = s.now()
	if err := s.applicationRepo.UpdateByID(ctx, application); err != nil {
		if delErr := s.documentService.DeleteByID(ctx, document.ID, studentID); delErr != nil {
			s.logger.Error("Failed to remove orphan document ", document.ID, ": ", delErr)
		}
		return nil, err
	}

	s.logger.Info("Attached document ", document.ID, " to application ", applicationID)
	return document, nil
}

func (s *applicationService) owned(ctx context.Context, applicationID, studentID string) (*applications.Application, error) {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.StudentID != studentID {
		return nil, shared.Forbidden("application belongs to another student")
	}
	return application, nil
}

func (s *applicationService) embedStudents(ctx context.Context, applicationList ...*applications.Application) error {
	if len(applicationList) == 0 {
		return nil
	}

	ids := make([]string, 0, len(applicationList))
	for _, a := range applicationList {
		ids = append(ids, a.StudentID)
	}
	summaries, err := s.profileRepo.Summaries(ctx, ids)
	if err != nil {
		return err
	}
	for _, a := range applicationList {
		a.Student = summaries[a.StudentID]
	}
	return nil
}

func statusNotification(application *applications.Application) notifications.CreateInput {
	formationName := "votre formation"
	if application.Formation != nil {
		formationName = application.Formation.Name
	}

	priority := notifications.PriorityMedium
	if application.Status.Terminal() {
		priority = notifications.PriorityHigh
	}

	return notifications.CreateInput{
		UserID:    application.StudentID,
		Type:      notifications.TypeApplicationUpdate,
		Title:     "Mise à jour de candidature",
		Message:   fmt.Sprintf("Votre candidature pour \"%s\" est %s", formationName, statusLabels[application.Status]),
		Priority:  priority,
		ActionURL: "/applications/" + application.ID,
		RelatedID: application.ID,
	}
}
