package v1

import (
	"net/http"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler defines the interface for handling application operations
type ApplicationHandler interface {
	ListMine(ctx *gin.Context)
	ListByFormation(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Submit(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	MyStats(ctx *gin.Context)
	FormationStats(ctx *gin.Context)
	CanApply(ctx *gin.Context)
	AttachDocument(ctx *gin.Context)
}

type applicationHandler struct {
	applicationService applications.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(applicationService applications.ApplicationService) ApplicationHandler {
	return &applicationHandler{applicationService: applicationService}
}

// ListMine returns the applications of the signed in student, newest first
// @Summary Own applications
// @Tags Application
// @Produce json
// @Success 200 {array} ApplicationResponse
// @Router /applications [get]
func (handler *applicationHandler) ListMine(ctx *gin.Context) {
	list, err := handler.applicationService.ListByStudent(ctx.Request.Context(), currentIdentity(ctx).UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapList(list, toApplicationResponse))
}

// ListByFormation returns the submitted applications of a formation
// @Summary Applications received by a formation
// @Tags Application
// @Produce json
// @Param id path string true "Formation ID"
// @Success 200 {array} ApplicationResponse
// @Router /formations/{id}/applications [get]
func (handler *applicationHandler) ListByFormation(ctx *gin.Context) {
	list, err := handler.applicationService.ListByFormation(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapList(list, toApplicationResponse))
}

// GetByID fetches an application. Its student may always read it, reviewers once it is submitted.
// @Summary Get an application
// @Tags Application
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} ApplicationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /applications/{id} [get]
func (handler *applicationHandler) GetByID(ctx *gin.Context) {
	application, err := handler.applicationService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	identity := currentIdentity(ctx)
	if application.StudentID != identity.UserID {
		// drafts are private to their student
		if application.Status == applications.StatusDraft {
			respondError(ctx, shared.NotFound("application", application.ID))
			return
		}
		if !identity.UserType.IsReviewer() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "forbidden: not your application"})
			return
		}
	}
	ctx.JSON(http.StatusOK, toApplicationResponse(application))
}

// Create opens a draft application for the signed in student
// @Summary Create a draft application
// @Tags Application
// @Accept json
// @Produce json
// @Param requestBody body CreateApplicationRequest true "Application"
// @Success 201 {object} ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /applications [post]
func (handler *applicationHandler) Create(ctx *gin.Context) {
	var request CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid application data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	application, err := handler.applicationService.Create(ctx.Request.Context(), currentIdentity(ctx).UserID, request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toApplicationResponse(application))
}

// Update edits a draft application
// @Summary Edit a draft application
// @Tags Application
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param requestBody body UpdateApplicationRequest true "Fields to change"
// @Success 200 {object} ApplicationResponse
// @Failure 409 {object} ErrorResponse
// @Router /applications/{id} [patch]
func (handler *applicationHandler) Update(ctx *gin.Context) {
	var request UpdateApplicationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid application data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	application, err := handler.applicationService.Update(ctx.Request.Context(), ctx.Param("id"), currentIdentity(ctx).UserID, request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toApplicationResponse(application))
}

// Submit sends a draft application to the formation
// @Summary Submit an application
// @Tags Application
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} ApplicationResponse
// @Failure 409 {object} ErrorResponse
// @Router /applications/{id}/submit [post]
func (handler *applicationHandler) Submit(ctx *gin.Context) {
	application, err := handler.applicationService.Submit(ctx.Request.Context(), ctx.Param("id"), currentIdentity(ctx).UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toApplicationResponse(application))
}

// UpdateStatus records a reviewer decision
// @Summary Review an application
// @Tags Application
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param requestBody body UpdateStatusRequest true "Decision"
// @Success 200 {object} ApplicationResponse
// @Failure 409 {object} ErrorResponse
// @Router /applications/{id}/status [put]
func (handler *applicationHandler) UpdateStatus(ctx *gin.Context) {
	var request UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid status data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	application, err := handler.applicationService.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), currentIdentity(ctx).UserID, applications.Status(request.Status), request.Notes)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toApplicationResponse(application))
}

// DeleteByID withdraws a draft or submitted application
// @Summary Withdraw an application
// @Tags Application
// @Param id path string true "Application ID"
// @Success 204
// @Failure 409 {object} ErrorResponse
// @Router /applications/{id} [delete]
func (handler *applicationHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.applicationService.DeleteByID(ctx.Request.Context(), ctx.Param("id"), currentIdentity(ctx).UserID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// MyStats counts the applications of the signed in student per status
// @Summary Own application statistics
// @Tags Application
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /applications/stats [get]
func (handler *applicationHandler) MyStats(ctx *gin.Context) {
	stats, err := handler.applicationService.StudentStats(ctx.Request.Context(), currentIdentity(ctx).UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toStatsResponse(stats))
}

// FormationStats counts the submitted applications of a formation per status
// @Summary Formation application statistics
// @Tags Application
// @Produce json
// @Param id path string true "Formation ID"
// @Success 200 {object} StatsResponse
// @Failure 404 {object} ErrorResponse
// @Router /formations/{id}/stats [get]
func (handler *applicationHandler) FormationStats(ctx *gin.Context) {
	stats, err := handler.applicationService.FormationStats(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toStatsResponse(stats))
}

// CanApply tells whether the signed in student may apply to a formation
// @Summary Application eligibility
// @Tags Application
// @Produce json
// @Param formation_id query string true "Formation ID"
// @Success 200 {object} EligibilityResponse
// @Failure 400 {object} ErrorResponse
// @Router /applications/eligibility [get]
func (handler *applicationHandler) CanApply(ctx *gin.Context) {
	formationID := ctx.Query("formation_id")
	if formationID == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: "formation_id is required"})
		return
	}

	eligibility, err := handler.applicationService.CanApply(ctx.Request.Context(), currentIdentity(ctx).UserID, formationID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, EligibilityResponse{CanApply: eligibility.CanApply, Reason: eligibility.Reason})
}

// AttachDocument uploads a supporting document to a draft application
// @Summary Attach a document
// @Tags Application
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Application ID"
// @Param file formData file true "Document"
// @Success 201 {object} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /applications/{id}/documents [post]
func (handler *applicationHandler) AttachDocument(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		respondBadRequest(ctx, "invalid form data", err)
		return
	}

	document, err := handler.applicationService.AttachDocument(ctx.Request.Context(), ctx.Param("id"), currentIdentity(ctx).UserID, file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toDocumentResponse(document))
}
