package v1

import (
	"net/http"

	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UniversityHandler defines the interface for handling the university and formation catalogue
type UniversityHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	ListFormations(ctx *gin.Context)
	SearchFormations(ctx *gin.Context)
	GetFormation(ctx *gin.Context)
	CreateFormation(ctx *gin.Context)
	UpdateFormation(ctx *gin.Context)
	FilterOptions(ctx *gin.Context)
}

type universityHandler struct {
	universityService universities.UniversityService
}

// NewUniversityHandler creates a new UniversityHandler
func NewUniversityHandler(universityService universities.UniversityService) UniversityHandler {
	return &universityHandler{universityService: universityService}
}

// List fetches universities optionally with query parameters
// @Summary List universities
// @Tags University
// @Produce json
// @Param city query string false "City"
// @Param type query string false "Public or Privé"
// @Param search query string false "Name or city fragment"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} UniversityResponse
// @Failure 400 {object} ErrorResponse
// @Router /universities [get]
func (handler *universityHandler) List(ctx *gin.Context) {
	query := &universities.UniversityQuery{
		City:   ctx.Query("city"),
		Type:   ctx.Query("type"),
		Search: ctx.Query("search"),
		Limit:  utils.ConvertToInt(ctx.Query("limit")),
		Offset: utils.ConvertToInt(ctx.Query("offset")),
	}
	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	list, err := handler.universityService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapList(list, toUniversityResponse))
}

// GetByID fetches a university
// @Summary Get a university
// @Tags University
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {object} UniversityResponse
// @Failure 404 {object} ErrorResponse
// @Router /universities/{id} [get]
func (handler *universityHandler) GetByID(ctx *gin.Context) {
	university, err := handler.universityService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toUniversityResponse(university))
}

// Create adds a university
// @Summary Create a university
// @Tags University
// @Accept json
// @Produce json
// @Param requestBody body UniversityRequest true "University"
// @Success 201 {object} UniversityResponse
// @Failure 400 {object} ErrorResponse
// @Router /universities [post]
func (handler *universityHandler) Create(ctx *gin.Context) {
	var request UniversityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid university data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	university, err := handler.universityService.Create(ctx.Request.Context(), request.ToDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toUniversityResponse(university))
}

// Update applies a partial update to a university
// @Summary Update a university
// @Tags University
// @Accept json
// @Produce json
// @Param id path string true "University ID"
// @Param requestBody body UpdateUniversityRequest true "Fields to change"
// @Success 200 {object} UniversityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /universities/{id} [patch]
func (handler *universityHandler) Update(ctx *gin.Context) {
	var request UpdateUniversityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid university data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	university, err := handler.universityService.Update(ctx.Request.Context(), ctx.Param("id"), request.ToUpdate())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toUniversityResponse(university))
}

// DeleteByID removes a university and its formations
// @Summary Delete a university
// @Tags University
// @Param id path string true "University ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /universities/{id} [delete]
func (handler *universityHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.universityService.DeleteByID(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListFormations returns the active formations of a university
// @Summary Formations of a university
// @Tags Formation
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {array} FormationResponse
// @Failure 404 {object} ErrorResponse
// @Router /universities/{id}/formations [get]
func (handler *universityHandler) ListFormations(ctx *gin.Context) {
	list, err := handler.universityService.ListFormations(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapList(list, toFormationResponse))
}

// SearchFormations searches active formations
// @Summary Search formations
// @Tags Formation
// @Produce json
// @Param search query string false "Name or description fragment"
// @Param domain query string false "Domain"
// @Param level query string false "Level"
// @Param city query string false "City of the university"
// @Param university_id query string false "University ID"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} FormationResponse
// @Failure 400 {object} ErrorResponse
// @Router /formations [get]
func (handler *universityHandler) SearchFormations(ctx *gin.Context) {
	query := &universities.FormationQuery{
		Search:       ctx.Query("search"),
		Domain:       ctx.Query("domain"),
		Level:        ctx.Query("level"),
		City:         ctx.Query("city"),
		UniversityID: ctx.Query("university_id"),
		Limit:        utils.ConvertToInt(ctx.Query("limit")),
		Offset:       utils.ConvertToInt(ctx.Query("offset")),
	}
	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	list, err := handler.universityService.SearchFormations(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapList(list, toFormationResponse))
}

// GetFormation fetches a formation with its university
// @Summary Get a formation
// @Tags Formation
// @Produce json
// @Param id path string true "Formation ID"
// @Success 200 {object} FormationResponse
// @Failure 404 {object} ErrorResponse
// @Router /formations/{id} [get]
func (handler *universityHandler) GetFormation(ctx *gin.Context) {
	formation, err := handler.universityService.GetFormation(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toFormationResponse(formation))
}

// CreateFormation adds a formation to a university
// @Summary Create a formation
// @Tags Formation
// @Accept json
// @Produce json
// @Param requestBody body FormationRequest true "Formation"
// @Success 201 {object} FormationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /formations [post]
func (handler *universityHandler) CreateFormation(ctx *gin.Context) {
	var request FormationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid formation data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	formation, err := handler.universityService.CreateFormation(ctx.Request.Context(), request.ToDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toFormationResponse(formation))
}

// UpdateFormation applies a partial update to a formation
// @Summary Update a formation
// @Tags Formation
// @Accept json
// @Produce json
// @Param id path string true "Formation ID"
// @Param requestBody body UpdateFormationRequest true "Fields to change"
// @Success 200 {object} FormationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /formations/{id} [patch]
func (handler *universityHandler) UpdateFormation(ctx *gin.Context) {
	var request UpdateFormationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid formation data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	formation, err := handler.universityService.UpdateFormation(ctx.Request.Context(), ctx.Param("id"), request.ToUpdate())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toFormationResponse(formation))
}

// FilterOptions lists the values accepted by the formation filters
// @Summary Formation filter options
// @Tags Formation
// @Produce json
// @Success 200 {object} FilterOptionsResponse
// @Router /formations/filters [get]
func (handler *universityHandler) FilterOptions(ctx *gin.Context) {
	options, err := handler.universityService.FilterOptions(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, FilterOptionsResponse{
		Domains: options.Domains,
		Levels:  options.Levels,
		Cities:  options.Cities,
	})
}
