package v1

import (
	"net/http"

	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ProfileHandler defines the interface for handling profile operations
type ProfileHandler interface {
	GetMine(ctx *gin.Context)
	UpdateMine(ctx *gin.Context)
	GetByUserID(ctx *gin.Context)
	Search(ctx *gin.Context)
}

type profileHandler struct {
	profileService users.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService users.ProfileService) ProfileHandler {
	return &profileHandler{profileService: profileService}
}

// GetMine returns the profile of the signed in user
// @Summary Own profile
// @Tags Profile
// @Produce json
// @Success 200 {object} ProfileResponse
// @Router /profile [get]
func (handler *profileHandler) GetMine(ctx *gin.Context) {
	profile, err := handler.profileService.GetByUserID(ctx.Request.Context(), currentIdentity(ctx).UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toProfileResponse(profile))
}

// UpdateMine applies a partial update to the profile of the signed in user
// @Summary Update own profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param requestBody body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Router /profile [patch]
func (handler *profileHandler) UpdateMine(ctx *gin.Context) {
	var request UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid profile data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	profile, err := handler.profileService.UpdateByUserID(ctx.Request.Context(), currentIdentity(ctx).UserID, request.ToUpdate())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toProfileResponse(profile))
}

// GetByUserID returns the public summary of another user
// @Summary Profile summary of a user
// @Tags Profile
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} ProfileSummaryResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userId} [get]
func (handler *profileHandler) GetByUserID(ctx *gin.Context) {
	profile, err := handler.profileService.GetByUserID(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toProfileSummaryResponse(profile.Summary()))
}

// Search finds users by first or last name, excluding the caller
// @Summary Search users
// @Tags Profile
// @Produce json
// @Param q query string true "Name fragment"
// @Param exclude query string false "Comma separated user ids to leave out"
// @Param limit query int false "Maximum results"
// @Success 200 {array} ProfileSummaryResponse
// @Router /users/search [get]
func (handler *profileHandler) Search(ctx *gin.Context) {
	exclude := append(utils.SplitCSV(ctx.Query("exclude")), currentIdentity(ctx).UserID)
	limit := utils.ConvertToInt(ctx.Query("limit"))

	summaries, err := handler.profileService.SearchUsers(ctx.Request.Context(), ctx.Query("q"), exclude, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapList(summaries, toProfileSummaryResponse))
}
