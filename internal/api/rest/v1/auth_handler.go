package v1

import (
	"net/http"

	"github.com/Tsilavina4274/odyssea/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for handling authentication operations
type AuthHandler interface {
	SignUp(ctx *gin.Context)
	SignIn(ctx *gin.Context)
	GetSession(ctx *gin.Context)
	SignOut(ctx *gin.Context)
	UpdatePassword(ctx *gin.Context)
	RequestPasswordReset(ctx *gin.Context)
	ConfirmPasswordReset(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService) AuthHandler {
	return &authHandler{authService: authService}
}

// SignUp registers a new account
// @Summary Register a student or establishment account
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body SignUpRequest true "Registration form"
// @Success 201 {object} SignUpResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/signup [post]
func (handler *authHandler) SignUp(ctx *gin.Context) {
	var request SignUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid sign up data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	user, profile, err := handler.authService.SignUp(ctx.Request.Context(), request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, SignUpResponse{
		User:    toUserResponse(user),
		Profile: toProfileResponse(profile),
	})
}

// SignIn opens a session
// @Summary Sign in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body SignInRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/signin [post]
func (handler *authHandler) SignIn(ctx *gin.Context) {
	var request SignInRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid credentials data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	session, err := handler.authService.SignIn(ctx.Request.Context(), request.Email, request.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toSessionResponse(session))
}

// GetSession returns the session of the bearer token
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/session [get]
func (handler *authHandler) GetSession(ctx *gin.Context) {
	session, err := handler.authService.GetSession(ctx.Request.Context(), currentAccessToken(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toSessionResponse(session))
}

// SignOut revokes the bearer token
// @Summary Sign out
// @Tags Auth
// @Success 204
// @Router /auth/signout [post]
func (handler *authHandler) SignOut(ctx *gin.Context) {
	if err := handler.authService.SignOut(ctx.Request.Context(), currentAccessToken(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// UpdatePassword changes the password of the signed in user
// @Summary Change password
// @Tags Auth
// @Accept json
// @Param requestBody body UpdatePasswordRequest true "Current and new password"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/password [put]
func (handler *authHandler) UpdatePassword(ctx *gin.Context) {
	var request UpdatePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid password data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	identity := currentIdentity(ctx)
	if err := handler.authService.UpdatePassword(ctx.Request.Context(), identity.UserID, request.CurrentPassword, request.NewPassword); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// RequestPasswordReset mails a reset link. The answer is the same whether the account exists or not.
// @Summary Request a password reset link
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body PasswordResetRequest true "Account email"
// @Success 202 {object} InfoResponse
// @Router /auth/password/reset [post]
func (handler *authHandler) RequestPasswordReset(ctx *gin.Context) {
	var request PasswordResetRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid reset data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	if err := handler.authService.RequestPasswordReset(ctx.Request.Context(), request.Email); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, InfoResponse{Message: "if the account exists, a reset link has been sent"})
}

// ConfirmPasswordReset sets a new password from a reset token
// @Summary Confirm a password reset
// @Tags Auth
// @Accept json
// @Param requestBody body PasswordResetConfirmRequest true "Reset token and new password"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/password/reset/confirm [post]
func (handler *authHandler) ConfirmPasswordReset(ctx *gin.Context) {
	var request PasswordResetConfirmRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid reset data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	if err := handler.authService.ConfirmPasswordReset(ctx.Request.Context(), request.Token, request.NewPassword); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
