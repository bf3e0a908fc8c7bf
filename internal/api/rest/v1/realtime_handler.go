package v1

import (
	"context"
	"net/http"

	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"nhooyr.io/websocket"
)

// ConnectionServer runs an accepted websocket connection until it closes
type ConnectionServer interface {
	Serve(ctx context.Context, userID string, conn *websocket.Conn) error
}

// RealtimeHandler defines the interface for the realtime websocket endpoint
type RealtimeHandler interface {
	Connect(ctx *gin.Context)
}

type realtimeHandler struct {
	authService users.AuthService
	server      ConnectionServer
	acceptOpts  websocket.AcceptOptions
	logger      logger.Logger
}

// NewRealtimeHandler creates a new RealtimeHandler
func NewRealtimeHandler(authService users.AuthService, server ConnectionServer, settings config.RealtimeSettings, logger logger.Logger) RealtimeHandler {
	return &realtimeHandler{
		authService: authService,
		server:      server,
		acceptOpts: websocket.AcceptOptions{
			OriginPatterns:     settings.OriginPatterns,
			InsecureSkipVerify: settings.InsecureSkipVerify,
		},
		logger: logger,
	}
}

// Connect upgrades the request to a websocket. Browsers cannot set headers on
// the upgrade, so the access token comes in the token query parameter.
// @Summary Realtime change feed
// @Tags Realtime
// @Param token query string true "Access token"
// @Success 101
// @Failure 401 {object} ErrorResponse
// @Router /realtime [get]
func (handler *realtimeHandler) Connect(ctx *gin.Context) {
	token := ctx.Query("token")
	if token == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing token"})
		return
	}

	identity, err := handler.authService.ValidateToken(ctx.Request.Context(), token)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Set(identityKey, identity)

	opts := handler.acceptOpts
	conn, err := websocket.Accept(ctx.Writer, ctx.Request, &opts)
	if err != nil {
		// Accept has already written the error response
		handler.logger.Warn("websocket upgrade failed for user ", identity.UserID, ": ", err)
		return
	}

	if err := handler.server.Serve(ctx.Request.Context(), identity.UserID, conn); err != nil {
		handler.logger.Warn("realtime connection of user ", identity.UserID, " ended: ", err)
	}
}
