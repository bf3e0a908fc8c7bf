package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware
const (
	identityKey    = "odyssea.identity"
	accessTokenKey = "odyssea.access_token"
)

// RequestObserver records the outcome of each request
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// AuthMiddleware requires a valid bearer token and stores the identity on the context
func AuthMiddleware(authService users.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}

		identity, err := authService.ValidateToken(ctx.Request.Context(), token)
		if err != nil {
			respondError(ctx, err)
			return
		}

		ctx.Set(identityKey, identity)
		ctx.Set(accessTokenKey, token)
		ctx.Next()
	}
}

// OptionalAuth stores the identity when a bearer token is sent and lets anonymous requests through.
// An invalid token is still rejected.
func OptionalAuth(authService users.AuthService) gin.HandlerFunc {
	required := AuthMiddleware(authService)
	return func(ctx *gin.Context) {
		if ctx.GetHeader("Authorization") == "" {
			ctx.Next()
			return
		}
		required(ctx)
	}
}

// RequireUserType lets through only users of the given types. It runs after AuthMiddleware.
func RequireUserType(allowed ...users.UserType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity := currentIdentity(ctx)
		if identity == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			return
		}
		for _, userType := range allowed {
			if identity.UserType == userType {
				ctx.Next()
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "forbidden: not allowed for " + string(identity.UserType) + " accounts"})
	}
}

// RequestLogger logs each request with its route, status and duration
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	structured := logger.Structured(log)
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		attrs := []any{
			"method", ctx.Request.Method,
			"route", routeOf(ctx),
			"status", ctx.Writer.Status(),
			"duration", time.Since(start),
		}
		if identity := currentIdentity(ctx); identity != nil {
			attrs = append(attrs, "user_id", identity.UserID)
		}

		if len(ctx.Errors) > 0 {
			attrs = append(attrs, "error", ctx.Errors.String())
			structured.Error("request failed", attrs...)
			return
		}
		structured.Info("request handled", attrs...)
	}
}

// Metrics reports every request to observer
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		observer.ObserveRequest(ctx.Request.Method, routeOf(ctx), ctx.Writer.Status(), time.Since(start))
	}
}

// routeOf returns the route template, keeping label cardinality bounded
func routeOf(ctx *gin.Context) string {
	if route := ctx.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func currentIdentity(ctx *gin.Context) *users.Identity {
	value, ok := ctx.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := value.(*users.Identity)
	return identity
}

func currentAccessToken(ctx *gin.Context) string {
	return ctx.GetString(accessTokenKey)
}
