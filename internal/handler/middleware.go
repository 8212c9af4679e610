package handler

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/auth"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/logger"
	"github.com/pesio-ai/be-hotel-bookings/internal/service"
)

const (
	ctxKeySub  = "sub"
	ctxKeyRole = "role"
)

// JWTAuth rejects requests without a valid Bearer token and stores the
// caller's identity on the gin context.
func JWTAuth(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			abortWithError(c, errors.Unauthorized("missing bearer token"))
			return
		}
		claims, err := verifier.ParseValidate(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			abortWithError(c, errors.Unauthorized("invalid token"))
			return
		}
		c.Set(ctxKeySub, claims.Sub)
		c.Set(ctxKeyRole, claims.Role)
		c.Request = c.Request.WithContext(auth.WithClaims(c.Request.Context(), claims))
		c.Next()
	}
}

// RequireRole admits only callers holding one of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := c.GetString(ctxKeyRole)
		if _, ok := allowed[role]; !ok {
			abortWithError(c, errors.Forbidden("insufficient role"))
			return
		}
		c.Next()
	}
}

// RequestLogger logs one line per request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ev := log.Info()
		if status >= 500 {
			ev = log.Error()
		} else if status >= 400 {
			ev = log.Warn()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", c.GetString(ctxKeySub)).
			Msg("HTTP request")
	}
}

func actorFrom(c *gin.Context) service.Actor {
	return service.Actor{ID: c.GetString(ctxKeySub), Role: c.GetString(ctxKeyRole)}
}

// CORS allows the given origins. A single "*" allows any origin.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
