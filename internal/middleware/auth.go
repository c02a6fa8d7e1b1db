package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/huddle/internal/apperrors"
	"github.com/monocle-dev/huddle/internal/identity"
	"github.com/monocle-dev/huddle/internal/types"
	"go.uber.org/zap"
)

type TokenVerifier interface {
	Verify(token string) (identity.Identity, error)
}

type UserLookup interface {
	Lookup(ctx context.Context, id string) (identity.Identity, error)
}

// AuthMiddleware accepts a Bearer header, then the token query parameter,
// then the token cookie. The user must still exist.
func AuthMiddleware(tokens TokenVerifier, users UserLookup, tr apperrors.Localizer) gin.HandlerFunc {
	unauthorized := func(ctx *gin.Context) {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized,
			apperrors.CreateError(http.StatusUnauthorized, apperrors.MsgUnauthorized, tr))
	}

	return func(ctx *gin.Context) {
		tokenString, ok := extractToken(ctx)
		if !ok {
			unauthorized(ctx)
			return
		}

		claimed, err := tokens.Verify(tokenString)
		if err != nil {
			unauthorized(ctx)
			return
		}

		user, err := users.Lookup(ctx.Request.Context(), claimed.ID)
		if err != nil {
			if !apperrors.Is(err, apperrors.KindNotFound) {
				zap.L().Error("failed to load authenticated user", zap.String("user_id", claimed.ID), zap.Error(err))
				code, body := apperrors.Response(err, tr)
				ctx.AbortWithStatusJSON(code, body)
				return
			}
			unauthorized(ctx)
			return
		}

		ctx.Set(types.ContextUserKey, user)
		ctx.Next()
	}
}

func extractToken(ctx *gin.Context) (string, bool) {
	if authHeader := ctx.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}

	if token := ctx.Query(types.TokenQueryParam); token != "" {
		return token, true
	}

	if token, err := ctx.Cookie(types.TokenCookieName); err == nil && token != "" {
		return token, true
	}

	return "", false
}
