package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/huddle/internal/apperrors"
	"github.com/monocle-dev/huddle/internal/identity"
	"github.com/monocle-dev/huddle/internal/types"
	"github.com/monocle-dev/huddle/internal/utils"
	"go.uber.org/zap"
)

type CredentialsRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) CreateUser(ctx *gin.Context) {
	var body CredentialsRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx)
		return
	}

	user, err := h.Identity.Register(ctx.Request.Context(), body.Name, body.Password)

	if err != nil {
		h.fail(ctx, err)
		return
	}

	h.respondWithToken(ctx, http.StatusCreated, user)
}

func (h *Handler) LoginUser(ctx *gin.Context) {
	var body CredentialsRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx)
		return
	}

	user, err := h.Identity.Authenticate(ctx.Request.Context(), body.Name, body.Password)

	if err != nil {
		h.fail(ctx, err)
		return
	}

	h.respondWithToken(ctx, http.StatusOK, user)
}

func (h *Handler) Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		h.fail(ctx, apperrors.Auth(apperrors.MsgUnauthorized))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{ID: currentUser.ID, Name: currentUser.Name},
	})
}

func (h *Handler) LogoutUser(ctx *gin.Context) {
	h.setTokenCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) respondWithToken(ctx *gin.Context, status int, user identity.Identity) {
	token, err := h.Tokens.Issue(user)

	if err != nil {
		h.Logger.Error("failed to generate JWT", zap.String("user_id", user.ID), zap.Error(err))
		h.fail(ctx, err)
		return
	}

	h.setTokenCookie(ctx, token, int(h.Tokens.TTL().Seconds()))

	ctx.JSON(status, types.AuthResponse{
		User:  types.UserResponse{ID: user.ID, Name: user.Name},
		Token: token,
	})
}

func (h *Handler) setTokenCookie(ctx *gin.Context, value string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     types.TokenCookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.Domain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}
