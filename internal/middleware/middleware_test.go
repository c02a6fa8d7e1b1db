package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/huddle/internal/apperrors"
	"github.com/monocle-dev/huddle/internal/identity"
	"github.com/monocle-dev/huddle/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type keyLocalizer struct{}

func (keyLocalizer) T(msgID string, _ map[string]any) string { return msgID }

type fakeUsers struct {
	users map[string]identity.Identity
	err   error
}

func (f *fakeUsers) Lookup(_ context.Context, id string) (identity.Identity, error) {
	if f.err != nil {
		return identity.Identity{}, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return identity.Identity{}, apperrors.NotFound(apperrors.MsgUserNotFound, nil)
	}
	return user, nil
}

func newEngine(t *testing.T, users *fakeUsers) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := identity.NewTokens("test-secret", 0)
	require.NoError(t, err)
	token, err := tokens.Issue(identity.Identity{ID: "u-1", Name: "Kim"})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", AuthMiddleware(tokens, users, keyLocalizer{}), func(c *gin.Context) {
		user, _ := c.Get(types.ContextUserKey)
		c.JSON(http.StatusOK, user)
	})
	return r, token
}

func TestAuthMiddleware(t *testing.T) {
	users := &fakeUsers{users: map[string]identity.Identity{"u-1": {ID: "u-1", Name: "Kim"}}}
	r, token := newEngine(t, users)

	tests := []struct {
		name   string
		setup  func(req *http.Request)
		status int
	}{
		{"bearer header", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK},
		{"query token", func(req *http.Request) { req.URL.RawQuery = "token=" + token }, http.StatusOK},
		{"cookie", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: types.TokenCookieName, Value: token}) }, http.StatusOK},
		{"missing", func(req *http.Request) {}, http.StatusUnauthorized},
		{"wrong scheme", func(req *http.Request) { req.Header.Set("Authorization", "Basic "+token) }, http.StatusUnauthorized},
		{"garbage", func(req *http.Request) { req.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"id":"u-1","name":"Kim"}`, w.Body.String())
			} else {
				assert.JSONEq(t, `{"error":{"code":401,"message":"unauthorized"}}`, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_DeletedUser(t *testing.T) {
	r, token := newEngine(t, &fakeUsers{users: map[string]identity.Identity{}})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_StorageFailure(t *testing.T) {
	r, token := newEngine(t, &fakeUsers{err: apperrors.Persistence(errors.New("db down"))})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGinZapMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(GinZapMiddleware(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.EqualValues(t, http.StatusInternalServerError, entries[1].ContextMap()["status"])
}
