package identity

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/monocle-dev/huddle/db"
	"github.com/monocle-dev/huddle/internal/apperrors"
	"github.com/monocle-dev/huddle/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	gdb, err := db.ConnectSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.MigrateDatabase(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	svc := NewService(store.NewUsers(gdb), zap.NewNop())
	svc.cost = bcrypt.MinCost
	return svc
}

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	registered, err := svc.Register(ctx, " Kim ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Kim", registered.Name)
	assert.Len(t, registered.ID, 36)

	authed, err := svc.Authenticate(ctx, "Kim", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, registered, authed)

	looked, err := svc.Lookup(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered, looked)
}

func TestRegister_Rejects(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	_, err := svc.Register(ctx, "   ", "s3cret")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = svc.Register(ctx, "Kim", "")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = svc.Register(ctx, "Kim", strings.Repeat("x", 73))
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Equal(t, apperrors.MsgSecretTooLong, apperrors.As(err).MsgKey)

	_, err = svc.Register(ctx, "Kim", "s3cret")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Kim", "other")
	assert.Equal(t, apperrors.KindDuplicate, apperrors.KindOf(err))
}

func TestAuthenticate_Fails(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)
	_, err := svc.Register(ctx, "Kim", "s3cret")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "Kim", "wrong")
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(err))

	_, err = svc.Authenticate(ctx, "Lee", "s3cret")
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(err))
	assert.Equal(t, apperrors.MsgInvalidCredentials, apperrors.As(err).MsgKey)
}

func TestTokens_RoundTrip(t *testing.T) {
	tokens, err := NewTokens("test-secret", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, tokens.TTL())

	token, err := tokens.Issue(Identity{ID: "u-1", Name: "Kim"})
	require.NoError(t, err)

	got, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, Identity{ID: "u-1", Name: "Kim"}, got)
}

func TestTokens_Rejects(t *testing.T) {
	_, err := NewTokens("", time.Hour)
	require.Error(t, err)

	tokens, err := NewTokens("test-secret", time.Hour)
	require.NoError(t, err)
	other, err := NewTokens("another-secret", time.Hour)
	require.NoError(t, err)

	forged, err := other.Issue(Identity{ID: "u-1", Name: "Kim"})
	require.NoError(t, err)
	_, err = tokens.Verify(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	issued, err := tokens.Issue(Identity{ID: "u-1", Name: "Kim"})
	require.NoError(t, err)
	tokens.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = tokens.Verify(issued)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
