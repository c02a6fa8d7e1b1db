package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/huddle/internal/identity"
	"github.com/monocle-dev/huddle/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (identity.Identity, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return identity.Identity{}, fmt.Errorf("User not authenticated")
	}

	authenticatedUser, ok := user.(identity.Identity)

	if !ok {
		return identity.Identity{}, fmt.Errorf("Invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (string, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return "", err
	}

	return user.ID, nil
}
