package apperrors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/monocle-dev/huddle/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

type echoLocalizer struct{}

func (echoLocalizer) T(msgID string, data map[string]any) string {
	if project, ok := data["Project"]; ok {
		return msgID + ":" + project.(string)
	}
	return msgID
}

func TestResponse(t *testing.T) {
	code, body := apperrors.Response(apperrors.NotFound(apperrors.MsgProjectNotFound, map[string]any{"Project": "capstone"}), echoLocalizer{})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, http.StatusNotFound, body.ErrDetails.Code)
	assert.Equal(t, "projectNotFound:capstone", body.ErrDetails.Message)

	code, body = apperrors.Response(errors.New("boom"), echoLocalizer{})
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, apperrors.MsgStorageFailure, body.ErrDetails.Message)
}

func TestCreateError(t *testing.T) {
	err := apperrors.CreateError(http.StatusBadRequest, apperrors.MsgInvalidRequest, echoLocalizer{})

	assert.Equal(t, "Code: 400, Message: invalidRequest", err.Error())
}
