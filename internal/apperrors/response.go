package apperrors

import "fmt"

type Localizer interface {
	T(msgID string, data map[string]any) string
}

// JSONErr is the body of every failed HTTP response.
type JSONErr struct {
	ErrDetails Err `json:"error"`
}

type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e JSONErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

func CreateError(code int, msgKey string, tr Localizer) JSONErr {
	return JSONErr{ErrDetails: Err{Code: code, Message: tr.T(msgKey, nil)}}
}

// Response maps err to its status and localized body.
func Response(err error, tr Localizer) (int, JSONErr) {
	appErr := As(err)
	code := HTTPStatus(appErr.Kind)
	return code, JSONErr{ErrDetails: Err{Code: code, Message: tr.T(appErr.MsgKey, appErr.Data)}}
}
