package apperrors

// Message keys double as translator message IDs.
const (
	MsgMissingFields      = "missingFields"
	MsgBadDate            = "badDate"
	MsgBadTime            = "badTime"
	MsgEmptyName          = "emptyName"
	MsgInvalidRequest     = "invalidRequest"
	MsgProjectNotFound    = "projectNotFound"
	MsgTaskNotFound       = "taskNotFound"
	MsgScheduleNotFound   = "scheduleNotFound"
	MsgUserNotFound       = "userNotFound"
	MsgDuplicateName      = "duplicateName"
	MsgInvalidCredentials = "invalidCredentials"
	MsgSecretTooLong      = "secretTooLong"
	MsgUnauthorized       = "unauthorized"
	MsgStorageFailure     = "storageFailure"
	MsgConflict           = "conflict"
)
