package errors

var (
	ErrUnknown         = New(ERR_UNKNOWN, "unknown error")
	ErrInvalidArgument = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrNotFound        = New(ERR_NOT_FOUND, "not found")
	ErrProcessing      = New(ERR_PROCESSING, "error processing")
	ErrConfiguration   = New(ERR_CONFIGURATION, "configuration error")
	ErrTxInvalid       = New(ERR_TX_INVALID, "tx invalid")
	ErrScriptInvalid   = New(ERR_SCRIPT_INVALID, "script invalid")
	ErrPayloadInvalid  = New(ERR_PAYLOAD_INVALID, "payload invalid")
	ErrServiceError    = New(ERR_SERVICE_ERROR, "service error")
)

func NewUnknownError(message string, params ...interface{}) error {
	return New(ERR_UNKNOWN, message, params...)
}

func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}

func NewNotFoundError(message string, params ...interface{}) error {
	return New(ERR_NOT_FOUND, message, params...)
}

func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}

func NewConfigurationError(message string, params ...interface{}) error {
	return New(ERR_CONFIGURATION, message, params...)
}

func NewTxInvalidError(message string, params ...interface{}) error {
	return New(ERR_TX_INVALID, message, params...)
}

func NewScriptInvalidError(message string, params ...interface{}) error {
	return New(ERR_SCRIPT_INVALID, message, params...)
}

func NewPayloadInvalidError(message string, params ...interface{}) error {
	return New(ERR_PAYLOAD_INVALID, message, params...)
}

func NewServiceError(message string, params ...interface{}) error {
	return New(ERR_SERVICE_ERROR, message, params...)
}
