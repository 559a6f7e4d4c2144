package common

// APIResponse is the envelope every endpoint answers with. Exactly one of
// Data and Error is set.
type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ValidationError points at one rejected request field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorCode string

const (
	ErrCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden       ErrorCode = "FORBIDDEN"
	ErrCodeConflict        ErrorCode = "CONFLICT"
	ErrCodeTooManyRequests ErrorCode = "TOO_MANY_REQUESTS"
	ErrCodeUnavailable     ErrorCode = "SERVICE_UNAVAILABLE"
	ErrCodeInternalServer  ErrorCode = "INTERNAL_SERVER_ERROR"
)

// DeniedMessage is the only thing a caller learns when the access policy refuses a request
const DeniedMessage = "Unauthorized"

func NewSuccessResponse(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

func NewMessageResponse(message string) APIResponse {
	return NewSuccessResponse(MessageResponse{Message: message})
}

func NewErrorResponse(code ErrorCode, message string, details any) APIResponse {
	return APIResponse{
		Success: false,
		Error: &ErrorResponse{
			Code:    string(code),
			Message: message,
			Details: details,
		},
	}
}

// NewValidationResponse reports rejected fields. Details are omitted when there are none.
func NewValidationResponse(message string, fields ...ValidationError) APIResponse {
	var details any
	if len(fields) > 0 {
		details = fields
	}
	return NewErrorResponse(ErrCodeValidation, message, details)
}

// NewDeniedResponse is the policy refusal body
func NewDeniedResponse() APIResponse {
	return NewErrorResponse(ErrCodeForbidden, DeniedMessage, nil)
}
