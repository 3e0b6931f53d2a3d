package result

import "net/http"

// ErrorCode identifies a failure kind. Codes are stable wire values;
// handlers translate them to HTTP statuses through StatusFor.
type ErrorCode string

const (
	ServerError          ErrorCode = "SERVER_ERROR"
	BadRequest           ErrorCode = "BAD_REQUEST"
	Unauthorized         ErrorCode = "UNAUTHORIZED"
	Forbidden            ErrorCode = "FORBIDDEN"
	NotFound             ErrorCode = "NOT_FOUND"
	Conflict             ErrorCode = "CONFLICT"
	UserNotFound         ErrorCode = "USER_NOT_FOUND"
	MethodNotAllowed     ErrorCode = "METHOD_NOT_ALLOWED"
	UnsupportedMediaType ErrorCode = "UNSUPPORTED_MEDIA_TYPE"
	Timeout              ErrorCode = "TIMEOUT"
	RateLimitExceeded    ErrorCode = "RATE_LIMIT_EXCEEDED"
	ServiceUnavailable   ErrorCode = "SERVICE_UNAVAILABLE"
	MissingRequiredField ErrorCode = "MISSING_REQUIRED_FIELD"
	InvalidCredentials   ErrorCode = "INVALID_CREDENTIALS"
	SessionExpired       ErrorCode = "SESSION_EXPIRED"
	PasswordTooWeak      ErrorCode = "PASSWORD_TOO_WEAK"
	DBConnectionError    ErrorCode = "DB_CONNECTION_ERROR"
	FileTooLarge         ErrorCode = "FILE_TOO_LARGE"
	InternalError        ErrorCode = "INTERNAL_ERROR"
	InvalidToken         ErrorCode = "INVALID_TOKEN"
	TokenNotProvided     ErrorCode = "TOKEN_NOT_PROVIDED"
	EmailExists          ErrorCode = "EMAIL_EXISTS"
	ValidationError      ErrorCode = "VALIDATION_ERROR"
)

// StatusSessionExpired has no net/http constant; 440 is the de facto
// "login timeout" status popularized by IIS.
const StatusSessionExpired = 440

var statusByCode = map[ErrorCode]int{
	ServerError:          http.StatusInternalServerError,
	BadRequest:           http.StatusBadRequest,
	Unauthorized:         http.StatusUnauthorized,
	Forbidden:            http.StatusForbidden,
	NotFound:             http.StatusNotFound,
	Conflict:             http.StatusConflict,
	UserNotFound:         http.StatusNotFound,
	MethodNotAllowed:     http.StatusMethodNotAllowed,
	UnsupportedMediaType: http.StatusUnsupportedMediaType,
	Timeout:              http.StatusRequestTimeout,
	RateLimitExceeded:    http.StatusTooManyRequests,
	ServiceUnavailable:   http.StatusServiceUnavailable,
	MissingRequiredField: http.StatusUnprocessableEntity,
	InvalidCredentials:   http.StatusUnauthorized,
	SessionExpired:       StatusSessionExpired,
	PasswordTooWeak:      http.StatusBadRequest,
	DBConnectionError:    http.StatusInternalServerError,
	FileTooLarge:         http.StatusRequestEntityTooLarge,
	InternalError:        http.StatusInternalServerError,
	InvalidToken:         http.StatusUnauthorized,
	TokenNotProvided:     http.StatusUnauthorized,
	EmailExists:          http.StatusConflict,
}

// StatusFor maps an error code to its HTTP status. Codes outside the
// table map to 500.
func StatusFor(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Result is the uniform outcome every repository, service, and handler
// boundary exchanges. Exactly one variant is populated: a success carries
// Data, a failure carries Message and Code. Expected failures travel as
// Results, never as Go errors, so callers branch on Success and nothing
// else.
type Result[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data,omitempty"`
	Message string    `json:"message,omitempty"`
	Code    ErrorCode `json:"code,omitempty"`
}

// None is the payload for operations that succeed without data.
type None = struct{}

// Ok creates a success Result carrying data.
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail creates a failure Result carrying a human readable message and a
// machine readable code.
func Fail[T any](message string, code ErrorCode) Result[T] {
	return Result[T]{Success: false, Message: message, Code: code}
}

// Failed reports whether the Result is the failure variant.
func (r Result[T]) Failed() bool {
	return !r.Success
}

// Forward converts a failure into a failure of another payload type,
// preserving message and code. Calling it on a success is a programming
// error and yields a SERVER_ERROR failure.
func Forward[T, U any](r Result[U]) Result[T] {
	if r.Success {
		return Fail[T]("Internal server error", ServerError)
	}
	return Fail[T](r.Message, r.Code)
}
