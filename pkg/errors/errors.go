// Package errors defines the application error taxonomy and its HTTP mapping.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode is a stable machine-readable error code.
type ErrorCode string

const (
	// generic (1xxx)
	CodeSuccess            ErrorCode = "0"
	CodeUnknown            ErrorCode = "1000"
	CodeInvalidParam       ErrorCode = "1001"
	CodeUnauthorized       ErrorCode = "1002"
	CodeNotFound           ErrorCode = "1004"
	CodeTooManyRequests    ErrorCode = "1006"
	CodeInternalError      ErrorCode = "1007"
	CodeServiceUnavailable ErrorCode = "1008"
	CodeTimeout            ErrorCode = "1009"

	// configuration (2xxx)
	CodeConfigMissing ErrorCode = "2001"

	// provider and generation (4xxx)
	CodeProviderRejected  ErrorCode = "4001"
	CodeProviderFailed    ErrorCode = "4002"
	CodeMalformedResponse ErrorCode = "4003"
	CodeEmptyResult       ErrorCode = "4004"
	CodeAssetFetchFailed  ErrorCode = "4005"

	// webhook (6xxx)
	CodeSignatureInvalid ErrorCode = "6001"

	// external services (5xxx)
	CodeStorageError ErrorCode = "5004"
)

// AppError is an error carrying a code, a caller-safe message and the underlying cause.
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error implements error.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail attaches internal detail that is logged but never returned to callers.
func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail
	return e
}

// WithError attaches the underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// Public reports whether the message is safe and useful to show to the caller as-is.
func (e *AppError) Public() bool {
	switch e.Code {
	case CodeInvalidParam, CodeUnauthorized, CodeNotFound, CodeTooManyRequests,
		CodeProviderRejected, CodeEmptyResult, CodeAssetFetchFailed, CodeSignatureInvalid,
		CodeServiceUnavailable, CodeTimeout:
		return true
	default:
		return false
	}
}

// New creates an AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap creates an AppError around err.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam, CodeProviderRejected, CodeAssetFetchFailed:
		return http.StatusBadRequest
	case CodeUnauthorized, CodeSignatureInvalid:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Validation returns a ValidationError for a missing or blank request field.
func Validation(message string) *AppError {
	return New(CodeInvalidParam, message)
}

// ConfigMissing returns a ConfigurationError for an absent provider credential.
func ConfigMissing(setting string) *AppError {
	return New(CodeConfigMissing, "service is not configured").
		WithDetail(setting + " is not set")
}

// ProviderRejected returns a ProviderError attributable to the caller's content.
func ProviderRejected(provider string, err error) *AppError {
	return Wrap(err, CodeProviderRejected,
		"the request was rejected by the "+provider+" content policy, try rephrasing the prompt")
}

// ProviderInvalidRequest returns a ProviderError for a request the provider refused as invalid.
func ProviderInvalidRequest(provider string, err error) *AppError {
	return Wrap(err, CodeProviderRejected, "the request was rejected by "+provider)
}

// ProviderFailed returns a ProviderError caused by transport or provider-side failure.
func ProviderFailed(provider string, err error) *AppError {
	return Wrap(err, CodeProviderFailed, provider+" request failed")
}

// Malformed returns a MalformedResponseError. raw is kept as detail for logging only.
func Malformed(what string, err error, raw string) *AppError {
	return Wrap(err, CodeMalformedResponse, "malformed "+what+" response").WithDetail(raw)
}

// EmptyResult returns an EmptyResultError naming the likely prompt-quality cause.
func EmptyResult(message string) *AppError {
	return New(CodeEmptyResult, message)
}

// IsCode reports whether err is an AppError with the given code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsAppError reports whether err is or wraps an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts err to an AppError, wrapping unknown errors as internal.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeUnknown, "unknown error")
}
