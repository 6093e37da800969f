// Package apierr maps the engine's internal error kinds onto the
// user-visible error envelope {error, kind, details?, retryable}. It is
// built around a fixed Kind taxonomy instead of ad hoc errors.Is/As
// chains against service-layer sentinels.
package apierr

import (
	"errors"
	"net/http"
)

// Kind is one entry in the engine's error taxonomy. It is a
// string, not a Go type, since the taxonomy classifies behavior
// (retryable vs not, which HTTP status) rather than carrying distinct
// payload shapes.
type Kind string

const (
	KindAuthentication  Kind = "AuthenticationError"
	KindAuthorization   Kind = "AuthorizationError"
	KindValidation      Kind = "ValidationError"
	KindNotFound        Kind = "NotFoundError"
	KindConflict        Kind = "ConflictError"
	KindDependencyCycle Kind = "DependencyCycleError"
	KindTimeout         Kind = "TimeoutError"
	KindLLMAuth         Kind = "LLMError.auth"
	KindLLMNetwork      Kind = "LLMError.network"
	KindLLMSDK          Kind = "LLMError.sdk"
	KindSandboxCreate   Kind = "SandboxError.create"
	KindSandboxCommand  Kind = "SandboxError.command"
	KindSandboxDead     Kind = "SandboxError.terminated"
	KindSandboxTimeout  Kind = "SandboxError.unresponsive"
	KindComplianceBlock Kind = "ComplianceBlockError"
	KindRateLimit       Kind = "RateLimitError"
	KindInternal        Kind = "InternalError"
)

var retryable = map[Kind]bool{
	KindTimeout:        true,
	KindLLMNetwork:     true,
	KindSandboxTimeout: true,
	KindRateLimit:      true,
}

var httpStatus = map[Kind]int{
	KindAuthentication:  http.StatusUnauthorized,
	KindAuthorization:   http.StatusForbidden,
	KindValidation:      http.StatusBadRequest,
	KindNotFound:        http.StatusNotFound,
	KindConflict:        http.StatusConflict,
	KindDependencyCycle: http.StatusBadRequest,
	KindTimeout:         http.StatusGatewayTimeout,
	KindLLMAuth:         http.StatusBadGateway,
	KindLLMNetwork:      http.StatusBadGateway,
	KindLLMSDK:          http.StatusBadGateway,
	KindSandboxCreate:   http.StatusBadGateway,
	KindSandboxCommand:  http.StatusBadGateway,
	KindSandboxDead:     http.StatusConflict,
	KindSandboxTimeout:  http.StatusGatewayTimeout,
	KindComplianceBlock: http.StatusOK, // feedback into the dev loop, never a failed request
	KindRateLimit:       http.StatusTooManyRequests,
	KindInternal:        http.StatusInternalServerError,
}

// Error is a Kind-tagged error carrying optional structured details,
// produced by the engine packages and translated into the HTTP
// envelope at the api layer.
type Error struct {
	Kind    Kind
	Message string
	Details any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a Kind-tagged Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags an existing error with a Kind, preserving it for errors.Is/As.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// WithDetails attaches structured details (e.g. a list of compliance
// issues, or the cyclic task ids) to the envelope.
func (e *Error) WithDetails(details any) *Error {
	e.Details = details
	return e
}

// Envelope is the wire shape of a user-visible failure.
type Envelope struct {
	ErrorMessage string `json:"error"`
	Kind         Kind   `json:"kind"`
	Details      any    `json:"details,omitempty"`
	Retryable    bool   `json:"retryable"`
}

// ToEnvelope converts any error into the user-visible envelope,
// defaulting to KindInternal for errors not tagged via New/Wrap.
func ToEnvelope(err error) (Envelope, int) {
	var tagged *Error
	if errors.As(err, &tagged) {
		status, ok := httpStatus[tagged.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		return Envelope{
			ErrorMessage: tagged.Error(),
			Kind:         tagged.Kind,
			Details:      tagged.Details,
			Retryable:    retryable[tagged.Kind],
		}, status
	}
	return Envelope{
		ErrorMessage: err.Error(),
		Kind:         KindInternal,
		Retryable:    false,
	}, http.StatusInternalServerError
}
