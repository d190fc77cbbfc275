package intake

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies everything that can go wrong between receiving a
// submission and getting an answer from IntakeQ. Each kind maps to exactly
// one caller-visible HTTP status; the mapping lives in HTTPStatus and is
// applied once, at the handler boundary.
type ErrorKind int

const (
	// KindConfig: the credential for the selected payment type is not configured.
	KindConfig ErrorKind = iota
	// KindValidation: required input fields are missing or invalid; IntakeQ
	// is never contacted.
	KindValidation
	// KindTimeout: the outbound call exceeded its budget.
	KindTimeout
	// KindConnection: IntakeQ could not be reached at all.
	KindConnection
	// KindNetwork: any other transport-level failure.
	KindNetwork
	// KindAPI: IntakeQ answered with a non-2xx status.
	KindAPI
	// KindResponseFormat: IntakeQ answered 2xx with a body we cannot parse.
	KindResponseFormat
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindValidation:
		return "validation"
	case KindTimeout:
		return "timeout"
	case KindConnection:
		return "connection"
	case KindNetwork:
		return "network"
	case KindAPI:
		return "api"
	case KindResponseFormat:
		return "response_format"
	}
	return "unknown"
}

// Error is the single error type the intake service returns.
type Error struct {
	Kind    ErrorKind
	Message string
	// ProviderStatus is the HTTP status IntakeQ answered with, for KindAPI.
	ProviderStatus int
	// Detail carries the provider's error body or the underlying transport
	// error text.
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// HTTPStatus maps a service error to the status the caller sees. Unknown
// error values fall through to 500.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConnection:
		return http.StatusBadGateway
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		// Config, Network, API and ResponseFormat all surface as 500.
		return http.StatusInternalServerError
	}
}
