package gemini

import (
	"fmt"
	"net/http"
)

type Kind string

const (
	KindMissingAPIKey      Kind = "missing_api_key"
	KindAuth               Kind = "auth_error"
	KindServiceUnavailable Kind = "service_unavailable"
	KindMalformedResponse  Kind = "malformed_response"
	KindOffline            Kind = "offline"
	KindUnknown            Kind = "unknown"
)

// Error classifies a failed Gemini call so the popup can pick a message and
// a recovery action.
type Error struct {
	Kind    Kind
	Message string
	Err     error

	retryable bool
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gemini: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("gemini: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the failure class to the status code the API surfaces.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindMissingAPIKey, KindAuth:
		return http.StatusUnauthorized
	case KindServiceUnavailable, KindOffline:
		return http.StatusServiceUnavailable
	case KindMalformedResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage is the human-readable message shown by the popup.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindMissingAPIKey:
		return "API key not found. Please set up your API key first."
	case KindAuth:
		return "Invalid or missing API key. Please check your API key in the extension settings."
	case KindServiceUnavailable:
		return "The model endpoint is temporarily unavailable. Please try again."
	case KindMalformedResponse:
		return "Unexpected response from API. Please try again."
	case KindOffline:
		return "No internet connection. Please check your network and try again."
	}
	if e.Message != "" {
		return "Error: " + e.Message
	}
	return "Something went wrong. Please try again."
}

// RecoveryAction tells the popup which recovery button to offer.
func (e *Error) RecoveryAction() string {
	if e.Kind == KindMissingAPIKey || e.Kind == KindAuth {
		return "reset_api_key"
	}
	return "retry"
}
