// Package apperrors provides structured errors with kind classification and
// HTTP status mapping for the analysis pipeline.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes an error for response formatting and metrics.
type Kind string

const (
	// KindInvalidInput indicates empty or whitespace-only review text (HTTP 400).
	KindInvalidInput Kind = "invalid_input"
	// KindTextTooLong indicates text over the model token limit with truncation disabled (HTTP 400).
	KindTextTooLong Kind = "text_too_long"
	// KindBadRequest indicates a malformed request payload (HTTP 400).
	KindBadRequest Kind = "bad_request"
	// KindClassification indicates a classifier backend failure (HTTP 502).
	KindClassification Kind = "classification_error"
	// KindInternal indicates an unexpected server-side error (HTTP 500).
	KindInternal Kind = "internal"
)

// Error is a classified error carrying an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error kind to an HTTP status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidInput, KindTextTooLong, KindBadRequest:
		return http.StatusBadRequest
	case KindClassification:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func TextTooLong(length, limit int) *Error {
	return &Error{
		Kind: KindTextTooLong,
		Message: fmt.Sprintf(
			"text exceeds model token limit (%d tokens, limit %d) and truncation is disabled",
			length, limit),
	}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func Classification(message string, cause error) *Error {
	return &Error{Kind: KindClassification, Message: message, Cause: cause}
}

func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, Cause: cause}
}

// Response is the JSON error shape sent to clients and embedded in batch slots.
type Response struct {
	Error    Kind    `json:"error"`
	Message  string  `json:"message"`
	ReviewID *string `json:"review_id"`
}

// AsError converts any error into a classified *Error, wrapping unknown
// errors as internal.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}
	return Internal("unexpected error", err)
}
