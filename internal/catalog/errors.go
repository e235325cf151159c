package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError reports a missing set or card. The ID is the set code, or
// "set:num" for a card.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// NewSetNotFound builds the error for a set code with no document.
func NewSetNotFound(code string) error {
	return &NotFoundError{Kind: "set", ID: code}
}

// NewCardNotFound builds the error for a card number missing from a set.
func NewCardNotFound(code, num string) error {
	return &NotFoundError{Kind: "card", ID: code + ":" + num}
}

// InvalidParameterError marks a caller bug (e.g. an empty set code), not a
// data problem.
type InvalidParameterError struct {
	Name   string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Name, e.Reason)
}

// SourceUnavailableError wraps a failed document fetch. It is distinct from
// NotFoundError: the document may exist but the source could not be reached.
type SourceUnavailableError struct {
	Err     error
	Timeout bool
}

func (e *SourceUnavailableError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("content source timed out: %v", e.Err)
	}
	return fmt.Sprintf("content source unavailable: %v", e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// HTTPStatus maps an error to the status code the API surfaces for it.
// Unknown errors, including InvalidParameterError, are server faults.
func HTTPStatus(err error) int {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound
	}
	var su *SourceUnavailableError
	if errors.As(err, &su) {
		if su.Timeout {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
