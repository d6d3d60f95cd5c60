// Package apperr defines the error taxonomy shared by services and
// handlers. All failures are caller mistakes surfaced synchronously;
// nothing here is retried.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for HTTP mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindInsufficientStock
	KindIntegrity
	KindUnauthorized
	KindForbidden
)

// Error is the common structured error carried across layers.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, optional
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidation builds a validation error from a message.
func NewValidation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound reports an absent entity by name.
func NewNotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

// NewIntegrity reports a refused operation that would break referential
// history, e.g. deleting an entity that owns transactions.
func NewIntegrity(format string, args ...interface{}) *Error {
	return &Error{Kind: KindIntegrity, Message: fmt.Sprintf(format, args...)}
}

// NewUnauthorized reports a failed authentication.
func NewUnauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NewForbidden reports a denied action for the caller's role.
func NewForbidden(action string) *Error {
	return &Error{Kind: KindForbidden, Message: "forbidden: action '" + action + "' not allowed"}
}

// InsufficientStockError rejects an exit that would drive stock negative.
// It carries the figures the caller needs to correct the request.
type InsufficientStockError struct {
	Current   int `json:"current_stock"`
	Requested int `json:"requested"`
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: current stock %d, requested %d", e.Current, e.Requested)
}

// KindOf extracts the Kind from any error in the chain.
func KindOf(err error) Kind {
	var stockErr *InsufficientStockError
	if errors.As(err, &stockErr) {
		return KindInsufficientStock
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to its response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return 400
	case KindUnauthorized:
		return 401
	case KindForbidden:
		return 403
	case KindNotFound:
		return 404
	case KindInsufficientStock, KindIntegrity:
		return 409
	default:
		return 500
	}
}
