// Package apperrors defines the error taxonomy shared by services and the HTTP boundary.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies an error for translation at the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindBusiness
	KindAuthentication
	KindAccessDenied
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindBusiness:
		return "business"
	case KindAuthentication:
		return "authentication"
	case KindAccessDenied:
		return "access_denied"
	default:
		return "internal"
	}
}

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	// Fields holds per-field validation messages keyed by field name.
	Fields map[string]string
	// Status overrides the status derived from Kind when non-zero.
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same Kind and Code, so sentinel
// values declared with these constructors work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// HTTPStatus returns the status code the error maps to.
func (e *Error) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Kind {
	case KindValidation, KindBusiness:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAccessDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Validation reports malformed input. Fields lists every failing field.
func Validation(message string, fields map[string]string) *Error {
	code := "VALIDATION_ERROR"
	if len(fields) > 1 {
		code = "VALIDATION_ERRORS"
	}
	return &Error{Kind: KindValidation, Code: code, Message: message, Fields: fields}
}

// NotFound reports a lookup miss by id, e.g. "User not found with ID: 5".
func NotFound(resource string, id any) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    resourceCode(resource),
		Message: fmt.Sprintf("%s not found with ID: %v", resource, id),
	}
}

// NotFoundBy reports a lookup miss by an arbitrary field.
func NotFoundBy(resource, field string, value any) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    resourceCode(resource),
		Message: fmt.Sprintf("%s not found with %s: %v", resource, field, value),
	}
}

// Business reports a domain rule violation.
func Business(code, message string) *Error {
	return &Error{Kind: KindBusiness, Code: code, Message: message}
}

// Authentication reports a missing or rejected identity.
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Code: "AUTHENTICATION_FAILED", Message: message}
}

// AccessDenied reports an authenticated caller lacking access.
func AccessDenied(message string) *Error {
	return &Error{Kind: KindAccessDenied, Code: "ACCESS_DENIED", Message: message}
}

// Wrap returns a copy of e carrying cause.
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.Err = cause
	return &cp
}

// WithStatus returns a copy of e with an explicit HTTP status.
func (e *Error) WithStatus(status int) *Error {
	cp := *e
	cp.Status = status
	return &cp
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

func resourceCode(resource string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(resource), " ", "_")) + "_NOT_FOUND"
}
