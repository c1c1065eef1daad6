package errors

import (
	"encoding/json"
	"strings"
)

// ValidationError is a single field violation shown inline under the field
type ValidationError struct {
	field   string
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// Field returns name of the violated field
func (e *ValidationError) Field() string {
	return e.field
}

func (e *ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}{Field: e.field, Message: e.message})
}

func NewValidationError(field string, msg string) *ValidationError {
	return &ValidationError{
		field:   field,
		message: msg,
	}
}

// ValidationErrors keeps violations in the order rules were evaluated
type ValidationErrors []*ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.message)
	}
	return strings.Join(msgs, "\n")
}

// First returns first violation for the field or empty string
func (ve ValidationErrors) First(field string) string {
	for _, e := range ve {
		if e.field == field {
			return e.message
		}
	}
	return ""
}

// ByField collapses violations to the first message per field
func (ve ValidationErrors) ByField() map[string]string {
	res := make(map[string]string)
	for _, e := range ve {
		if _, ok := res[e.field]; !ok {
			res[e.field] = e.message
		}
	}
	return res
}

func (ve ValidationErrors) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Errors []*ValidationError `json:"errors"`
	}{
		Errors: ve,
	})
}

// AuthenticationError is raised when credentials were rejected
type AuthenticationError struct {
	message string
}

func (e *AuthenticationError) Error() string {
	return e.message
}

func (e *AuthenticationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Message string `json:"message"`
	}{Message: e.message})
}

func NewAuthenticationError(msg string) *AuthenticationError {
	return &AuthenticationError{message: msg}
}
