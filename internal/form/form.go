// Package form keeps per-screen form state: field values, touched flags and
// the first violation of every field.
package form

import (
	apperrors "github.com/umalmyha/authflow/internal/errors"
)

// FieldValidator returns ordered violations for the named field given all form values
type FieldValidator func(name string, values map[string]string) []string

// Field is state of a single form field
type Field struct {
	Value   string
	Touched bool
	Error   string
}

// State is owned exclusively by one screen instance
type State struct {
	order    []string
	fields   map[string]*Field
	validate FieldValidator
}

// New builds empty form with fields in display order
func New(validate FieldValidator, names ...string) *State {
	s := &State{
		order:    names,
		fields:   make(map[string]*Field, len(names)),
		validate: validate,
	}
	s.Reset()
	return s
}

// Reset drops values, touched flags and errors
func (s *State) Reset() {
	for _, name := range s.order {
		s.fields[name] = &Field{}
	}
}

// Fields returns field names in display order
func (s *State) Fields() []string {
	return s.order
}

// Change sets field value and revalidates the whole form, since confirmation
// depends on password
func (s *State) Change(name, value string) {
	f, ok := s.fields[name]
	if !ok {
		return
	}
	f.Value = value
	s.validateAll()
}

// Blur marks field as touched and revalidates it
func (s *State) Blur(name string) {
	f, ok := s.fields[name]
	if !ok {
		return
	}
	f.Touched = true
	s.validateAll()
}

// Submit touches every field and reports whether the form is valid
func (s *State) Submit() bool {
	for _, f := range s.fields {
		f.Touched = true
	}
	return s.validateAll()
}

// Value returns current field value
func (s *State) Value(name string) string {
	if f, ok := s.fields[name]; ok {
		return f.Value
	}
	return ""
}

// Values returns copy of all field values
func (s *State) Values() map[string]string {
	values := make(map[string]string, len(s.fields))
	for name, f := range s.fields {
		values[name] = f.Value
	}
	return values
}

// Field returns copy of field state
func (s *State) Field(name string) Field {
	if f, ok := s.fields[name]; ok {
		return *f
	}
	return Field{}
}

// Error returns error to display, errors of untouched fields stay hidden
func (s *State) Error(name string) string {
	f, ok := s.fields[name]
	if !ok || !f.Touched {
		return ""
	}
	return f.Error
}

// Valid reports whether no field holds an error
func (s *State) Valid() bool {
	for _, f := range s.fields {
		if f.Error != "" {
			return false
		}
	}
	return true
}

// ApplyErrors sets errors reported by submission, e.g. by a flow
func (s *State) ApplyErrors(ve apperrors.ValidationErrors) {
	for name, msg := range ve.ByField() {
		if f, ok := s.fields[name]; ok {
			f.Touched = true
			f.Error = msg
		}
	}
}

func (s *State) validateAll() bool {
	values := s.Values()

	valid := true
	for _, name := range s.order {
		f := s.fields[name]
		f.Error = ""
		if s.validate == nil {
			continue
		}

		if violations := s.validate(name, values); len(violations) > 0 {
			f.Error = violations[0]
			valid = false
		}
	}
	return valid
}
