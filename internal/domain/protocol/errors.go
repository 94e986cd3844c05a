package protocol

import (
	"fmt"
)

// UnknownEnumValueError is returned when a token is not a member of a closed vocabulary.
type UnknownEnumValueError struct {
	Vocabulary string `json:"vocabulary"`
	Token      string `json:"token"`
	Path       string `json:"path,omitempty"`
}

func (e *UnknownEnumValueError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: unknown %s value %q", e.Path, e.Vocabulary, e.Token)
	}
	return fmt.Sprintf("unknown %s value %q", e.Vocabulary, e.Token)
}

// UnrecognizedKind records a token accepted by an open vocabulary without
// being one of its declared members.
type UnrecognizedKind struct {
	Vocabulary string `json:"vocabulary"`
	Token      string `json:"token"`
	Path       string `json:"path"`
}

func (u UnrecognizedKind) String() string {
	return fmt.Sprintf("%s: unrecognized %s value %q", u.Path, u.Vocabulary, u.Token)
}

// UnrecognizedKindError is returned instead of tolerating an unrecognized
// token when decoding in strict mode.
type UnrecognizedKindError struct {
	UnrecognizedKind
}

func (e *UnrecognizedKindError) Error() string {
	return e.UnrecognizedKind.String()
}

// MissingFieldError is returned when a required field is absent.
type MissingFieldError struct {
	Type  string `json:"type"`
	Field string `json:"field"`
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: required field %q is missing", e.Type, e.Field)
}

// TypeMismatchError is returned when a field holds a JSON value of the wrong shape.
type TypeMismatchError struct {
	Type     string `json:"type"`
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

func (e *TypeMismatchError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: expected %s, got %s", e.Type, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: field %q: expected %s, got %s", e.Type, e.Field, e.Expected, e.Actual)
}

// UnknownKindError is returned when a discriminator token does not select any variant.
type UnknownKindError struct {
	Family Family `json:"family"`
	Token  string `json:"token"`
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("%s: unknown kind %q", e.Family, e.Token)
}

// InvalidVariantPayloadError is returned when a payload does not match the
// shape selected by a valid kind.
type InvalidVariantPayloadError struct {
	Kind   RefactoringKind `json:"kind"`
	Family Family          `json:"family"`
	Cause  error           `json:"-"`
}

func (e *InvalidVariantPayloadError) Error() string {
	return fmt.Sprintf("%s for %s: %v", e.Family, e.Kind, e.Cause)
}

func (e *InvalidVariantPayloadError) Unwrap() error {
	return e.Cause
}

// SyntaxError is returned when the input is not well-formed JSON.
type SyntaxError struct {
	Type string `json:"type"`
	Err  error  `json:"-"`
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: invalid JSON: %v", e.Type, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
