package envelope

import (
	"errors"
	"fmt"
)

// Kind classifies why an envelope could not be decoded.
type Kind string

const (
	InvalidBase64 Kind = "invalid_base64"
	MalformedJSON Kind = "malformed_json"
)

var (
	ErrInvalidBase64 = errors.New("envelope: Content field is not valid base64")
	ErrMalformedJSON = errors.New("envelope: malformed JSON document")
)

// DecodeError is returned by every decode function in this package.
type DecodeError struct {
	Kind Kind
	Err  error
}

func newError(kind Kind, err error) *DecodeError {
	return &DecodeError{Kind: kind, Err: err}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.sentinel(), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the sentinel for the error's kind.
func (e *DecodeError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *DecodeError) sentinel() error {
	if e.Kind == InvalidBase64 {
		return ErrInvalidBase64
	}
	return ErrMalformedJSON
}
