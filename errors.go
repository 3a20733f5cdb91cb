package jsonxml

import (
	"errors"
	"net/http"
)

// InvalidInputError covers upload problems the client controls: wrong file
// extension, an empty upload, or a non-UTF-8 file.
type InvalidInputError struct{ Msg string }

func (e *InvalidInputError) Error() string { return e.Msg }

// MalformedJSONError carries the parser diagnostic for bad JSON syntax.
type MalformedJSONError struct{ Msg string }

func (e *MalformedJSONError) Error() string { return e.Msg }

// ConversionError reports an unexpected failure while mapping or serializing.
type ConversionError struct{ Msg string }

func (e *ConversionError) Error() string { return e.Msg }

// statusFor maps a conversion pipeline error to an HTTP status code.
func statusFor(err error) int {
	var invalid *InvalidInputError
	var malformed *MalformedJSONError
	if errors.As(err, &invalid) || errors.As(err, &malformed) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
