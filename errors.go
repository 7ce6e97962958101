package roman

import (
	"errors"
	"fmt"
)

// ErrRepresentation is the only error code.  It covers integers outside
// [1, Max] and strings that are not the canonical numeral of such an
// integer; the cause is deliberately not reported.
const ErrRepresentation = "ERR_REPRESENTATION"

// NumeralError is returned by the error-returning wrappers around To and
// From.  Callers compare the Code field against ErrRepresentation.
type NumeralError struct {
	Code string
	Msg  string
}

func (e *NumeralError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return e.Code
}

func newErr(code, msg string) *NumeralError {
	return &NumeralError{Code: code, Msg: msg}
}

func invalidNumber(n uint16) *NumeralError {
	return newErr(ErrRepresentation, fmt.Sprintf("no roman numeral for %d", n))
}

func invalidNumeral(s string) *NumeralError {
	return newErr(ErrRepresentation, fmt.Sprintf("%q is not a roman numeral", s))
}

// IsRepresentationError reports whether err, or anything it wraps, is a
// NumeralError with code ErrRepresentation.
func IsRepresentationError(err error) bool {
	var ne *NumeralError
	return errors.As(err, &ne) && ne.Code == ErrRepresentation
}
