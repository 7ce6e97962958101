// Package roman converts between integers and classical roman numerals.
//
// The range is 1 to Max (3999).  Encoding is greedy over thirteen
// symbol/value pairs, which yields the one canonical spelling of every
// number in range.  Decoding accepts exactly those spellings: a lenient
// right-to-left pass computes a value, and the result is kept only if
// encoding that value reproduces the input character for character.
// Lowercase, repeated (IIII), misordered (IM) and empty inputs all fail
// that check.
//
// To and From report failure with a boolean and carry no reason.
// Format and Parse return a *NumeralError instead, and the Numeral type
// adds text, JSON and YAML encodings on top of the same rules.
//
// Everything here is pure and safe for concurrent use.
package roman

import (
	"fmt"
	"strconv"
)

// Numeral is a number in [1, Max] that renders as its roman numeral.
// The zero value is not a valid Numeral.
type Numeral uint16

// NewNumeral returns n as a Numeral, or a NumeralError if n is out of range.
func NewNumeral(n uint16) (Numeral, error) {
	if n == 0 || n > Max {
		return 0, invalidNumber(n)
	}
	return Numeral(n), nil
}

// ParseNumeral parses a canonical roman numeral.
func ParseNumeral(s string) (Numeral, error) {
	n, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return Numeral(n), nil
}

// MustParseNumeral is like ParseNumeral but panics on invalid input.
// Intended for constants and tests.
func MustParseNumeral(s string) Numeral {
	n, err := ParseNumeral(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Valid reports whether n is in [1, Max].
func (n Numeral) Valid() bool {
	return n != 0 && uint16(n) <= Max
}

// Value returns the integer value.
func (n Numeral) Value() uint16 {
	return uint16(n)
}

// String returns the canonical numeral, or "Numeral(<n>)" when n is invalid.
func (n Numeral) String() string {
	if s, ok := To(uint16(n)); ok {
		return s
	}
	return "Numeral(" + strconv.FormatUint(uint64(n), 10) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (n Numeral) MarshalText() ([]byte, error) {
	s, err := Format(uint16(n))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Numeral) UnmarshalText(text []byte) error {
	v, err := ParseNumeral(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Format implements fmt.Formatter so that %d prints the integer while
// %s and %v print the numeral.
func (n Numeral) Format(f fmt.State, verb rune) {
	switch verb {
	case 'd':
		fmt.Fprintf(f, fmt.FormatString(f, verb), uint16(n))
	case 'q':
		fmt.Fprintf(f, fmt.FormatString(f, verb), n.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, 's'), n.String())
	}
}
