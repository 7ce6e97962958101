package roman

// Format is To with an error instead of a flag.  The error is always a
// *NumeralError with code ErrRepresentation.
func Format(n uint16) (string, error) {
	s, ok := To(n)
	if !ok {
		return "", invalidNumber(n)
	}
	return s, nil
}

// Parse is From with an error instead of a flag.  The error is always a
// *NumeralError with code ErrRepresentation.
func Parse(s string) (uint16, error) {
	n, ok := From(s)
	if !ok {
		return 0, invalidNumeral(s)
	}
	return n, nil
}
