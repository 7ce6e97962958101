package roman

// From converts a roman numeral to an integer.
//
// Only the canonical spelling of a number between 1 and Max is accepted:
// the input is decoded leniently, re-encoded with To, and rejected unless
// the two strings are identical.  The second result is false for
// anything else, including the empty string and lowercase input.
//
//	From("XIV")  // 14, true
//	From("IIII") // 0, false
//	From("")     // 0, false
func From(s string) (uint16, bool) {
	n, ok := fromLax(s)
	if !ok {
		return 0, false
	}
	// Out-of-range values have no encoding; To would reject them anyway
	// but they must not be truncated to uint16 first.
	if n < 1 || n > int(Max) {
		return 0, false
	}
	canon, ok := To(uint16(n))
	if !ok || canon != s {
		return 0, false
	}
	return uint16(n), true
}

// fromLax sums symbol values scanning right to left.  A symbol smaller
// than the largest one already seen is subtracted, everything else is
// added.  No ordering or repetition rules are checked, so "IIIIII"
// yields 6 and "" yields 0.
func fromLax(s string) (int, bool) {
	runes := []rune(s)
	n, largest := 0, uint16(0)
	for i := len(runes) - 1; i >= 0; i-- {
		val, ok := symbolValue(runes[i])
		if !ok {
			return 0, false
		}
		if val < largest {
			n -= int(val)
		} else {
			n += int(val)
			largest = val
		}
	}
	return n, true
}
