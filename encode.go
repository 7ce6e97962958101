package roman

import (
	"fmt"
	"strings"
)

// To converts an integer into a roman numeral.
//
// Works for integers between 1 and Max inclusive; the second result is
// false otherwise.
//
//	To(14)   // "XIV", true
//	To(0)    // "", false
//	To(3999) // "MMMCMXCIX", true
//	To(4000) // "", false
func To(n uint16) (string, bool) {
	if n == 0 || n > Max {
		return "", false
	}
	var b strings.Builder
	b.Grow(MaxLen)
	rem := n
	for _, p := range pairs {
		for rem >= p.value {
			rem -= p.value
			b.WriteString(p.text)
		}
	}
	// Only a broken pair table can leave a residual.
	if rem != 0 {
		panic(fmt.Sprintf("roman: residual %d after encoding %d", rem, n))
	}
	return b.String(), true
}
