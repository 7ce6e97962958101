package roman

// Max is the largest number representable as a roman numeral.
const Max uint16 = 3999

// MaxLen is the length of the longest canonical numeral, MMMDCCCLXXXVIII (3888).
const MaxLen = 15

// symbol is one atomic numeral character.
type symbol struct {
	char  rune
	value uint16
}

// pair is one step of the greedy encoder.  Six of the thirteen entries
// are the subtractive combinations.
type pair struct {
	text  string
	value uint16
}

var symbols = [...]symbol{
	{'I', 1},
	{'V', 5},
	{'X', 10},
	{'L', 50},
	{'C', 100},
	{'D', 500},
	{'M', 1000},
}

// pairs must stay strictly descending by value; To relies on it to emit
// canonical numerals.
var pairs = [...]pair{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// symbolValue returns the value of an atomic numeral character.
func symbolValue(c rune) (uint16, bool) {
	for _, s := range symbols {
		if s.char == c {
			return s.value, true
		}
	}
	return 0, false
}
