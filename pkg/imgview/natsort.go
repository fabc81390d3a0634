package imgview

import "strings"

// naturalLess orders filenames the way a human reads them: case-insensitive,
// with embedded digit runs compared numerically, so img2.jpg sorts before
// img10.jpg.
func naturalLess(a, b string) bool {
	return naturalCompare(a, b) < 0
}

func naturalCompare(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	for a != "" && b != "" {
		ac, arest := nextRun(a)
		bc, brest := nextRun(b)

		var c int
		if isDigit(ac[0]) && isDigit(bc[0]) {
			c = compareDigitRuns(ac, bc)
		} else {
			c = strings.Compare(ac, bc)
		}
		if c != 0 {
			return c
		}

		a, b = arest, brest
	}

	return len(a) - len(b)
}

// nextRun splits off the leading run of s: all digits or all non-digits.
func nextRun(s string) (string, string) {
	digits := isDigit(s[0])
	for i := 1; i < len(s); i++ {
		if isDigit(s[i]) != digits {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// compareDigitRuns compares two digit runs by numeric value without parsing
// them into integers, so arbitrarily long runs cannot overflow. Runs with
// equal value but more leading zeros sort later.
func compareDigitRuns(a, b string) int {
	at := strings.TrimLeft(a, "0")
	bt := strings.TrimLeft(b, "0")

	if len(at) != len(bt) {
		return len(at) - len(bt)
	}
	if c := strings.Compare(at, bt); c != 0 {
		return c
	}
	return len(a) - len(b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
