// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Display precisions used by derivations and reports.
const (
	// TermDecimals is the precision of operands inside product derivations.
	TermDecimals = 2
	// ResultDecimals is the precision of computed values in reports.
	ResultDecimals = 4
)

// Exponent thresholds outside of which FormatRaw switches to exponent form.
const (
	rawMinDecimal = 1e-6
	rawMaxDecimal = 1e21
)

// FormatFixed renders v with the given number of decimals and then strips
// trailing zeros and a trailing decimal point: 2.50 → "2.5", 3.00 → "3",
// 0.004 → "0" at two decimals. A value exactly halfway between two
// candidates rounds away from zero (0.125 → "0.13", -0.125 → "-0.13").
// Magnitudes from 1e21 up use FormatRaw's exponent form. Non-finite values
// render as NaN, Infinity and -Infinity. Negative zero renders as "0".
//
// Implementation:
//   - Stage 1: strconv rounds |v| correctly except on exact ties, where it
//     picks the even digit; an exact tie is nudged one ulp up first.
//   - Stage 2: trim zeros, then restore the sign.
//
// Complexity: O(len(result)), plus an exact expansion of |v| for the tie check.
func FormatFixed(v float64, decimals int) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	if v == 0 {
		v = 0 // fold -0
	}
	if decimals < 0 {
		decimals = 0
	}
	abs := math.Abs(v)
	if abs >= rawMaxDecimal {
		return FormatRaw(v)
	}
	if isDecimalTie(abs, decimals) {
		abs = math.Nextafter(abs, math.Inf(1))
	}

	s := strconv.FormatFloat(abs, 'f', decimals, 64)
	if decimals > 0 {
		s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	}
	if v < 0 {
		s = "-" + s
	}

	return s
}

// exactDigits covers every fractional digit a float64 can carry (2^-1074).
const exactDigits = 1100

// isDecimalTie reports whether abs lies exactly halfway between two values
// with the given number of decimals.
func isDecimalTie(abs float64, decimals int) bool {
	exact := new(big.Float).SetFloat64(abs).Text('f', exactDigits)
	_, frac, _ := strings.Cut(exact, ".")
	if len(frac) <= decimals {
		return false
	}

	return strings.TrimRight(frac[decimals:], "0") == "5"
}

// FormatRaw renders v as the shortest decimal that round-trips, the way the
// values were typed: 3 → "3", 0.1 → "0.1", 0.1+0.2 → "0.30000000000000004".
// Magnitudes below 1e-6 or from 1e21 up use exponent form ("1e-7", "1e+21").
func FormatRaw(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= rawMinDecimal && abs < rawMaxDecimal {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// strconv writes "1e-07"; drop exponent zero padding and keep an explicit sign.
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}

	return mant + "e" + sign + digits
}

func formatNonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}

	return "", false
}
