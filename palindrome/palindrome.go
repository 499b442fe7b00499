// Package palindrome decides whether integers are numeric palindromes in base 10.
package palindrome

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// maxDecimalLen fits the longest rendering of any 64-bit integer:
// 20 digits for math.MaxUint64, or a sign plus 19 digits for math.MinInt64.
const maxDecimalLen = 20

// IsPalindrome reports whether the decimal rendering of n reads the same
// forwards and backwards.
//
// The rendering keeps the leading minus sign, so no negative number is a
// palindrome: IsPalindrome(-121) is false. Zero and every single digit
// non-negative number are palindromes.
func IsPalindrome[T constraints.Integer](n T) bool {
	var buf [maxDecimalLen]byte
	return isMirrored(appendDecimal(buf[:0], n))
}

// DigitCount returns the number of decimal digits of |n|.
// The sign is not counted and zero has one digit.
func DigitCount[T constraints.Integer](n T) int {
	m := magnitude(n)
	count := 1
	for m >= 10 {
		m /= 10
		count++
	}
	return count
}

// isMirrored compares the outer bytes pairwise, moving inward until the
// indexes meet or cross.
func isMirrored(digits []byte) bool {
	for left, right := 0, len(digits)-1; left < right; left, right = left+1, right-1 {
		if digits[left] != digits[right] {
			return false
		}
	}
	return true
}

func appendDecimal[T constraints.Integer](dst []byte, n T) []byte {
	if n < 0 {
		return strconv.AppendInt(dst, int64(n), 10)
	}
	return strconv.AppendUint(dst, uint64(n), 10)
}

// magnitude returns |n| without overflowing on the minimum signed value.
func magnitude[T constraints.Integer](n T) uint64 {
	if n < 0 {
		return uint64(-(int64(n) + 1)) + 1
	}
	return uint64(n)
}
