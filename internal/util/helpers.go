package util

import "cmp"

// BoolToInt converts a boolean to the 0/1 form sqlite stores.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// IntToBool treats any non-zero column value as true.
func IntToBool(i int) bool {
	return i != 0
}

// Clamp constrains value to [lo,hi]. When hi < lo the result is lo.
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	if value > hi {
		value = hi
	}
	if value < lo {
		value = lo
	}
	return value
}
