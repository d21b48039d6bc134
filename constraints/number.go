package constraints

import (
	"golang.org/x/exp/constraints"
)

// Integer is the set of types usable as an element count or offset.
type Integer interface {
	constraints.Integer
}

func IsSigned[T Integer]() bool {
	var zero T
	return ^zero < zero
}

// MaxOf returns the largest value representable by T.
func MaxOf[T Integer]() T {
	var zero T
	if IsSigned[T]() {
		v := T(1)
		for v<<1 > 0 {
			v <<= 1
		}
		return v - 1 + v
	}
	return ^zero
}

// MinOf returns the smallest value representable by T.
func MinOf[T Integer]() T {
	if IsSigned[T]() {
		return -MaxOf[T]() - 1
	}
	return 0
}
