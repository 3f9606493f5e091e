// Package satmath provides saturating integer arithmetic.
//
// Distances and lengths computed by the toolkit use the maximum value of their
// type to mean "unreachable" or "unbounded"; adding to such a value must not
// wrap around.
package satmath

import "golang.org/x/exp/constraints"

// Max returns the largest value representable by T.
func Max[T constraints.Unsigned]() T {
	return ^T(0)
}

// Add returns a+b, or the maximum value of T when the sum overflows.
func Add[T constraints.Unsigned](a, b T) T {
	s := a + b
	if s < a {
		return Max[T]()
	}
	return s
}

// Mul returns a*b, or the maximum value of T when the product overflows.
func Mul[T constraints.Unsigned](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a {
		return Max[T]()
	}
	return p
}
