package internal

import "math"

// Equality is tolerance based. Every arithmetic operator rounds to
// VectorDecPlaces, so two values that should agree can still differ in the
// last kept digit.
const Epsilon = 1e-5

// Number of decimal places kept after every vector operation.
const VectorDecPlaces = 6

// Number of decimal places kept by SignedDistanceToInfiniteLine.
const DistanceDecPlaces = 4

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func Less(a, b float64) bool {
	return a < b && !Equal(a, b)
}

func Greater(a, b float64) bool {
	return a > b && !Equal(a, b)
}

func LessOrEqual(a, b float64) bool {
	return a < b || Equal(a, b)
}

func GreaterOrEqual(a, b float64) bool {
	return a > b || Equal(a, b)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Integer power by repeated multiplication. Negative exponents are a
// programming error.
func PowInt(base, exponent int) int {
	if exponent < 0 {
		fatalf("negative exponent %d", exponent)
	}
	if exponent == 0 {
		return 1
	}
	if base == 0 {
		return 0
	}
	result := 1
	for i := 0; i < exponent; i++ {
		result *= base
	}
	return result
}

// Float power for small non-negative integer exponents.
func Pow(base float64, exponent int) float64 {
	if exponent < 0 {
		fatalf("negative exponent %d", exponent)
	}
	if exponent == 0 {
		return 1
	}
	if Equal(base, 0) {
		return 0
	}
	result := 1.0
	for i := 0; i < exponent; i++ {
		result *= base
	}
	return result
}

func Factorial(n int) int {
	total := 1
	for ; n > 1; n-- {
		total *= n
	}
	return total
}

// Round n to the given number of decimal places.
func Round(n float64, places int) float64 {
	multiplier := float64(PowInt(10, places))
	return math.Round(n*multiplier) / multiplier
}

func DegreesToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

func RadiansToDegrees(radians float64) float64 {
	return radians * (180 / math.Pi)
}
