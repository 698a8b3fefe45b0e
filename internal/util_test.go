package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestPowInt(t *testing.T) {
	assert.Equal(t, 1, PowInt(5, 0))
	assert.Equal(t, 0, PowInt(0, 3))
	assert.Equal(t, 1000000, PowInt(10, 6))
	assert.Equal(t, -8, PowInt(-2, 3))
	assert.Panics(t, func() { PowInt(2, -1) })
}

func TestPow(t *testing.T) {
	assert.Equal(t, 1.0, Pow(0, 0))
	assert.Equal(t, 0.0, Pow(0, 2))
	assert.InDelta(t, 6.25, Pow(2.5, 2), Epsilon)
	assert.InDelta(t, -0.125, Pow(-0.5, 3), Epsilon)
	assert.Panics(t, func() { Pow(2, -2) })
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, 1, Factorial(0))
	assert.Equal(t, 1, Factorial(1))
	assert.Equal(t, 120, Factorial(5))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.234568, Round(1.2345678, 6))
	assert.Equal(t, -1.2346, Round(-1.23456, 4))
	assert.Equal(t, 0.0, Round(6.123233995736766e-17, 6))
	assert.Equal(t, 3.0, Round(2.9999999, 6))
}

func TestAngleConversion(t *testing.T) {
	assert.InDelta(t, math.Pi, DegreesToRadians(180), Epsilon)
	assert.InDelta(t, -math.Pi/2, DegreesToRadians(-90), Epsilon)
	assert.InDelta(t, 90, RadiansToDegrees(math.Pi/2), Epsilon)
}

func TestToleranceComparisons(t *testing.T) {
	cases := []struct {
		a, b                                      float64
		equal, less, greater, lessOrEq, greaterOrEq bool
	}{
		{1, 1, true, false, false, true, true},
		{1, 1 + Epsilon/10, true, false, false, true, true},
		{1, 2, false, true, false, true, false},
		{2, 1, false, false, true, false, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.equal, Equal(c.a, c.b), "Equal(%v, %v)", c.a, c.b)
		assert.Equal(t, c.less, Less(c.a, c.b), "Less(%v, %v)", c.a, c.b)
		assert.Equal(t, c.greater, Greater(c.a, c.b), "Greater(%v, %v)", c.a, c.b)
		assert.Equal(t, c.lessOrEq, LessOrEqual(c.a, c.b), "LessOrEqual(%v, %v)", c.a, c.b)
		assert.Equal(t, c.greaterOrEq, GreaterOrEqual(c.a, c.b), "GreaterOrEqual(%v, %v)", c.a, c.b)
	}
}
