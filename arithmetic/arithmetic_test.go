package arithmetic_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/imeth/arithmetic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

func TestAbsAndSign(t *testing.T) {
	assert.Equal(t, 3.5, arithmetic.Abs(-3.5))
	assert.Equal(t, 7, arithmetic.Abs(7))
	assert.Equal(t, int8(4), arithmetic.Abs(int8(-4)))

	assert.Equal(t, -1, arithmetic.Sign(-0.1))
	assert.Equal(t, 0, arithmetic.Sign(0.0))
	assert.Equal(t, 1, arithmetic.Sign(42))
}

func TestNearZero(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    float64
		eps  float64
		want bool
	}{
		{"exact zero", 0, 1e-12, true},
		{"tiny positive", 5e-13, 1e-12, true},
		{"tiny negative", -5e-13, 1e-12, true},
		{"on the boundary", 1e-12, 1e-12, false},
		{"large", 1, 1e-12, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, arithmetic.NearZero(tc.v, tc.eps))
		})
	}
	assert.True(t, arithmetic.ApproxEqual(1.0, 1.0+1e-13, 1e-12))
	assert.False(t, arithmetic.ApproxEqual(1.0, 1.1, 1e-12))
}

func TestGCDAndLCM(t *testing.T) {
	assert.Equal(t, 6, arithmetic.GCD(48, 18))
	assert.Equal(t, 6, arithmetic.GCD(-48, 18))
	assert.Equal(t, 5, arithmetic.GCD(0, 5))
	assert.Equal(t, uint64(4), arithmetic.GCD(uint64(12), uint64(8)))

	assert.Equal(t, 36, arithmetic.LCM(12, 18))
	assert.Equal(t, 36, arithmetic.LCM(-12, 18))
	assert.Equal(t, 0, arithmetic.LCM(0, 18))
}

func TestDivide(t *testing.T) {
	q, err := arithmetic.Divide(10, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.5, q)

	_, err = arithmetic.Divide(1, 0)
	require.ErrorIs(t, err, arithmetic.ErrDivideByZero)
	require.ErrorIs(t, err, arithmetic.ErrDomain)
}

func TestPower(t *testing.T) {
	p, err := arithmetic.Power(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 32.0, p)

	p, err = arithmetic.Power(2, -2)
	require.NoError(t, err)
	assert.Equal(t, 0.25, p)

	p, err = arithmetic.Power(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	_, err = arithmetic.Power(0, -1)
	require.ErrorIs(t, err, arithmetic.ErrDivideByZero)

	p, err = arithmetic.Power(3, 13)
	require.NoError(t, err)
	assert.Equal(t, 1594323.0, p)
}

// TestPowerExtremeExponents finishes quickly and keeps the sign of the exponent.
func TestPowerExtremeExponents(t *testing.T) {
	tests := []struct {
		base float64
		exp  int
		want float64
	}{
		{2, math.MinInt, 0},
		{0.5, math.MinInt, math.Inf(1)},
		{1, math.MinInt, 1},
		{-1, math.MinInt, 1},
		{-1, math.MaxInt, -1},
		{1, math.MaxInt, 1},
	}
	for _, tc := range tests {
		got, err := arithmetic.Power(tc.base, tc.exp)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Power(%g, %d)", tc.base, tc.exp)
	}
}

func TestRoots(t *testing.T) {
	r, err := arithmetic.SquareRoot(144)
	require.NoError(t, err)
	assert.Equal(t, 12.0, r)

	r, err = arithmetic.SquareRoot(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)

	_, err = arithmetic.SquareRoot(-1)
	require.ErrorIs(t, err, arithmetic.ErrNegativeRoot)
	require.ErrorIs(t, err, arithmetic.ErrDomain)

	assert.InDelta(t, 3.0, arithmetic.CubeRoot(27), 1e-12)
	assert.InDelta(t, -2.0, arithmetic.CubeRoot(-8), 1e-12)
}

func TestRemainderAndDivisibility(t *testing.T) {
	r, err := arithmetic.Remainder(17, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, r)

	_, err = arithmetic.Remainder(1, 0)
	require.ErrorIs(t, err, arithmetic.ErrDivideByZero)

	assert.True(t, arithmetic.IsDivisible(20, 5))
	assert.False(t, arithmetic.IsDivisible(20, 3))
	assert.False(t, arithmetic.IsDivisible(20, 0))
}

func TestPercentages(t *testing.T) {
	assert.Equal(t, 20.0, arithmetic.PercentOf(25, 80))

	p, err := arithmetic.WhatPercent(20, 50)
	require.NoError(t, err)
	assert.Equal(t, 40.0, p)

	p, err = arithmetic.PercentIncrease(50, 75)
	require.NoError(t, err)
	assert.Equal(t, 50.0, p)

	p, err = arithmetic.PercentDecrease(80, 60)
	require.NoError(t, err)
	assert.Equal(t, 25.0, p)

	_, err = arithmetic.WhatPercent(1, 0)
	require.ErrorIs(t, err, arithmetic.ErrDivideByZero)
	_, err = arithmetic.PercentIncrease(0, 1)
	require.ErrorIs(t, err, arithmetic.ErrDivideByZero)
	_, err = arithmetic.PercentDecrease(0, 1)
	require.ErrorIs(t, err, arithmetic.ErrDivideByZero)
}

func TestFractions(t *testing.T) {
	v, err := arithmetic.AddFractions(1, 2, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.75, v)

	v, err = arithmetic.SubtractFractions(1, 2, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)

	v, err = arithmetic.MultiplyFractions(1, 2, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.125, v)

	v, err = arithmetic.DivideFractions(1, 2, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = arithmetic.AddFractions(1, 0, 1, 4)
	require.ErrorIs(t, err, arithmetic.ErrDivideByZero)
	_, err = arithmetic.DivideFractions(1, 2, 0, 4)
	require.ErrorIs(t, err, arithmetic.ErrDivideByZero)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 3.0, arithmetic.RoundToNearest(2.5))
	assert.Equal(t, -3.0, arithmetic.RoundToNearest(-2.5))
	assert.Equal(t, 3.0, arithmetic.RoundUp(2.1))
	assert.Equal(t, -2.0, arithmetic.RoundUp(-2.1))
	assert.Equal(t, 2.0, arithmetic.RoundDown(2.9))
	assert.Equal(t, -3.0, arithmetic.RoundDown(-2.1))
	assert.InDelta(t, 3.14, arithmetic.RoundToDecimalPlaces(math.Pi, 2), 1e-12)
	assert.InDelta(t, 1200.0, arithmetic.RoundToDecimalPlaces(1234, -2), 1e-12)
}

func TestNumberProperties(t *testing.T) {
	assert.True(t, arithmetic.IsEven(20))
	assert.True(t, arithmetic.IsOdd(-3))
	assert.False(t, arithmetic.IsOdd(0))

	primes := []int{2, 3, 5, 7, 11, 13, 17, 97}
	for _, p := range primes {
		assert.True(t, arithmetic.IsPrime(p), "%d is prime", p)
	}
	for _, c := range []int{-7, 0, 1, 4, 9, 15, 91} {
		assert.False(t, arithmetic.IsPrime(c), "%d is not prime", c)
	}
}

func TestDistancesAndConversions(t *testing.T) {
	assert.Equal(t, 5.0, arithmetic.Pythagorean(3, 4))
	assert.Equal(t, 5.0, arithmetic.Distance2D(1, 1, 4, 5))
	assert.Equal(t, 77.0, arithmetic.CelsiusToFahrenheit(25))
	assert.Equal(t, 100.0, arithmetic.FahrenheitToCelsius(212))
	assert.Equal(t, 150.0, arithmetic.SimpleInterest(1000, 5, 3))
}

func TestStatistics(t *testing.T) {
	grades := []float64{85, 90, 78, 92, 88}

	assert.Equal(t, 433.0, arithmetic.Sum(grades))
	avg, err := arithmetic.Average(grades)
	require.NoError(t, err)
	assert.InDelta(t, 86.6, avg, 1e-12)

	med, err := arithmetic.Median(grades)
	require.NoError(t, err)
	assert.Equal(t, 88.0, med)
	// caller's order is preserved
	assert.Equal(t, []float64{85, 90, 78, 92, 88}, grades)

	med, err = arithmetic.Median([]float64{4, 1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 2.5, med)

	lo, err := arithmetic.Minimum(grades)
	require.NoError(t, err)
	assert.Equal(t, 78.0, lo)
	hi, err := arithmetic.Maximum(grades)
	require.NoError(t, err)
	assert.Equal(t, 92.0, hi)
	rng, err := arithmetic.Range(grades)
	require.NoError(t, err)
	assert.Equal(t, 14.0, rng)
}

func TestStatistics_Empty(t *testing.T) {
	assert.Equal(t, 0.0, arithmetic.Sum(nil))

	fns := map[string]func([]float64) (float64, error){
		"Average": arithmetic.Average,
		"Minimum": arithmetic.Minimum,
		"Maximum": arithmetic.Maximum,
		"Range":   arithmetic.Range,
		"Median":  arithmetic.Median,
	}
	for name, fn := range fns {
		t.Run(name, func(t *testing.T) {
			_, err := fn(nil)
			require.ErrorIs(t, err, arithmetic.ErrEmptyInput)
			require.ErrorIs(t, err, arithmetic.ErrDomain)
		})
	}
}

// TestStatisticsMatchGonum cross-checks against gonum/stat on random samples.
func TestStatisticsMatchGonum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for n := 1; n <= 25; n += 2 {
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = rng.NormFloat64() * 10
		}

		avg, err := arithmetic.Average(xs)
		require.NoError(t, err)
		assert.InDelta(t, stat.Mean(xs, nil), avg, 1e-12)

		sorted := slices.Clone(xs)
		slices.Sort(sorted)
		med, err := arithmetic.Median(xs)
		require.NoError(t, err)
		assert.Equal(t, stat.Quantile(0.5, stat.Empirical, sorted, nil), med, "odd n=%d", n)

		rg, err := arithmetic.Range(xs)
		require.NoError(t, err)
		assert.Equal(t, sorted[n-1]-sorted[0], rg)
	}
}
