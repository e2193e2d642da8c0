package forecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture(n int) ([]float64, []float64) {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(20000 + i) // ordinal-like feature
		y[i] = 100 + 0.5*float64(i) + 2*math.Sin(float64(i)/5)
	}
	return x, y
}

func TestSearchEvaluatesWholeGrid(t *testing.T) {
	x, y := searchFixture(40)

	result, err := search(x, y, ReducedGrid(), 5, 4)
	require.NoError(t, err)
	assert.Equal(t, 8, result.Evaluated)
	assert.False(t, math.IsNaN(result.BestScore))
	assert.LessOrEqual(t, result.BestScore, 0.0, "score is negative MSE")
}

func TestSearchTooFewSamplesForFolds(t *testing.T) {
	x, y := searchFixture(3)

	result, err := search(x, y, ReducedGrid(), 5, 4)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrFitFailed)
}

func TestSearchDeterministicSelection(t *testing.T) {
	x, y := searchFixture(40)

	first, err := search(x, y, ReducedGrid(), 5, 4)
	require.NoError(t, err)
	second, err := search(x, y, ReducedGrid(), 5, 1) // worker count must not matter
	require.NoError(t, err)

	assert.Equal(t, first.Best.String(), second.Best.String())
	assert.InDelta(t, first.BestScore, second.BestScore, 1e-9)
}

func TestCrossValidateUsesContiguousFolds(t *testing.T) {
	// 12 samples over 5 folds: fold sizes 3,3,2,2,2
	x, y := searchFixture(12)

	score, err := crossValidate(x, y, Params{C: 1, Epsilon: 0.1, Gamma: GammaScale()}, 5)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(score))
	assert.LessOrEqual(t, score, 0.0)
}

func TestScalerRoundTrip(t *testing.T) {
	s := &StandardScaler{}
	xs := []float64{2, 4, 6, 8, 10}
	s.Fit(xs)

	assert.InDelta(t, 6, s.Mean, 1e-12)

	scaled := s.Transform(xs)
	mean := 0.0
	for _, v := range scaled {
		mean += v
	}
	assert.InDelta(t, 0, mean/float64(len(scaled)), 1e-12)

	for i, v := range scaled {
		assert.InDelta(t, xs[i], s.InverseOne(v), 1e-12)
	}
}

func TestScalerConstantInput(t *testing.T) {
	s := &StandardScaler{}
	s.Fit([]float64{5, 5, 5})

	assert.Equal(t, 0.0, s.TransformOne(5))
	assert.Equal(t, 5.0, s.InverseOne(0))
}
