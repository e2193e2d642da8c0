package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridSizes(t *testing.T) {
	assert.Len(t, FullGrid().Candidates(), 80)
	assert.Len(t, ReducedGrid().Candidates(), 8)
}

func TestSelectGrid(t *testing.T) {
	assert.Len(t, SelectGrid(95).Candidates(), 8)
	assert.Len(t, SelectGrid(80.5).Candidates(), 8)
	assert.Len(t, SelectGrid(80).Candidates(), 80, "the threshold is exclusive")
	assert.Len(t, SelectGrid(10).Candidates(), 80)
	assert.Len(t, SelectGrid(0).Candidates(), 80)
}

func TestCandidateOrderIsStable(t *testing.T) {
	first := ReducedGrid().Candidates()
	second := ReducedGrid().Candidates()
	for i := range first {
		assert.Equal(t, first[i].String(), second[i].String())
	}
	// C varies slowest, gamma fastest
	assert.Equal(t, "C=1 epsilon=0.1 gamma=scale", first[0].String())
	assert.Equal(t, "C=1 epsilon=0.1 gamma=0.1", first[1].String())
	assert.Equal(t, "C=10 epsilon=0.5 gamma=0.1", first[7].String())
}

func TestGammaResolve(t *testing.T) {
	// standardized input has unit variance, so "scale" resolves to 1
	scaled := []float64{-1, -1, 1, 1}
	assert.InDelta(t, 1.0, GammaScale().Resolve(scaled), 1e-9)
	assert.Equal(t, 1.0, GammaAuto().Resolve(scaled))
	assert.Equal(t, 0.25, GammaValue(0.25).Resolve(scaled))
}

func TestGammaResolveConstantInput(t *testing.T) {
	constant := []float64{2, 2, 2, 2}
	assert.Equal(t, 1.0, GammaScale().Resolve(constant))
}
