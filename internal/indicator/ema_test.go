package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEMASpanThree(t *testing.T) {
	// alpha = 2/(3+1) = 0.5, seeded with the first value
	out, err := EMA([]float64{1, 2, 3}, 3)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.InDelta(t, 1.0, out[0], 1e-12)
	assert.InDelta(t, 1.5, out[1], 1e-12)
	assert.InDelta(t, 2.25, out[2], 1e-12)
}

func TestEMAConstantInput(t *testing.T) {
	out, err := EMA([]float64{7, 7, 7, 7}, 20)
	require.NoError(t, err)
	for _, v := range out {
		assert.InDelta(t, 7.0, v, 1e-12)
	}
}

func TestEMAEmptyInput(t *testing.T) {
	out, err := EMA(nil, 20)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestEMAInvalidSpan(t *testing.T) {
	_, err := EMA([]float64{1, 2}, 0)
	assert.Error(t, err)
}

func TestEMALagsBehindTrend(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}
	out, err := EMA(values, 5)
	require.NoError(t, err)
	for i := 1; i < len(values); i++ {
		assert.Less(t, out[i], values[i], "EMA trails a rising series")
		assert.Greater(t, out[i], out[i-1], "EMA still rises with it")
	}
}
