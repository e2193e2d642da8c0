package indicator

import "fmt"

// EMA computes the exponential moving average of the values with the
// span-based smoothing factor alpha = 2/(span+1), seeded with the first
// value. The result has the same length as the input.
func EMA(values []float64, span int) ([]float64, error) {
	if span < 1 {
		return nil, fmt.Errorf("ema span must be at least 1, got %d", span)
	}
	if len(values) == 0 {
		return nil, nil
	}

	alpha := 2.0 / (float64(span) + 1)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}
