package forecast

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler centers values to zero mean and unit variance. It is fitted
// on training data only and then applied to everything that flows through the
// model, including future ordinals at prediction time.
type StandardScaler struct {
	Mean float64
	Std  float64
}

// Fit computes mean and population standard deviation of xs.
func (s *StandardScaler) Fit(xs []float64) {
	s.Mean = stat.Mean(xs, nil)
	variance := stat.MomentAbout(2, xs, s.Mean, nil)
	s.Std = math.Sqrt(variance)
	if s.Std == 0 || math.IsNaN(s.Std) {
		// constant input: behave like identity around the mean
		s.Std = 1
	}
}

// Transform returns the standardized copy of xs.
func (s *StandardScaler) Transform(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = (v - s.Mean) / s.Std
	}
	return out
}

// TransformOne standardizes a single value.
func (s *StandardScaler) TransformOne(v float64) float64 {
	return (v - s.Mean) / s.Std
}

// InverseOne maps a standardized value back to the original space.
func (s *StandardScaler) InverseOne(v float64) float64 {
	return v*s.Std + s.Mean
}
