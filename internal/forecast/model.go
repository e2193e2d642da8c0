package forecast

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Model is a fitted regression pipeline: a feature scaler, a target scaler
// and the trained regressor. It is immutable once returned by Fit.
type Model struct {
	xScaler *StandardScaler
	yScaler *StandardScaler
	reg     *svr
}

// Predict returns a predicted closing price for each ordinal day number.
// Ordinals outside the historical range are allowed; the prediction is
// well-defined but carries no accuracy guarantee.
func (m *Model) Predict(ordinals []float64) []float64 {
	out := make([]float64, len(ordinals))
	for i, o := range ordinals {
		out[i] = m.yScaler.InverseOne(m.reg.predict(m.xScaler.TransformOne(o)))
	}
	return out
}

// fitPipeline standardizes the feature, standardizes the target and trains
// the regressor with the given hyperparameters. Gamma heuristics resolve
// against the standardized feature.
func fitPipeline(p Params, x, y []float64) (*Model, error) {
	xScaler := &StandardScaler{}
	xScaler.Fit(x)
	yScaler := &StandardScaler{}
	yScaler.Fit(y)

	sx := xScaler.Transform(x)
	sy := yScaler.Transform(y)

	reg := &svr{c: p.C, epsilon: p.Epsilon, gamma: p.Gamma.Resolve(sx)}
	if err := reg.fit(sx, sy); err != nil {
		return nil, err
	}
	return &Model{xScaler: xScaler, yScaler: yScaler, reg: reg}, nil
}

func meanSquaredError(yTrue, yPred []float64) float64 {
	r := make([]float64, len(yTrue))
	floats.SubTo(r, yTrue, yPred)
	floats.Mul(r, r)
	return stat.Mean(r, nil)
}

func meanAbsoluteError(yTrue, yPred []float64) float64 {
	r := make([]float64, len(yTrue))
	for i := range yTrue {
		r[i] = math.Abs(yTrue[i] - yPred[i])
	}
	return stat.Mean(r, nil)
}
