package forecast

import (
	"fmt"
	"math"
)

const (
	svrMaxSweeps = 1000
	svrTol       = 1e-4 // relative to C, in dual coefficient units
)

// svr is an epsilon-insensitive support vector regressor with an RBF kernel.
//
// The dual is solved by exact coordinate ascent: each dual coefficient
// beta_i = alpha_i - alpha_i* is maximized in closed form (soft threshold on
// the partial residual, clipped to [-C, C]) while the others are held fixed.
// The intercept is absorbed by adding a constant component to the kernel, so
// the problem stays box-constrained. The sweep order is fixed and nothing is
// randomized, so fitting the same data twice yields the same coefficients.
type svr struct {
	c       float64
	epsilon float64
	gamma   float64

	x    []float64 // training inputs, standardized
	beta []float64 // dual coefficients
}

func (m *svr) kernel(a, b float64) float64 {
	d := a - b
	return math.Exp(-m.gamma * d * d)
}

func (m *svr) fit(x, y []float64) error {
	n := len(x)
	if n == 0 {
		return fmt.Errorf("%w: empty training set", ErrFitFailed)
	}
	if m.c <= 0 {
		return fmt.Errorf("%w: C must be positive, got %g", ErrFitFailed, m.c)
	}

	// +1 is the constant kernel component carrying the intercept
	k := make([][]float64, n)
	for i := 0; i < n; i++ {
		k[i] = make([]float64, n)
		for j := 0; j <= i; j++ {
			v := m.kernel(x[i], x[j]) + 1
			k[i][j] = v
			k[j][i] = v
		}
	}

	beta := make([]float64, n)
	f := make([]float64, n) // f[i] = sum_j beta_j * k[i][j]
	tol := svrTol * m.c

	for sweep := 0; sweep < svrMaxSweeps; sweep++ {
		maxStep := 0.0
		for i := 0; i < n; i++ {
			// partial residual with beta_i removed
			r := y[i] - f[i] + beta[i]*k[i][i]

			var nb float64
			switch {
			case r > m.epsilon:
				nb = (r - m.epsilon) / k[i][i]
			case r < -m.epsilon:
				nb = (r + m.epsilon) / k[i][i]
			}
			nb = math.Max(-m.c, math.Min(m.c, nb))

			if d := nb - beta[i]; d != 0 {
				beta[i] = nb
				for j := 0; j < n; j++ {
					f[j] += d * k[i][j]
				}
				if ad := math.Abs(d); ad > maxStep {
					maxStep = ad
				}
			}
		}
		if maxStep <= tol {
			break
		}
	}

	m.x = append([]float64(nil), x...)
	m.beta = beta
	return nil
}

// predict evaluates the fitted decision function at a standardized input. The
// kernel expansion is a continuous function, so inputs outside the training
// range are valid (that is what extrapolation relies on).
func (m *svr) predict(q float64) float64 {
	var s float64
	for j, xj := range m.x {
		s += m.beta[j] * (m.kernel(q, xj) + 1)
	}
	return s
}
