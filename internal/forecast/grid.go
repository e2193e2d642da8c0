package forecast

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// HighLoadCPUPercent is the utilization threshold above which the search
// falls back to the reduced grid to bound latency.
const HighLoadCPUPercent = 80.0

// Gamma is the RBF kernel coefficient. Besides literal values it supports the
// "scale" and "auto" heuristics, which resolve against the standardized
// training inputs at fit time.
type Gamma struct {
	mode  string // "scale", "auto", or "" for a literal value
	value float64
}

// GammaScale resolves to 1 / (n_features * Var(X)).
func GammaScale() Gamma { return Gamma{mode: "scale"} }

// GammaAuto resolves to 1 / n_features.
func GammaAuto() Gamma { return Gamma{mode: "auto"} }

// GammaValue is a literal kernel coefficient.
func GammaValue(v float64) Gamma { return Gamma{value: v} }

// Resolve turns the gamma setting into a numeric coefficient for the given
// standardized inputs. The pipeline has a single feature.
func (g Gamma) Resolve(scaledX []float64) float64 {
	switch g.mode {
	case "scale":
		mean := stat.Mean(scaledX, nil)
		variance := stat.MomentAbout(2, scaledX, mean, nil)
		if variance <= 0 {
			return 1
		}
		return 1 / variance
	case "auto":
		return 1
	default:
		return g.value
	}
}

func (g Gamma) String() string {
	if g.mode != "" {
		return g.mode
	}
	return strconv.FormatFloat(g.value, 'g', -1, 64)
}

// Params is one hyperparameter combination for the regressor.
type Params struct {
	C       float64
	Epsilon float64
	Gamma   Gamma
}

func (p Params) String() string {
	return fmt.Sprintf("C=%g epsilon=%g gamma=%s", p.C, p.Epsilon, p.Gamma)
}

// ParamGrid spans the cartesian product of its axes.
type ParamGrid struct {
	C       []float64
	Epsilon []float64
	Gamma   []Gamma
}

// Candidates enumerates the grid in fixed C, epsilon, gamma order so repeated
// searches over the same data select the same combination.
func (g ParamGrid) Candidates() []Params {
	out := make([]Params, 0, len(g.C)*len(g.Epsilon)*len(g.Gamma))
	for _, c := range g.C {
		for _, eps := range g.Epsilon {
			for _, gamma := range g.Gamma {
				out = append(out, Params{C: c, Epsilon: eps, Gamma: gamma})
			}
		}
	}
	return out
}

// FullGrid is the exhaustive 80-combination search space.
func FullGrid() ParamGrid {
	return ParamGrid{
		C:       []float64{0.1, 1, 10, 100},
		Epsilon: []float64{0.01, 0.1, 0.5, 1},
		Gamma:   []Gamma{GammaScale(), GammaAuto(), GammaValue(0.01), GammaValue(0.1), GammaValue(1)},
	}
}

// ReducedGrid is the 8-combination space searched under high system load.
func ReducedGrid() ParamGrid {
	return ParamGrid{
		C:       []float64{1, 10},
		Epsilon: []float64{0.1, 0.5},
		Gamma:   []Gamma{GammaScale(), GammaValue(0.1)},
	}
}

// SelectGrid picks the search space for the sampled CPU utilization.
func SelectGrid(cpuPercent float64) ParamGrid {
	if cpuPercent > HighLoadCPUPercent {
		return ReducedGrid()
	}
	return FullGrid()
}
