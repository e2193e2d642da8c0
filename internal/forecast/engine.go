package forecast

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"golang-stock-forecaster/internal/entity"
	"golang-stock-forecaster/pkg/logger"
	"golang-stock-forecaster/pkg/utils"
)

const (
	// testFraction is the trailing share of the series held out for
	// evaluation. The split is chronological, never shuffled.
	testFraction = 0.1

	defaultFolds = 5
)

// Metrics describes held-out fit quality on the test segment, in original
// price units. It says nothing about forecast confidence.
type Metrics struct {
	MSE float64 `json:"mse"`
	MAE float64 `json:"mae"`
}

// FitResult is everything one fit call produces.
type FitResult struct {
	Model     *Model
	Metrics   Metrics
	Params    Params // best hyperparameter combination
	Evaluated int    // candidate combinations scored by the search
}

// Engine fits a price regression model and extrapolates it forward. It holds
// configuration only; every call builds its series, scalers and model from
// scratch, so one Engine may serve concurrent requests.
type Engine struct {
	folds   int
	workers int
	log     *logger.Logger
}

// NewEngine creates an engine with 5-fold cross-validation and one search
// worker per CPU.
func NewEngine(log *logger.Logger) *Engine {
	return &Engine{
		folds:   defaultFolds,
		workers: runtime.NumCPU(),
		log:     log,
	}
}

// Fit trains a support-vector regression pipeline on the series: the date
// ordinal is the sole feature, the leading 90% of rows train the model and
// the trailing 10% score it. Hyperparameters come from a cross-validated grid
// search whose size depends on cpuPercent, the CPU utilization sampled by the
// caller at the request boundary: above 80% only the reduced grid is
// searched.
//
// An empty series fails with ErrNoData. Too few rows for the fold count, or
// every candidate failing to fit, fails with ErrFitFailed.
func (e *Engine) Fit(ctx context.Context, series entity.PriceSeries, cpuPercent float64) (*FitResult, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := len(series)
	x := make([]float64, n)
	y := make([]float64, n)
	for i, p := range series {
		x[i] = OrdinalDay(p.Date)
		y[i] = p.Close
	}

	nTest := int(math.Ceil(float64(n) * testFraction))
	nTrain := n - nTest
	if nTrain < e.folds {
		return nil, fmt.Errorf("%w: %d samples leave only %d training rows, need at least %d", ErrFitFailed, n, nTrain, e.folds)
	}

	grid := SelectGrid(cpuPercent)
	result, err := search(x[:nTrain], y[:nTrain], grid, e.folds, e.workers)
	if err != nil {
		return nil, err
	}

	model, err := fitPipeline(result.Best, x[:nTrain], y[:nTrain])
	if err != nil {
		return nil, err
	}

	pred := model.Predict(x[nTrain:])
	metrics := Metrics{
		MSE: meanSquaredError(y[nTrain:], pred),
		MAE: meanAbsoluteError(y[nTrain:], pred),
	}

	if e.log != nil {
		e.log.DebugContext(ctx, "Fitted forecast model",
			logger.StringField("params", result.Best.String()),
			logger.IntField("evaluated", result.Evaluated),
			logger.Float64Field("cpu_percent", cpuPercent),
			logger.Float64Field("mse", metrics.MSE),
			logger.Float64Field("mae", metrics.MAE),
		)
	}

	return &FitResult{
		Model:     model,
		Metrics:   metrics,
		Params:    result.Best,
		Evaluated: result.Evaluated,
	}, nil
}

// Extrapolate predicts one closing price per calendar day for horizonDays
// days, starting the day after the last historical date. Weekends and
// holidays are included; these are calendar days, not trading days.
func (e *Engine) Extrapolate(model *Model, series entity.PriceSeries, horizonDays int) (entity.ForecastSeries, error) {
	if horizonDays <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, horizonDays)
	}
	if model == nil {
		return nil, fmt.Errorf("%w: no fitted model", ErrFitFailed)
	}
	if len(series) == 0 {
		return nil, ErrNoData
	}

	start := utils.NextDay(series.LastDate())
	dates := make([]time.Time, horizonDays)
	ordinals := make([]float64, horizonDays)
	for i := 0; i < horizonDays; i++ {
		dates[i] = start.AddDate(0, 0, i)
		ordinals[i] = OrdinalDay(dates[i])
	}

	pred := model.Predict(ordinals)
	out := make(entity.ForecastSeries, horizonDays)
	for i := range out {
		out[i] = entity.ForecastPoint{Date: dates[i], Predicted: pred[i]}
	}
	return out, nil
}

// OrdinalDay converts a date to its day count since the Unix epoch. The exact
// epoch is irrelevant to the fit because the feature scaler removes the
// offset; only strict monotonicity matters.
func OrdinalDay(t time.Time) float64 {
	return float64(utils.TruncateToDay(t).Unix() / 86400)
}
