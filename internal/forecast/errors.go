package forecast

import "errors"

var (
	// ErrNoData indicates the market data provider returned an empty series
	// for the requested ticker and window.
	ErrNoData = errors.New("no price data available")

	// ErrInvalidHorizon indicates a non-positive forecast horizon. It is
	// reported before any fetching or fitting happens.
	ErrInvalidHorizon = errors.New("forecast horizon must be a positive number of days")

	// ErrFitFailed indicates the regressor or the hyperparameter search could
	// not produce a model, e.g. too few samples for the fold count or every
	// candidate failing to fit. There is no fallback parameter set.
	ErrFitFailed = errors.New("model fitting failed")
)
