package repository

import (
	"context"
	"errors"

	"golang-stock-forecaster/internal/entity"
)

// ErrUpstream indicates a network or provider failure while talking to the
// market data provider. Requests are not retried; the error is surfaced to
// the caller as-is.
var ErrUpstream = errors.New("market data provider request failed")

// StockDataRepository fetches market data for the dashboard and the forecast
// engine.
type StockDataRepository interface {
	// GetDailyHistory returns the ordered (date, open, close) daily series
	// for the given range, e.g. "1y". An empty provider result fails with
	// forecast.ErrNoData.
	GetDailyHistory(ctx context.Context, code, rng string) (entity.PriceSeries, error)

	// GetCompanyProfile returns descriptive metadata for the ticker. Results
	// are cached in-process with a TTL; profiles are UI metadata and not part
	// of the per-request forecast lifecycle.
	GetCompanyProfile(ctx context.Context, code string) (*entity.CompanyProfile, error)
}
