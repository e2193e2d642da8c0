package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-forecaster/internal/dashboard/repository"
	"golang-stock-forecaster/internal/entity"
	"golang-stock-forecaster/internal/forecast"
	"golang-stock-forecaster/pkg/logger"
	"golang-stock-forecaster/pkg/sysload"
)

type fakeStockRepo struct {
	series       entity.PriceSeries
	err          error
	historyCalls int
}

func (f *fakeStockRepo) GetDailyHistory(ctx context.Context, code, rng string) (entity.PriceSeries, error) {
	f.historyCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.series, nil
}

func (f *fakeStockRepo) GetCompanyProfile(ctx context.Context, code string) (*entity.CompanyProfile, error) {
	return &entity.CompanyProfile{Code: code}, nil
}

var _ repository.StockDataRepository = (*fakeStockRepo)(nil)

func trendSeries(n int) entity.PriceSeries {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	series := make(entity.PriceSeries, n)
	for i := 0; i < n; i++ {
		series[i] = entity.PricePoint{
			Date:  start.AddDate(0, 0, i),
			Open:  100 + 0.4*float64(i),
			Close: 100 + 0.4*float64(i) + 2*math.Sin(float64(i)/6),
		}
	}
	return series
}

func newForecastService(t *testing.T, repo repository.StockDataRepository, cpu float64) ForecastService {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)
	engine := forecast.NewEngine(log)
	return NewForecastService(repo, engine, sysload.Static(cpu), "1y", 365, log)
}

func TestForecastInvalidHorizonBeforeFetch(t *testing.T) {
	repo := &fakeStockRepo{series: trendSeries(50)}
	svc := newForecastService(t, repo, 95)

	for _, days := range []int{0, -7} {
		result, err := svc.Forecast(context.Background(), "AAPL", days)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, forecast.ErrInvalidHorizon)
	}
	assert.Equal(t, 0, repo.historyCalls, "horizon validation happens before any fetch")
}

func TestForecastHorizonAboveMaximum(t *testing.T) {
	repo := &fakeStockRepo{series: trendSeries(50)}
	svc := newForecastService(t, repo, 95)

	_, err := svc.Forecast(context.Background(), "AAPL", 1000)
	assert.ErrorIs(t, err, forecast.ErrInvalidHorizon)
	assert.Equal(t, 0, repo.historyCalls)
}

func TestForecastHappyPath(t *testing.T) {
	repo := &fakeStockRepo{series: trendSeries(50)}
	svc := newForecastService(t, repo, 95)

	result, err := svc.Forecast(context.Background(), "AAPL", 10)
	require.NoError(t, err)

	assert.Equal(t, "AAPL", result.Code)
	assert.Equal(t, 10, result.Days)
	assert.Len(t, result.Forecast, 10)
	assert.Len(t, result.History, 50)
	assert.Equal(t, 95.0, result.CPUPercent)
	assert.Equal(t, 8, result.Evaluated, "high load searches the reduced grid")
	assert.GreaterOrEqual(t, result.MSE, 0.0)
	assert.GreaterOrEqual(t, result.MAE, 0.0)

	// forecast starts the day after the last historical bar
	assert.Equal(t, "2024-04-20", result.Forecast[0].Date)
	assert.Equal(t, 1, repo.historyCalls)
}

func TestForecastFullGridAtLowLoad(t *testing.T) {
	repo := &fakeStockRepo{series: trendSeries(50)}
	svc := newForecastService(t, repo, 10)

	result, err := svc.Forecast(context.Background(), "AAPL", 5)
	require.NoError(t, err)
	assert.Equal(t, 80, result.Evaluated)
}

func TestForecastUpstreamErrorPropagates(t *testing.T) {
	repo := &fakeStockRepo{err: repository.ErrUpstream}
	svc := newForecastService(t, repo, 95)

	result, err := svc.Forecast(context.Background(), "AAPL", 10)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, repository.ErrUpstream)
}

func TestForecastEmptySeries(t *testing.T) {
	repo := &fakeStockRepo{series: entity.PriceSeries{}}
	svc := newForecastService(t, repo, 95)

	_, err := svc.Forecast(context.Background(), "GHOST", 10)
	assert.ErrorIs(t, err, forecast.ErrNoData)
}
