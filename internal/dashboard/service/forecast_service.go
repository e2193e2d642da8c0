package service

import (
	"context"
	"fmt"

	"golang-stock-forecaster/internal/dashboard/dto"
	"golang-stock-forecaster/internal/dashboard/repository"
	"golang-stock-forecaster/internal/forecast"
	"golang-stock-forecaster/pkg/logger"
	"golang-stock-forecaster/pkg/sysload"
)

// ForecastService runs the fit-then-extrapolate pipeline for one ticker.
type ForecastService interface {
	Forecast(ctx context.Context, code string, days int) (*dto.ForecastResponse, error)
}

// NewForecastService creates a new forecast service. historyRange is the
// provider window the model is fitted on (e.g. "1y"); maxHorizonDays bounds
// the requested horizon, 0 meaning no bound.
func NewForecastService(
	repo repository.StockDataRepository,
	engine *forecast.Engine,
	sampler sysload.Sampler,
	historyRange string,
	maxHorizonDays int,
	logger *logger.Logger,
) ForecastService {
	if historyRange == "" {
		historyRange = "1y"
	}
	return &forecastService{
		repo:           repo,
		engine:         engine,
		sampler:        sampler,
		historyRange:   historyRange,
		maxHorizonDays: maxHorizonDays,
		logger:         logger,
	}
}

type forecastService struct {
	repo           repository.StockDataRepository
	engine         *forecast.Engine
	sampler        sysload.Sampler
	historyRange   string
	maxHorizonDays int
	logger         *logger.Logger
}

func (s *forecastService) Forecast(ctx context.Context, code string, days int) (*dto.ForecastResponse, error) {
	// horizon errors are reported before anything is fetched
	if days <= 0 {
		return nil, fmt.Errorf("%w: got %d", forecast.ErrInvalidHorizon, days)
	}
	if s.maxHorizonDays > 0 && days > s.maxHorizonDays {
		return nil, fmt.Errorf("%w: %d exceeds the maximum of %d", forecast.ErrInvalidHorizon, days, s.maxHorizonDays)
	}

	series, err := s.repo.GetDailyHistory(ctx, code, s.historyRange)
	if err != nil {
		return nil, err
	}

	// sampled fresh on every request, never cached; a failed sample degrades
	// to the full grid instead of failing the forecast
	cpuPercent, err := s.sampler.CPUPercent(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "CPU sample failed, assuming idle", logger.ErrorField(err))
		cpuPercent = 0
	}

	fit, err := s.engine.Fit(ctx, series, cpuPercent)
	if err != nil {
		return nil, err
	}

	predicted, err := s.engine.Extrapolate(fit.Model, series, days)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Forecast produced",
		logger.StringField("code", code),
		logger.IntField("days", days),
		logger.StringField("params", fit.Params.String()),
		logger.Float64Field("cpu_percent", cpuPercent),
		logger.Float64Field("mse", fit.Metrics.MSE),
		logger.Float64Field("mae", fit.Metrics.MAE),
	)

	points := make([]dto.ForecastPointDTO, len(predicted))
	for i, p := range predicted {
		points[i] = dto.ForecastPointDTO{
			Date:      p.Date.Format(dateLayout),
			Predicted: p.Predicted,
		}
	}

	return &dto.ForecastResponse{
		Code:       code,
		Days:       days,
		MSE:        fit.Metrics.MSE,
		MAE:        fit.Metrics.MAE,
		BestParams: fit.Params.String(),
		Evaluated:  fit.Evaluated,
		CPUPercent: cpuPercent,
		History:    mapPricePoints(series),
		Forecast:   points,
	}, nil
}
