package service

import (
	"context"

	"golang-stock-forecaster/internal/dashboard/dto"
	"golang-stock-forecaster/internal/dashboard/repository"
	"golang-stock-forecaster/internal/entity"
	"golang-stock-forecaster/internal/indicator"
	"golang-stock-forecaster/pkg/logger"
)

const dateLayout = "2006-01-02"

// StockService serves the dashboard's company and chart data.
type StockService interface {
	GetProfile(ctx context.Context, code string) (*dto.CompanyProfileResponse, error)
	GetHistory(ctx context.Context, code, rng string) (*dto.HistoryResponse, error)
	GetIndicator(ctx context.Context, code, rng string, span int) (*dto.IndicatorResponse, error)
}

// NewStockService creates a new stock service.
func NewStockService(repo repository.StockDataRepository, logger *logger.Logger) StockService {
	return &stockService{repo: repo, logger: logger}
}

type stockService struct {
	repo   repository.StockDataRepository
	logger *logger.Logger
}

func (s *stockService) GetProfile(ctx context.Context, code string) (*dto.CompanyProfileResponse, error) {
	profile, err := s.repo.GetCompanyProfile(ctx, code)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyProfileResponse{
		Code:    profile.Code,
		Name:    profile.Name,
		Summary: profile.Summary,
		Website: profile.Website,
		LogoURL: profile.LogoURL,
	}, nil
}

func (s *stockService) GetHistory(ctx context.Context, code, rng string) (*dto.HistoryResponse, error) {
	series, err := s.repo.GetDailyHistory(ctx, code, rng)
	if err != nil {
		return nil, err
	}
	return &dto.HistoryResponse{
		Code:   code,
		Range:  rng,
		Points: mapPricePoints(series),
	}, nil
}

func (s *stockService) GetIndicator(ctx context.Context, code, rng string, span int) (*dto.IndicatorResponse, error) {
	series, err := s.repo.GetDailyHistory(ctx, code, rng)
	if err != nil {
		return nil, err
	}

	ema, err := indicator.EMA(series.Closes(), span)
	if err != nil {
		return nil, err
	}

	points := make([]dto.IndicatorPointDTO, len(series))
	for i, p := range series {
		points[i] = dto.IndicatorPointDTO{
			Date: p.Date.Format(dateLayout),
			EMA:  ema[i],
		}
	}
	return &dto.IndicatorResponse{
		Code:   code,
		Range:  rng,
		Span:   span,
		Points: points,
	}, nil
}

func mapPricePoints(series entity.PriceSeries) []dto.PricePointDTO {
	points := make([]dto.PricePointDTO, len(series))
	for i, p := range series {
		points[i] = dto.PricePointDTO{
			Date:  p.Date.Format(dateLayout),
			Open:  p.Open,
			Close: p.Close,
		}
	}
	return points
}
