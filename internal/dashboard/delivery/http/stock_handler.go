package http

import (
	"errors"
	"net/http"
	"strconv"

	"golang-stock-forecaster/internal/dashboard/dto"
	"golang-stock-forecaster/internal/dashboard/repository"
	"golang-stock-forecaster/internal/dashboard/service"
	"golang-stock-forecaster/internal/forecast"
	"golang-stock-forecaster/pkg/logger"

	"github.com/labstack/echo/v4"
)

const (
	defaultRange = "1y"
	defaultSpan  = 20
)

// StockHandler handles HTTP requests for company and chart data.
type StockHandler struct {
	stockService service.StockService
	logger       *logger.Logger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService service.StockService, logger *logger.Logger) *StockHandler {
	return &StockHandler{stockService: stockService, logger: logger}
}

// RegisterRoutes registers the stock routes to the Echo group.
func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/:code/profile", h.GetProfile)
	g.GET("/:code/history", h.GetHistory)
	g.GET("/:code/indicator", h.GetIndicator)
}

// GetProfile godoc
// @Summary Get company profile
// @Description Get company name, business summary, website and logo for a ticker
// @Tags stocks
// @Produce  json
// @Param   code  path    string  true    "Ticker symbol"
// @Success 200 {object} dto.CompanyProfileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /stocks/{code}/profile [get]
func (h *StockHandler) GetProfile(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Ticker symbol is required"})
	}

	profile, err := h.stockService.GetProfile(c.Request().Context(), code)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// GetHistory godoc
// @Summary Get daily price history
// @Description Get the daily open/close series for the price chart
// @Tags stocks
// @Produce  json
// @Param   code   path   string  true   "Ticker symbol"
// @Param   range  query  string  false  "History range (e.g. 1mo, 6mo, 1y)"  default(1y)
// @Success 200 {object} dto.HistoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /stocks/{code}/history [get]
func (h *StockHandler) GetHistory(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Ticker symbol is required"})
	}
	rng := c.QueryParam("range")
	if rng == "" {
		rng = defaultRange
	}

	history, err := h.stockService.GetHistory(c.Request().Context(), code, rng)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, history)
}

// GetIndicator godoc
// @Summary Get the EMA indicator series
// @Description Get the exponential moving average of the closing price
// @Tags stocks
// @Produce  json
// @Param   code   path   string  true   "Ticker symbol"
// @Param   range  query  string  false  "History range (e.g. 1mo, 6mo, 1y)"  default(1y)
// @Param   span   query  int     false  "EMA span in days"  default(20)
// @Success 200 {object} dto.IndicatorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /stocks/{code}/indicator [get]
func (h *StockHandler) GetIndicator(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Ticker symbol is required"})
	}
	rng := c.QueryParam("range")
	if rng == "" {
		rng = defaultRange
	}

	span := defaultSpan
	if raw := c.QueryParam("span"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid span"})
		}
		span = parsed
	}

	ind, err := h.stockService.GetIndicator(c.Request().Context(), code, rng, span)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, ind)
}

func (h *StockHandler) writeError(c echo.Context, err error) error {
	h.logger.ErrorContext(c.Request().Context(), "Stock request failed", logger.ErrorField(err))
	return c.JSON(statusFor(err), dto.ErrorResponse{Error: err.Error()})
}

// statusFor maps domain error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, forecast.ErrNoData):
		return http.StatusNotFound
	case errors.Is(err, forecast.ErrInvalidHorizon):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
