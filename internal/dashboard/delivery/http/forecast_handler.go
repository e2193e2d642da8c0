package http

import (
	"net/http"

	"golang-stock-forecaster/internal/dashboard/dto"
	"golang-stock-forecaster/internal/dashboard/service"
	"golang-stock-forecaster/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ForecastHandler handles HTTP requests for price forecasts.
type ForecastHandler struct {
	forecastService service.ForecastService
	logger          *logger.Logger
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(forecastService service.ForecastService, logger *logger.Logger) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService, logger: logger}
}

// RegisterRoutes registers the forecast routes to the Echo group.
func (h *ForecastHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/:code/forecast", h.CreateForecast)
}

// CreateForecast godoc
// @Summary Forecast the closing price
// @Description Fit a regression model on one year of daily closes and extrapolate it the requested number of calendar days
// @Tags forecast
// @Accept  json
// @Produce  json
// @Param   code     path  string               true  "Ticker symbol"
// @Param   request  body  dto.ForecastRequest  true  "Forecast horizon"
// @Success 200 {object} dto.ForecastResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /stocks/{code}/forecast [post]
func (h *ForecastHandler) CreateForecast(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Ticker symbol is required"})
	}

	var req dto.ForecastRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	result, err := h.forecastService.Forecast(c.Request().Context(), code, req.Days)
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Forecast request failed",
			logger.StringField("code", code),
			logger.IntField("days", req.Days),
			logger.ErrorField(err),
		)
		return c.JSON(statusFor(err), dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}
