package dto

// ForecastRequest asks for a price forecast a number of days ahead.
type ForecastRequest struct {
	Days int `json:"days" example:"30"`
}

// ForecastPointDTO is one predicted price in API responses.
type ForecastPointDTO struct {
	Date      string  `json:"date" example:"2025-08-23"`
	Predicted float64 `json:"predicted"`
}

// ForecastResponse carries the predicted series together with the history it
// was fitted on and the held-out accuracy of the fitted model. MSE and MAE
// describe historical fit quality only, not forecast confidence.
type ForecastResponse struct {
	Code       string             `json:"code"`
	Days       int                `json:"days"`
	MSE        float64            `json:"mse"`
	MAE        float64            `json:"mae"`
	BestParams string             `json:"best_params"`
	Evaluated  int                `json:"evaluated_combinations"`
	CPUPercent float64            `json:"cpu_percent"`
	History    []PricePointDTO    `json:"history"`
	Forecast   []ForecastPointDTO `json:"forecast"`
}
