package dto

// CompanyProfileResponse is the dashboard header metadata for a ticker.
type CompanyProfileResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
	Website string `json:"website"`
	LogoURL string `json:"logo_url"`
}

// PricePointDTO is one daily bar in API responses.
type PricePointDTO struct {
	Date  string  `json:"date" example:"2025-08-22"`
	Open  float64 `json:"open"`
	Close float64 `json:"close"`
}

// HistoryResponse is the open/close series for the price chart.
type HistoryResponse struct {
	Code   string          `json:"code"`
	Range  string          `json:"range"`
	Points []PricePointDTO `json:"points"`
}

// IndicatorPointDTO is one EMA value in API responses.
type IndicatorPointDTO struct {
	Date string  `json:"date" example:"2025-08-22"`
	EMA  float64 `json:"ema"`
}

// IndicatorResponse is the exponential-moving-average series for the
// indicator chart.
type IndicatorResponse struct {
	Code   string              `json:"code"`
	Range  string              `json:"range"`
	Span   int                 `json:"span"`
	Points []IndicatorPointDTO `json:"points"`
}
