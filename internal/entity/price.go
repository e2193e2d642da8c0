package entity

import "time"

// PricePoint is a single daily bar reduced to what the dashboard needs.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Open  float64   `json:"open"`
	Close float64   `json:"close"`
}

// PriceSeries is an ordered daily price history, ascending by date.
// It is fetched once per request and never mutated afterwards.
type PriceSeries []PricePoint

// Closes returns the closing prices in series order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, p := range s {
		closes[i] = p.Close
	}
	return closes
}

// LastDate returns the date of the most recent entry. The series must be
// non-empty.
func (s PriceSeries) LastDate() time.Time {
	return s[len(s)-1].Date
}

// ForecastPoint is a predicted closing price for a future calendar day.
type ForecastPoint struct {
	Date      time.Time `json:"date"`
	Predicted float64   `json:"predicted"`
}

// ForecastSeries is an ordered sequence of predictions, one per calendar day,
// starting the day after the last historical date.
type ForecastSeries []ForecastPoint
