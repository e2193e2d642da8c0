package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-forecaster/internal/dashboard/config"
	"golang-stock-forecaster/internal/forecast"
	"golang-stock-forecaster/pkg/logger"
)

const chartFixture = `{
  "chart": {
    "result": [{
      "timestamp": [1704153600, 1704240000, 1704326400],
      "indicators": {
        "quote": [{
          "open":  [187.15, null, 184.22],
          "close": [185.64, null, 184.25]
        }]
      }
    }],
    "error": null
  }
}`

const emptyChartFixture = `{"chart": {"result": [], "error": null}}`

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Yahoo: config.Yahoo{
			BaseURL:             baseURL,
			MaxRequestPerMinute: 100000, // keep the limiter out of the tests
			TimeoutSeconds:      5,
			ProfileCacheTTL:     "1h",
		},
	}
}

func testRepository(t *testing.T, handler http.Handler) (StockDataRepository, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log, err := logger.New("error", "json")
	require.NoError(t, err)

	return NewYahooRepository(testConfig(server.URL), log), server
}

func TestGetDailyHistoryParsesChart(t *testing.T) {
	repo, _ := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v8/finance/chart/AAPL")
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.Equal(t, "1y", r.URL.Query().Get("range"))
		fmt.Fprint(w, chartFixture)
	}))

	series, err := repo.GetDailyHistory(context.Background(), "AAPL", "1y")
	require.NoError(t, err)
	require.Len(t, series, 2, "null bars are skipped")

	assert.Equal(t, 185.64, series[0].Close)
	assert.Equal(t, 187.15, series[0].Open)
	assert.Equal(t, 184.25, series[1].Close)
	assert.True(t, series[0].Date.Before(series[1].Date))
	for _, p := range series {
		assert.Equal(t, time.UTC, p.Date.Location())
		assert.Equal(t, 0, p.Date.Hour())
	}
}

func TestGetDailyHistoryEmptySeries(t *testing.T) {
	repo, _ := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, emptyChartFixture)
	}))

	series, err := repo.GetDailyHistory(context.Background(), "NOPE", "1y")
	assert.Nil(t, series)
	assert.ErrorIs(t, err, forecast.ErrNoData)
}

func TestGetDailyHistoryUpstreamFailure(t *testing.T) {
	repo, _ := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))

	_, err := repo.GetDailyHistory(context.Background(), "AAPL", "1y")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGetDailyHistoryProviderError(t *testing.T) {
	repo, _ := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart": {"result": [], "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}}}`)
	}))

	_, err := repo.GetDailyHistory(context.Background(), "DELISTED", "1y")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "delisted")
}

func TestGetCompanyProfile(t *testing.T) {
	var mux http.ServeMux
	var server *httptest.Server
	profileHits := 0

	mux.HandleFunc("/v10/finance/quoteSummary/AAPL", func(w http.ResponseWriter, r *http.Request) {
		profileHits++
		fmt.Fprintf(w, `{
		  "quoteSummary": {
		    "result": [{
		      "assetProfile": {
		        "longBusinessSummary": "Designs, manufactures and markets smartphones.",
		        "website": %q
		      },
		      "price": {"shortName": "Apple Inc."}
		    }],
		    "error": null
		  }
		}`, server.URL+"/site")
	})
	mux.HandleFunc("/site", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><meta property="og:image" content="/assets/logo.png"></head><body></body></html>`)
	})

	server = httptest.NewServer(&mux)
	t.Cleanup(server.Close)

	log, err := logger.New("error", "json")
	require.NoError(t, err)
	repo := NewYahooRepository(testConfig(server.URL), log)

	profile, err := repo.GetCompanyProfile(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Apple Inc.", profile.Name)
	assert.Equal(t, "Designs, manufactures and markets smartphones.", profile.Summary)
	assert.Equal(t, server.URL+"/assets/logo.png", profile.LogoURL, "relative logo paths resolve against the website")

	// second call is served from the cache
	again, err := repo.GetCompanyProfile(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, profile, again)
	assert.Equal(t, 1, profileHits)
}

func TestGetCompanyProfileNoResult(t *testing.T) {
	repo, _ := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary": {"result": [], "error": null}}`)
	}))

	_, err := repo.GetCompanyProfile(context.Background(), "NOPE")
	assert.ErrorIs(t, err, forecast.ErrNoData)
}
