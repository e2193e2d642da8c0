package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang-stock-forecaster/internal/dashboard/config"
	"golang-stock-forecaster/internal/entity"
	"golang-stock-forecaster/internal/forecast"
	"golang-stock-forecaster/pkg/logger"
	"golang-stock-forecaster/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

type yahooRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
	profileCache   *gocache.Cache
}

// NewYahooRepository creates a StockDataRepository backed by the Yahoo
// Finance public API.
func NewYahooRepository(cfg *config.Config, log *logger.Logger) StockDataRepository {
	maxPerMinute := cfg.Yahoo.MaxRequestPerMinute
	if maxPerMinute <= 0 {
		maxPerMinute = 60
	}
	requestLimiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(maxPerMinute)), 1)

	timeout := time.Duration(cfg.Yahoo.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	profileTTL, err := time.ParseDuration(cfg.Yahoo.ProfileCacheTTL)
	if err != nil || profileTTL <= 0 {
		profileTTL = time.Hour
	}

	return &yahooRepository{
		cfg:            cfg,
		log:            log,
		httpClient:     &http.Client{Timeout: timeout},
		requestLimiter: requestLimiter,
		profileCache:   gocache.New(profileTTL, 2*profileTTL),
	}
}

func (r *yahooRepository) baseURL() string {
	if r.cfg.Yahoo.BaseURL != "" {
		return r.cfg.Yahoo.BaseURL
	}
	return defaultYahooBaseURL
}

// yahooChart is the response structure of the v8 chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open  []interface{} `json:"open"`
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// yahooQuoteSummary is the response structure of the v10 quoteSummary API.
type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile struct {
				LongBusinessSummary string `json:"longBusinessSummary"`
				Website             string `json:"website"`
			} `json:"assetProfile"`
			Price struct {
				ShortName string `json:"shortName"`
				LongName  string `json:"longName"`
			} `json:"price"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (r *yahooRepository) GetDailyHistory(ctx context.Context, code, rng string) (entity.PriceSeries, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		r.baseURL(), url.PathEscape(code), url.QueryEscape(rng))

	body, err := r.sendRequest(ctx, u)
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("%w: decode chart response: %v", ErrUpstream, err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrUpstream, chart.Chart.Error.Code, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("%w for %s", forecast.ErrNoData, code)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w for %s", forecast.ErrNoData, code)
	}
	quote := result.Indicators.Quote[0]

	series := make(entity.PriceSeries, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || i >= len(quote.Open) {
			break
		}
		open := toFloat(quote.Open[i])
		closePrice := toFloat(quote.Close[i])
		if closePrice == 0 {
			continue // null bar (holiday, halted session)
		}
		series = append(series, entity.PricePoint{
			Date:  utils.TruncateToDay(time.Unix(ts, 0)),
			Open:  open,
			Close: closePrice,
		})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w for %s", forecast.ErrNoData, code)
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })

	r.log.DebugContext(ctx, "Fetched daily history",
		logger.StringField("code", code),
		logger.StringField("range", rng),
		logger.IntField("bars", len(series)),
	)
	return series, nil
}

func (r *yahooRepository) GetCompanyProfile(ctx context.Context, code string) (*entity.CompanyProfile, error) {
	if cached, ok := r.profileCache.Get(code); ok {
		return cached.(*entity.CompanyProfile), nil
	}

	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=assetProfile%%2Cprice",
		r.baseURL(), url.PathEscape(code))

	body, err := r.sendRequest(ctx, u)
	if err != nil {
		return nil, err
	}

	var summary yahooQuoteSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("%w: decode quote summary: %v", ErrUpstream, err)
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrUpstream, summary.QuoteSummary.Error.Code, summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%w for %s", forecast.ErrNoData, code)
	}

	result := summary.QuoteSummary.Result[0]
	name := result.Price.ShortName
	if name == "" {
		name = result.Price.LongName
	}

	profile := &entity.CompanyProfile{
		Code:    code,
		Name:    name,
		Summary: result.AssetProfile.LongBusinessSummary,
		Website: result.AssetProfile.Website,
	}
	if profile.Website != "" {
		// best effort: a missing logo never fails the profile call
		if logo, err := r.scrapeLogo(ctx, profile.Website); err != nil {
			r.log.DebugContext(ctx, "Logo scrape failed",
				logger.StringField("code", code), logger.ErrorField(err))
		} else {
			profile.LogoURL = logo
		}
	}

	r.profileCache.SetDefault(code, profile)
	return profile, nil
}

// scrapeLogo fetches the company website and pulls a logo candidate out of
// the page head: og:image first, then apple-touch-icon, then a plain icon.
func (r *yahooRepository) scrapeLogo(ctx context.Context, site string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, site, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d from %s", resp.StatusCode, site)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	candidate, _ := doc.Find(`meta[property="og:image"]`).Attr("content")
	if candidate == "" {
		candidate, _ = doc.Find(`link[rel="apple-touch-icon"]`).Attr("href")
	}
	if candidate == "" {
		candidate, _ = doc.Find(`link[rel="icon"]`).Attr("href")
	}
	if candidate == "" {
		return "", fmt.Errorf("no logo candidate on %s", site)
	}

	if strings.HasPrefix(candidate, "http://") || strings.HasPrefix(candidate, "https://") {
		return candidate, nil
	}
	base, err := url.Parse(site)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(candidate)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

func (r *yahooRepository) sendRequest(ctx context.Context, u string) ([]byte, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: wait for request limit: %v", ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.ErrorContext(ctx, "Market data request failed",
			logger.StringField("url", u), logger.ErrorField(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
