package config

import (
	"golang-stock-forecaster/pkg/config"
)

// Yahoo holds market data provider configuration.
type Yahoo struct {
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	TimeoutSeconds      int    `mapstructure:"timeout_seconds"`
	ProfileCacheTTL     string `mapstructure:"profile_cache_ttl"`
}

// Forecast holds forecast engine configuration.
type Forecast struct {
	HistoryRange      string `mapstructure:"history_range"`
	MaxHorizonDays    int    `mapstructure:"max_horizon_days"`
	CPUSampleInterval string `mapstructure:"cpu_sample_interval"`
}

// Config holds the full configuration for the dashboard service.
type Config struct {
	App      config.App    `mapstructure:"app"`
	Logger   config.Logger `mapstructure:"logger"`
	API      config.API    `mapstructure:"api"`
	Yahoo    Yahoo         `mapstructure:"yahoo"`
	Forecast Forecast      `mapstructure:"forecast"`
}

// Load loads the dashboard configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
