// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package mongodbstatsreceiver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/collector/config/confignet"
	"go.opentelemetry.io/collector/scraper/scraperhelper"
)

func validConfig() Config {
	return Config{
		ControllerConfig: scraperhelper.ControllerConfig{
			CollectionInterval: 60 * time.Second,
			InitialDelay:       time.Second,
			Timeout:            30 * time.Second,
		},
		AddrConfig: confignet.AddrConfig{
			Endpoint:  "localhost:27017",
			Transport: confignet.TransportTypeTCP,
		},
		Databases:      []string{"admin"},
		ConnectTimeout: 10 * time.Second,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectedErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:        "missing endpoint",
			mutate:      func(cfg *Config) { cfg.Endpoint = "" },
			expectedErr: "endpoint is required",
		},
		{
			name:        "unsupported transport",
			mutate:      func(cfg *Config) { cfg.Transport = confignet.TransportTypeUnix },
			expectedErr: "transport must be tcp",
		},
		{
			name:        "non-positive collection interval",
			mutate:      func(cfg *Config) { cfg.CollectionInterval = 0 },
			expectedErr: "collection_interval must be positive",
		},
		{
			name:        "non-positive connect timeout",
			mutate:      func(cfg *Config) { cfg.ConnectTimeout = 0 },
			expectedErr: "connect_timeout must be positive",
		},
		{
			name:        "no databases",
			mutate:      func(cfg *Config) { cfg.Databases = nil },
			expectedErr: "at least one database is required",
		},
		{
			name:        "empty database name",
			mutate:      func(cfg *Config) { cfg.Databases = []string{"admin", ""} },
			expectedErr: "database names must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.expectedErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.expectedErr)
			}
		})
	}
}

func TestConfigStatsDatabase(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "admin", cfg.statsDatabase())

	cfg.Databases = []string{"logs", "admin"}
	assert.Equal(t, "logs", cfg.statsDatabase())

	cfg.Databases = nil
	assert.Equal(t, "admin", cfg.statsDatabase())
}
