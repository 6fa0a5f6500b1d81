// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package mongodbstatsreceiver // import "github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver"

import (
	"errors"
	"time"

	"go.opentelemetry.io/collector/config/confignet"
	"go.opentelemetry.io/collector/config/configopaque"
	"go.opentelemetry.io/collector/config/configtls"
	"go.opentelemetry.io/collector/scraper/scraperhelper"
	"go.uber.org/multierr"
)

const defaultDatabase = "admin"

// Config defines the configuration for the MongoDB stats receiver.
type Config struct {
	scraperhelper.ControllerConfig `mapstructure:",squash"`
	confignet.AddrConfig           `mapstructure:",squash"`

	// Username and Password authenticate against the first configured
	// database. Both empty disables authentication.
	Username string              `mapstructure:"username"`
	Password configopaque.String `mapstructure:"password"`

	// Databases lists the databases for which dbStats and scoped lock
	// statistics are collected. Defaults to the admin database.
	Databases []string `mapstructure:"databases"`

	// Per-group include filters. Each restricts collection to the named
	// top-level sections of the corresponding command's response; empty
	// collects everything the schema knows about. Names the server does
	// not report are ignored.
	ServerStatusMetrics  []string `mapstructure:"server_status_metrics"`
	ConnPoolStatsMetrics []string `mapstructure:"conn_pool_stats_metrics"`
	DBStatsMetrics       []string `mapstructure:"db_stats_metrics"`

	ConnectTimeout time.Duration          `mapstructure:"connect_timeout"`
	TLS            configtls.ClientConfig `mapstructure:"tls"`
}

// Validate validates the configuration.
func (cfg *Config) Validate() error {
	var err error

	if cfg.Endpoint == "" {
		err = multierr.Append(err, errors.New("endpoint is required"))
	}
	if cfg.Transport != confignet.TransportTypeTCP {
		err = multierr.Append(err, errors.New("transport must be tcp"))
	}
	if cfg.ControllerConfig.CollectionInterval <= 0 {
		err = multierr.Append(err, errors.New("collection_interval must be positive"))
	}
	if cfg.ConnectTimeout <= 0 {
		err = multierr.Append(err, errors.New("connect_timeout must be positive"))
	}
	if len(cfg.Databases) == 0 {
		err = multierr.Append(err, errors.New("at least one database is required"))
	}
	for _, db := range cfg.Databases {
		if db == "" {
			err = multierr.Append(err, errors.New("database names must not be empty"))
		}
	}

	return err
}

// statsDatabase returns the database used for server-wide commands and as
// the authentication source.
func (cfg *Config) statsDatabase() string {
	if len(cfg.Databases) == 0 {
		return defaultDatabase
	}
	return cfg.Databases[0]
}
