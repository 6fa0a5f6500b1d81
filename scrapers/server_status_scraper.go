// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package scrapers contains one scraper per MongoDB metric group. Each
// scraper fetches a status document through the shared client, resolves the
// effective schema for the cycle, and records matched samples into the sink.
// Failures are reported as partial scrape errors so no group or database
// aborts the others.
package scrapers // import "github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/scrapers"

import (
	"context"
	"errors"

	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/scraper/scrapererror"
	"go.uber.org/zap"

	"github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/common"
	"github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/schema"
)

// ServerStatusScraper collects the serverStatus metric group.
type ServerStatusScraper struct {
	client    common.Client
	matcher   *schema.Matcher
	logger    *zap.Logger
	include   []string
	databases []string

	// version is the last server version seen, refreshed from each
	// serverStatus document. Stale or empty values only affect which
	// indexCounters layout the effective schema expects.
	version string
}

// NewServerStatusScraper creates a scraper for the serverStatus group.
func NewServerStatusScraper(client common.Client, logger *zap.Logger, include, databases []string) (*ServerStatusScraper, error) {
	if client == nil {
		return nil, errors.New("client cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &ServerStatusScraper{
		client:    client,
		matcher:   schema.NewMatcher(logger),
		logger:    logger,
		include:   include,
		databases: databases,
	}, nil
}

// SetVersion seeds the cached server version, normally from detection at
// receiver start.
func (s *ServerStatusScraper) SetVersion(version string) {
	s.version = version
}

// ScrapeMetrics fetches serverStatus and records all matched samples.
func (s *ServerStatusScraper) ScrapeMetrics(ctx context.Context, now pcommon.Timestamp, sink common.MetricSink, errs *scrapererror.ScrapeErrors) {
	s.logger.Debug("Scraping MongoDB serverStatus metrics")

	doc, err := s.client.ServerStatus(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch serverStatus", zap.Error(err))
		errs.AddPartial(1, err)
		return
	}

	if v, ok := doc["version"].(string); ok && v != "" {
		s.version = v
	}

	eff := schema.Resolve(schema.ServerStatusSchema, schema.Context{
		ServerVersion: s.version,
		Include:       s.include,
		Databases:     s.databases,
	})

	for _, rec := range s.matcher.Match(eff, doc) {
		sink.Record(now, rec)
	}
}
