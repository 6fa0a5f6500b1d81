// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

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

// DBStatsScraper collects the dbStats metric group, once per configured
// database. Each record carries its database name so identically named
// metrics stay distinguishable downstream.
type DBStatsScraper struct {
	client    common.Client
	matcher   *schema.Matcher
	logger    *zap.Logger
	include   []string
	databases []string
}

// NewDBStatsScraper creates a scraper for the dbStats group.
func NewDBStatsScraper(client common.Client, logger *zap.Logger, include, databases []string) (*DBStatsScraper, error) {
	if client == nil {
		return nil, errors.New("client cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if len(databases) == 0 {
		return nil, errors.New("at least one database is required")
	}
	return &DBStatsScraper{
		client:    client,
		matcher:   schema.NewMatcher(logger),
		logger:    logger,
		include:   include,
		databases: databases,
	}, nil
}

// ScrapeMetrics fetches dbStats for every configured database. A failing
// database is reported and skipped; the remaining databases still run.
func (s *DBStatsScraper) ScrapeMetrics(ctx context.Context, now pcommon.Timestamp, sink common.MetricSink, errs *scrapererror.ScrapeErrors) {
	eff := schema.Resolve(schema.DBStatsSchema, schema.Context{Include: s.include})

	for _, database := range s.databases {
		s.logger.Debug("Scraping MongoDB dbStats metrics", zap.String("database", database))

		doc, err := s.client.DBStats(ctx, database)
		if err != nil {
			s.logger.Error("Failed to fetch dbStats", zap.String("database", database), zap.Error(err))
			errs.AddPartial(1, err)
			continue
		}

		for _, rec := range s.matcher.MatchDatabase(eff, doc, database) {
			sink.Record(now, rec)
		}
	}
}
