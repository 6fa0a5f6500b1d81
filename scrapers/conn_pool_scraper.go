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

// ConnPoolStatsScraper collects the connPoolStats metric group.
type ConnPoolStatsScraper struct {
	client  common.Client
	matcher *schema.Matcher
	logger  *zap.Logger
	include []string
}

// NewConnPoolStatsScraper creates a scraper for the connPoolStats group.
func NewConnPoolStatsScraper(client common.Client, logger *zap.Logger, include []string) (*ConnPoolStatsScraper, error) {
	if client == nil {
		return nil, errors.New("client cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &ConnPoolStatsScraper{
		client:  client,
		matcher: schema.NewMatcher(logger),
		logger:  logger,
		include: include,
	}, nil
}

// ScrapeMetrics fetches connPoolStats and records all matched samples.
func (s *ConnPoolStatsScraper) ScrapeMetrics(ctx context.Context, now pcommon.Timestamp, sink common.MetricSink, errs *scrapererror.ScrapeErrors) {
	s.logger.Debug("Scraping MongoDB connPoolStats metrics")

	doc, err := s.client.ConnPoolStats(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch connPoolStats", zap.Error(err))
		errs.AddPartial(1, err)
		return
	}

	eff := schema.Resolve(schema.ConnPoolStatsSchema, schema.Context{Include: s.include})
	for _, rec := range s.matcher.Match(eff, doc) {
		sink.Record(now, rec)
	}
}
