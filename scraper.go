// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package mongodbstatsreceiver // import "github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver"

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/pmetric"
	"go.opentelemetry.io/collector/receiver"
	"go.opentelemetry.io/collector/scraper/scrapererror"
	"go.uber.org/zap"

	"github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/common"
	"github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/scrapers"
)

type mongodbStatsScraper struct {
	logger *zap.Logger
	config *Config
	client common.Client

	serverStatus *scrapers.ServerStatusScraper
	connPool     *scrapers.ConnPoolStatsScraper
	dbStats      *scrapers.DBStatsScraper
}

func newMongoDBStatsScraper(settings receiver.Settings, config *Config) *mongodbStatsScraper {
	return &mongodbStatsScraper{
		logger: settings.Logger,
		config: config,
	}
}

// initScrapers builds the per-group scrapers around the given client.
func (s *mongodbStatsScraper) initScrapers(client common.Client) error {
	serverStatus, err := scrapers.NewServerStatusScraper(client, s.logger, s.config.ServerStatusMetrics, s.config.Databases)
	if err != nil {
		return err
	}
	connPool, err := scrapers.NewConnPoolStatsScraper(client, s.logger, s.config.ConnPoolStatsMetrics)
	if err != nil {
		return err
	}
	dbStats, err := scrapers.NewDBStatsScraper(client, s.logger, s.config.DBStatsMetrics, s.config.Databases)
	if err != nil {
		return err
	}

	s.client = client
	s.serverStatus = serverStatus
	s.connPool = connPool
	s.dbStats = dbStats
	return nil
}

// start connects the client and seeds the detected server version. Version
// detection failure is not fatal; the schema falls back to the legacy
// layout until a serverStatus document reports a version.
func (s *mongodbStatsScraper) start(ctx context.Context, _ component.Host) error {
	client, err := newMongoDBClient(s.config, s.logger)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}
	if err := s.initScrapers(client); err != nil {
		return err
	}

	version, err := client.ServerVersion(ctx)
	if err != nil {
		s.logger.Warn("Failed to detect MongoDB server version", zap.Error(err))
	} else {
		s.logger.Info("MongoDB server version detected", zap.String("version", version))
		s.serverStatus.SetVersion(version)
	}
	return nil
}

// shutdown closes the client connection.
func (s *mongodbStatsScraper) shutdown(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// scrape runs one polling cycle: serverStatus, connPoolStats, then dbStats
// per configured database. A failing step is reported as a partial error
// and the remaining steps still run.
func (s *mongodbStatsScraper) scrape(ctx context.Context) (pmetric.Metrics, error) {
	if s.client == nil {
		return pmetric.NewMetrics(), errors.New("client is not initialized")
	}

	now := pcommon.NewTimestampFromTime(time.Now())
	sink := newMetricsBuilder(s.config.Endpoint)
	errs := &scrapererror.ScrapeErrors{}

	s.serverStatus.ScrapeMetrics(ctx, now, sink, errs)
	s.connPool.ScrapeMetrics(ctx, now, sink, errs)
	s.dbStats.ScrapeMetrics(ctx, now, sink, errs)

	return sink.Emit(), errs.Combine()
}
