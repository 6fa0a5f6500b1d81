// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package mongodbstatsreceiver // import "github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver"

import (
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/pmetric"

	"github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/common"
	"github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/internal/metadata"
	"github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/schema"
)

const (
	metricPrefix    = "mongodb."
	endpointAttrKey = "mongodb.endpoint"
	databaseAttrKey = "database"
)

// metricsBuilder adapts schema records onto pdata metrics. One builder per
// polling cycle; Emit hands off the accumulated batch.
type metricsBuilder struct {
	metrics pmetric.Metrics
	scope   pmetric.ScopeMetrics
}

var _ common.MetricSink = (*metricsBuilder)(nil)

func newMetricsBuilder(endpoint string) *metricsBuilder {
	metrics := pmetric.NewMetrics()
	rm := metrics.ResourceMetrics().AppendEmpty()
	rm.Resource().Attributes().PutStr(endpointAttrKey, endpoint)
	scope := rm.ScopeMetrics().AppendEmpty()
	scope.Scope().SetName(metadata.ScopeName)
	return &metricsBuilder{metrics: metrics, scope: scope}
}

// Record appends one data point for the given record. Gauges become gauge
// points; rates become monotonic cumulative sums, from which downstream
// consumers derive rates; cumulative counters become monotonic delta sums.
func (b *metricsBuilder) Record(now pcommon.Timestamp, rec schema.Record) {
	metric := b.scope.Metrics().AppendEmpty()
	metric.SetName(metricPrefix + rec.Path)

	var dp pmetric.NumberDataPoint
	switch rec.Kind {
	case schema.KindRate:
		sum := metric.SetEmptySum()
		sum.SetIsMonotonic(true)
		sum.SetAggregationTemporality(pmetric.AggregationTemporalityCumulative)
		dp = sum.DataPoints().AppendEmpty()
	case schema.KindCumulative:
		sum := metric.SetEmptySum()
		sum.SetIsMonotonic(true)
		sum.SetAggregationTemporality(pmetric.AggregationTemporalityDelta)
		dp = sum.DataPoints().AppendEmpty()
	default:
		dp = metric.SetEmptyGauge().DataPoints().AppendEmpty()
	}

	dp.SetTimestamp(now)
	dp.SetDoubleValue(rec.Value)
	if rec.Database != "" {
		dp.Attributes().PutStr(databaseAttrKey, rec.Database)
	}
}

// Emit returns the metrics accumulated so far.
func (b *metricsBuilder) Emit() pmetric.Metrics {
	return b.metrics
}
