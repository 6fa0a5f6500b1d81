// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package mongodbstatsreceiver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/pmetric"

	"github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/schema"
)

func TestMetricsBuilderResourceAndScope(t *testing.T) {
	b := newMetricsBuilder("localhost:27017")
	metrics := b.Emit()

	require.Equal(t, 1, metrics.ResourceMetrics().Len())
	rm := metrics.ResourceMetrics().At(0)
	endpoint, ok := rm.Resource().Attributes().Get("mongodb.endpoint")
	require.True(t, ok)
	assert.Equal(t, "localhost:27017", endpoint.Str())
}

func TestMetricsBuilderRecordKinds(t *testing.T) {
	now := pcommon.NewTimestampFromTime(time.Now())

	tests := []struct {
		name  string
		rec   schema.Record
		check func(t *testing.T, m pmetric.Metric)
	}{
		{
			name: "gauge",
			rec:  schema.Record{Path: "connections.current", Kind: schema.KindGauge, Value: 3},
			check: func(t *testing.T, m pmetric.Metric) {
				require.Equal(t, pmetric.MetricTypeGauge, m.Type())
				require.Equal(t, 1, m.Gauge().DataPoints().Len())
				assert.Equal(t, float64(3), m.Gauge().DataPoints().At(0).DoubleValue())
			},
		},
		{
			name: "rate becomes monotonic cumulative sum",
			rec:  schema.Record{Path: "opcounters.insert", Kind: schema.KindRate, Value: 42},
			check: func(t *testing.T, m pmetric.Metric) {
				require.Equal(t, pmetric.MetricTypeSum, m.Type())
				assert.True(t, m.Sum().IsMonotonic())
				assert.Equal(t, pmetric.AggregationTemporalityCumulative, m.Sum().AggregationTemporality())
			},
		},
		{
			name: "cumulative becomes monotonic delta sum",
			rec:  schema.Record{Path: "totalCreated", Kind: schema.KindCumulative, Value: 128},
			check: func(t *testing.T, m pmetric.Metric) {
				require.Equal(t, pmetric.MetricTypeSum, m.Type())
				assert.True(t, m.Sum().IsMonotonic())
				assert.Equal(t, pmetric.AggregationTemporalityDelta, m.Sum().AggregationTemporality())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newMetricsBuilder("localhost:27017")
			b.Record(now, tt.rec)

			metrics := b.Emit()
			sm := metrics.ResourceMetrics().At(0).ScopeMetrics().At(0)
			require.Equal(t, 1, sm.Metrics().Len())
			m := sm.Metrics().At(0)
			assert.Equal(t, "mongodb."+tt.rec.Path, m.Name())
			tt.check(t, m)
		})
	}
}

func TestMetricsBuilderDatabaseAttribute(t *testing.T) {
	now := pcommon.NewTimestampFromTime(time.Now())
	b := newMetricsBuilder("localhost:27017")

	b.Record(now, schema.Record{Path: "collections", Kind: schema.KindGauge, Value: 5, Database: "logs"})
	b.Record(now, schema.Record{Path: "connections.current", Kind: schema.KindGauge, Value: 3})

	sm := b.Emit().ResourceMetrics().At(0).ScopeMetrics().At(0)
	require.Equal(t, 2, sm.Metrics().Len())

	withDB := sm.Metrics().At(0).Gauge().DataPoints().At(0)
	db, ok := withDB.Attributes().Get("database")
	require.True(t, ok)
	assert.Equal(t, "logs", db.Str())

	withoutDB := sm.Metrics().At(1).Gauge().DataPoints().At(0)
	_, ok = withoutDB.Attributes().Get("database")
	assert.False(t, ok)
}
