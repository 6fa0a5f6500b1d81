// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package common defines the collaborator interfaces shared by the
// mongodbstatsreceiver scrapers, plus a mock client for tests.
package common // import "github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/common"

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.opentelemetry.io/collector/pdata/pcommon"

	"github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/schema"
)

// Client is the data-source collaborator: the subset of MongoDB operations
// the scrapers need. Implementations own connection and authentication
// details; scrapers only consume documents.
type Client interface {
	// Connect establishes and verifies the connection.
	Connect(ctx context.Context) error
	// Disconnect tears the connection down.
	Disconnect(ctx context.Context) error
	// ServerStatus runs the serverStatus command.
	ServerStatus(ctx context.Context) (bson.M, error)
	// ConnPoolStats runs the connPoolStats command.
	ConnPoolStats(ctx context.Context) (bson.M, error)
	// DBStats runs the dbStats command against the named database.
	DBStats(ctx context.Context, database string) (bson.M, error)
	// ServerVersion reports the server's version string.
	ServerVersion(ctx context.Context) (string, error)
}

// MetricSink accepts the flattened records a matcher emits. The sink owns
// the mapping onto the outbound metric model; scrapers never construct
// transport or pipeline details themselves.
type MetricSink interface {
	Record(now pcommon.Timestamp, rec schema.Record)
}
