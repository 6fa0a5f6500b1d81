// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package mongodbstatsreceiver implements a receiver that periodically runs
// MongoDB's serverStatus, connPoolStats, and dbStats commands and republishes
// the results as metrics. Which fields of each response become metrics, and
// of what kind, is driven by the declarative schemas in the schema package.
package mongodbstatsreceiver // import "github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver"
