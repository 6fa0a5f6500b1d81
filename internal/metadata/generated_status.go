// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"go.opentelemetry.io/collector/component"
)

var (
	Type      = component.MustNewType("mongodbstats")
	ScopeName = "github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver"
)

const (
	MetricsStability = component.StabilityLevelDevelopment
)
