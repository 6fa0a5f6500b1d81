// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package common // import "github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/common"

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// MockClient is a mock implementation of Client for testing.
// It supports both direct field assignment and function callbacks for flexibility.
type MockClient struct {
	// Direct value fields
	ServerStatusDoc  bson.M
	ConnPoolStatsDoc bson.M
	DBStatsDocs      map[string]bson.M
	Version          string

	// Error fields
	ConnectErr       error
	DisconnectErr    error
	ServerStatusErr  error
	ConnPoolStatsErr error
	DBStatsErr       error
	VersionErr       error

	// Function callback fields (optional, take precedence over direct fields)
	ConnectFunc       func(ctx context.Context) error
	DisconnectFunc    func(ctx context.Context) error
	ServerStatusFunc  func(ctx context.Context) (bson.M, error)
	ConnPoolStatsFunc func(ctx context.Context) (bson.M, error)
	DBStatsFunc       func(ctx context.Context, database string) (bson.M, error)
	ServerVersionFunc func(ctx context.Context) (string, error)
}

// NewMockClient creates a new mock client for testing.
func NewMockClient() *MockClient {
	return &MockClient{
		ServerStatusDoc:  bson.M{},
		ConnPoolStatsDoc: bson.M{},
		DBStatsDocs:      make(map[string]bson.M),
	}
}

func (m *MockClient) Connect(ctx context.Context) error {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx)
	}
	return m.ConnectErr
}

func (m *MockClient) Disconnect(ctx context.Context) error {
	if m.DisconnectFunc != nil {
		return m.DisconnectFunc(ctx)
	}
	return m.DisconnectErr
}

func (m *MockClient) ServerStatus(ctx context.Context) (bson.M, error) {
	if m.ServerStatusFunc != nil {
		return m.ServerStatusFunc(ctx)
	}
	if m.ServerStatusErr != nil {
		return nil, m.ServerStatusErr
	}
	return m.ServerStatusDoc, nil
}

func (m *MockClient) ConnPoolStats(ctx context.Context) (bson.M, error) {
	if m.ConnPoolStatsFunc != nil {
		return m.ConnPoolStatsFunc(ctx)
	}
	if m.ConnPoolStatsErr != nil {
		return nil, m.ConnPoolStatsErr
	}
	return m.ConnPoolStatsDoc, nil
}

func (m *MockClient) DBStats(ctx context.Context, database string) (bson.M, error) {
	if m.DBStatsFunc != nil {
		return m.DBStatsFunc(ctx, database)
	}
	if m.DBStatsErr != nil {
		return nil, m.DBStatsErr
	}
	return m.DBStatsDocs[database], nil
}

func (m *MockClient) ServerVersion(ctx context.Context) (string, error) {
	if m.ServerVersionFunc != nil {
		return m.ServerVersionFunc(ctx)
	}
	if m.VersionErr != nil {
		return "", m.VersionErr
	}
	return m.Version, nil
}

var _ Client = (*MockClient)(nil)
