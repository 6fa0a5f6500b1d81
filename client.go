// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package mongodbstatsreceiver // import "github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver"

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/common"
)

// mongodbClient implements common.Client over the official driver. Server
// wide commands run against the first configured database, matching the
// authentication source.
type mongodbClient struct {
	opts    *options.ClientOptions
	logger  *zap.Logger
	client  *mongo.Client
	statsDB string
}

var _ common.Client = (*mongodbClient)(nil)

func newMongoDBClient(cfg *Config, logger *zap.Logger) (*mongodbClient, error) {
	opts := options.Client().
		SetHosts([]string{cfg.Endpoint}).
		SetDirect(true).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetReadPreference(readpref.PrimaryPreferred())

	if cfg.Username != "" {
		opts.SetAuth(options.Credential{
			Username:   cfg.Username,
			Password:   string(cfg.Password),
			AuthSource: cfg.statsDatabase(),
		})
	}

	if !cfg.TLS.Insecure {
		tlsConfig, err := cfg.TLS.LoadTLSConfig(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to load TLS config: %w", err)
		}
		opts.SetTLSConfig(tlsConfig)
	}

	return &mongodbClient{
		opts:    opts,
		logger:  logger,
		statsDB: cfg.statsDatabase(),
	}, nil
}

func (c *mongodbClient) Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, c.opts)
	if err != nil {
		return fmt.Errorf("failed to create MongoDB client: %w", err)
	}
	c.client = client
	if err := c.client.Ping(ctx, readpref.PrimaryPreferred()); err != nil {
		return fmt.Errorf("failed to ping MongoDB server: %w", err)
	}
	return nil
}

func (c *mongodbClient) Disconnect(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

func (c *mongodbClient) runCommand(ctx context.Context, database string, command bson.D) (bson.M, error) {
	if c.client == nil {
		return nil, errors.New("client is not connected")
	}
	var doc bson.M
	if err := c.client.Database(database).RunCommand(ctx, command).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ServerStatus runs serverStatus. The result is identical regardless of the
// database the command runs against.
func (c *mongodbClient) ServerStatus(ctx context.Context) (bson.M, error) {
	return c.runCommand(ctx, c.statsDB, bson.D{{Key: "serverStatus", Value: 1}})
}

// ConnPoolStats runs connPoolStats. The result is identical regardless of
// the database the command runs against.
func (c *mongodbClient) ConnPoolStats(ctx context.Context) (bson.M, error) {
	return c.runCommand(ctx, c.statsDB, bson.D{{Key: "connPoolStats", Value: 1}})
}

// DBStats runs dbStats against the named database.
func (c *mongodbClient) DBStats(ctx context.Context, database string) (bson.M, error) {
	return c.runCommand(ctx, database, bson.D{{Key: "dbStats", Value: 1}})
}

// ServerVersion reports the server version from buildInfo.
func (c *mongodbClient) ServerVersion(ctx context.Context) (string, error) {
	doc, err := c.runCommand(ctx, c.statsDB, bson.D{{Key: "buildInfo", Value: 1}})
	if err != nil {
		return "", err
	}
	version, ok := doc["version"].(string)
	if !ok {
		return "", errors.New("buildInfo response is missing the version field")
	}
	return version, nil
}
