// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package schema // import "github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/schema"

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// pathSeparator joins field names into a path-derived metric name.
const pathSeparator = "."

// Record is one flattened metric sample produced by a match.
type Record struct {
	// Path is the metric name: a leaf's explicit name if set, otherwise the
	// field names from the schema root joined with pathSeparator.
	Path string
	// Kind is the leaf's metric kind.
	Kind Kind
	// Value is the scalar document value coerced to float64.
	Value float64
	// Database qualifies records collected per target database. Empty for
	// server-wide samples.
	Database string
}

// Matcher walks effective schemas against live response documents. It holds
// no per-document state; the same matcher may be reused across cycles.
type Matcher struct {
	logger *zap.Logger
}

// NewMatcher builds a matcher. A nil logger disables mismatch diagnostics.
func NewMatcher(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// Match walks the schema against the document and returns one record per
// scalar leaf found. The schema dictates what is visited: document fields
// not named in the schema are ignored, schema fields absent from the
// document are skipped silently, and a structural disagreement between the
// two is logged and contained to its subtree. Output order is unspecified.
func (m *Matcher) Match(node *Node, doc any) []Record {
	return m.MatchDatabase(node, doc, "")
}

// MatchDatabase is Match with every produced record qualified by the given
// database name.
func (m *Matcher) MatchDatabase(node *Node, doc any, database string) []Record {
	if node == nil {
		return nil
	}
	var records []Record
	m.walk(node, doc, "", database, &records)
	return records
}

func (m *Matcher) walk(node *Node, value any, path, database string, out *[]Record) {
	fields, structured := asMap(value)
	switch {
	case !node.IsLeaf() && structured:
		for key, child := range node.children {
			childValue, ok := fields[key]
			if !ok {
				// Optional sections are routinely absent; nothing to report.
				continue
			}
			m.walk(child, childValue, joinPath(path, key), database, out)
		}
	case node.IsLeaf() && !structured:
		v, ok := toFloat64(value)
		if !ok {
			m.logger.Debug("metric value is not numeric",
				zap.String("path", path),
				zap.String("database", database))
			return
		}
		name := node.name
		if name == "" {
			name = path
		}
		*out = append(*out, Record{Path: name, Kind: node.kind, Value: v, Database: database})
	default:
		m.logger.Debug("schema and document structure differ",
			zap.String("path", path),
			zap.String("database", database))
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + pathSeparator + key
}

// asMap views a document value as a string-keyed map if it is structured.
// The driver decodes subdocuments as bson.M or bson.D depending on registry
// settings; plain map[string]any covers documents from other decoders.
func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case bson.M:
		return map[string]any(v), true
	case map[string]any:
		return v, true
	case bson.D:
		fields := make(map[string]any, len(v))
		for _, e := range v {
			fields[e.Key] = e.Value
		}
		return fields, true
	default:
		return nil, false
	}
}

// toFloat64 coerces the numeric scalar types BSON decoding can produce.
func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
