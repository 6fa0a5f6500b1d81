// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package schema // import "github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/schema"

// The base schemas mirror the nested key structure of the documents returned
// by the MongoDB status commands, mapping each expected scalar field to its
// metric kind. Servers omit sections freely depending on version and storage
// engine; the matcher skips whatever is absent. These trees are shared and
// read-only; Resolve hands out independent copies.

// ConnPoolStatsSchema covers db.runCommand({connPoolStats: 1}).
var ConnPoolStatsSchema = NewBranch(map[string]*Node{
	"createdByType": NewBranch(map[string]*Node{
		"master": NewLeaf(KindCumulative),
		"set":    NewLeaf(KindCumulative),
		"sync":   NewLeaf(KindCumulative),
	}),
	"totalAvailable":        NewLeaf(KindGauge),
	"totalCreated":          NewLeaf(KindCumulative),
	"numDBClientConnection": NewLeaf(KindGauge),
	"numAScopedConnection":  NewLeaf(KindGauge),
})

// DBStatsSchema covers db.runCommand({dbStats: 1}), collected once per
// configured database.
var DBStatsSchema = NewBranch(map[string]*Node{
	"collections": NewLeaf(KindGauge),
	"objects":     NewLeaf(KindGauge),
	"avgObjSize":  NewLeaf(KindGauge),
	"dataSize":    NewLeaf(KindGauge),
	"storageSize": NewLeaf(KindGauge),
	"numExtents":  NewLeaf(KindGauge),
	"indexes":     NewLeaf(KindGauge),
	"indexSize":   NewLeaf(KindGauge),
	"fileSize":    NewLeaf(KindGauge),
	"nsSizeMB":    NewLeaf(KindGauge),
})

// ServerStatusSchema covers db.runCommand({serverStatus: 1}). The "locks"
// branch holds a placeholder child under lockPlaceholderKey that Resolve
// renames to the global scope and re-injects once per configured database.
// Servers older than 2.4.0 report indexCounters nested under "btree";
// Resolve moves the subtree accordingly.
var ServerStatusSchema = NewBranch(map[string]*Node{
	"backgroundFlushing": NewBranch(map[string]*Node{
		"last_ms": NewLeaf(KindGauge),
	}),
	"connections": NewBranch(map[string]*Node{
		"current":   NewLeaf(KindGauge),
		"available": NewLeaf(KindGauge),
	}),
	"cursors": NewBranch(map[string]*Node{
		"totalOpen": NewLeaf(KindGauge),
		"timedout":  NewLeaf(KindRate),
	}),
	"globalLock": NewBranch(map[string]*Node{
		"currentQueue": NewBranch(map[string]*Node{
			"total":   NewLeaf(KindGauge),
			"readers": NewLeaf(KindGauge),
			"writers": NewLeaf(KindGauge),
		}),
		"activeClients": NewBranch(map[string]*Node{
			"total":   NewLeaf(KindGauge),
			"readers": NewLeaf(KindGauge),
			"writers": NewLeaf(KindGauge),
		}),
	}),
	"indexCounters": NewBranch(map[string]*Node{
		"accesses": NewLeaf(KindRate),
		"hits":     NewLeaf(KindRate),
		"misses":   NewLeaf(KindRate),
	}),
	"locks": NewBranch(map[string]*Node{
		lockPlaceholderKey: NewBranch(map[string]*Node{
			"timeLockedMicros": NewBranch(map[string]*Node{
				"R": NewLeaf(KindRate),
				"W": NewLeaf(KindRate),
			}),
			"timeAcquiringMicros": NewBranch(map[string]*Node{
				"R": NewLeaf(KindRate),
				"W": NewLeaf(KindRate),
			}),
		}),
	}),
	"opcounters": NewBranch(map[string]*Node{
		"insert":  NewLeaf(KindRate),
		"query":   NewLeaf(KindRate),
		"update":  NewLeaf(KindRate),
		"delete":  NewLeaf(KindRate),
		"getmore": NewLeaf(KindRate),
		"command": NewLeaf(KindRate),
	}),
	"recordStats": NewBranch(map[string]*Node{
		"accessesNotInMemory":       NewLeaf(KindRate),
		"pageFaultExceptionsThrown": NewLeaf(KindRate),
	}),
	"mem": NewBranch(map[string]*Node{
		"bits":              NewLeaf(KindGauge),
		"resident":          NewLeaf(KindGauge),
		"virtual":           NewLeaf(KindGauge),
		"mapped":            NewLeaf(KindGauge),
		"mappedWithJournal": NewLeaf(KindGauge),
	}),
	"metrics": NewBranch(map[string]*Node{
		"document": NewBranch(map[string]*Node{
			"deleted":  NewLeaf(KindRate),
			"inserted": NewLeaf(KindRate),
			"returned": NewLeaf(KindRate),
			"updated":  NewLeaf(KindRate),
		}),
	}),
})
