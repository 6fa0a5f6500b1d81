// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package schema // import "github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/schema"

import (
	goversion "github.com/hashicorp/go-version"
)

const (
	// Servers at or above this version report indexCounters at the top level
	// of serverStatus; older servers nest the same counters under "btree".
	indexCountersThreshold = "2.4.0"

	indexCountersKey       = "indexCounters"
	legacyIndexCountersKey = "btree"

	locksKey           = "locks"
	lockPlaceholderKey = "."
	globalLockKey      = "GLOBAL"
)

// Context carries the per-cycle inputs that shape an effective schema.
type Context struct {
	// ServerVersion is the detected server version string. Empty or
	// unparsable values are treated as older than any threshold.
	ServerVersion string
	// Include restricts the effective schema to the named root branches.
	// Empty means the full base schema. Names absent from the base schema
	// are ignored.
	Include []string
	// Databases lists the database names for which scoped lock statistics
	// are collected.
	Databases []string
}

// Resolve derives the effective schema for one polling cycle from a base
// schema. The base is never mutated; the returned tree is an independent
// copy safe to hand to a matcher.
func Resolve(base *Node, rctx Context) *Node {
	if base == nil || base.IsLeaf() {
		return base.Clone()
	}

	eff := filterRoot(base, rctx.Include)

	if ic, ok := eff.children[indexCountersKey]; ok && !versionAtLeast(rctx.ServerVersion, indexCountersThreshold) {
		eff.children[indexCountersKey] = NewBranch(map[string]*Node{legacyIndexCountersKey: ic})
	}

	if locks, ok := eff.children[locksKey]; ok && !locks.IsLeaf() {
		if scoped, ok := locks.children[lockPlaceholderKey]; ok {
			delete(locks.children, lockPlaceholderKey)
			locks.children[globalLockKey] = scoped
			for _, db := range rctx.Databases {
				locks.children[db] = scoped.Clone()
			}
		}
	}

	return eff
}

// filterRoot copies the base schema, keeping only the requested root
// branches when include is non-empty.
func filterRoot(base *Node, include []string) *Node {
	if len(include) == 0 {
		return base.Clone()
	}
	children := make(map[string]*Node, len(include))
	for _, key := range include {
		if child, ok := base.children[key]; ok {
			children[key] = child.Clone()
		}
	}
	return NewBranch(children)
}

// versionAtLeast reports whether raw parses as a semantic version greater
// than or equal to threshold. Detection failures count as older than the
// threshold, keeping the legacy schema layout.
func versionAtLeast(raw, threshold string) bool {
	v, err := goversion.NewVersion(raw)
	if err != nil {
		return false
	}
	return v.GreaterThanOrEqual(goversion.Must(goversion.NewVersion(threshold)))
}
