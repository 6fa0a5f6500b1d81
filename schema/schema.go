// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema holds the declarative metric schemas for the MongoDB status
// commands and the machinery that resolves and matches them against live
// response documents.
package schema // import "github.com/open-telemetry/opentelemetry-collector-contrib/receiver/mongodbstatsreceiver/schema"

import "sort"

// Kind describes how successive samples of a metric are to be interpreted.
type Kind int

const (
	// KindGauge is an instantaneous value; the latest sample wins.
	KindGauge Kind = iota
	// KindRate is a monotonically increasing counter from which consumers
	// derive a rate between successive samples.
	KindRate
	// KindCumulative is a counter whose samples are summed over time.
	KindCumulative
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindGauge:
		return "gauge"
	case KindRate:
		return "rate"
	case KindCumulative:
		return "cumulative"
	default:
		return "unknown"
	}
}

// Node is one position in a schema tree. A node is either a branch, mapping
// field names to child nodes, or a leaf carrying a metric kind and an
// optional explicit metric name. Trees are finite and shallow; nothing in
// this package mutates a node after construction except on trees returned by
// Resolve, which are always independent copies.
type Node struct {
	children map[string]*Node
	kind     Kind
	name     string
}

// NewBranch builds a branch node over the given children.
func NewBranch(children map[string]*Node) *Node {
	return &Node{children: children}
}

// NewLeaf builds a leaf whose metric name is derived from its path.
func NewLeaf(kind Kind) *Node {
	return &Node{kind: kind}
}

// NewNamedLeaf builds a leaf with an explicit metric name overriding the
// path-derived default.
func NewNamedLeaf(kind Kind, name string) *Node {
	return &Node{kind: kind, name: name}
}

// IsLeaf reports whether the node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.children == nil
}

// Kind returns the metric kind of a leaf. Meaningless for branches.
func (n *Node) Kind() Kind {
	return n.kind
}

// Name returns the explicit metric name of a leaf, or "" if the name is
// derived from the path.
func (n *Node) Name() string {
	return n.name
}

// Child returns the child node under key, if any.
func (n *Node) Child(key string) (*Node, bool) {
	c, ok := n.children[key]
	return c, ok
}

// Keys returns the branch's field names in sorted order. Nil for leaves.
func (n *Node) Keys() []string {
	if n.IsLeaf() {
		return nil
	}
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy sharing no children with the receiver.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return &Node{kind: n.kind, name: n.name}
	}
	children := make(map[string]*Node, len(n.children))
	for k, c := range n.children {
		children[k] = c.Clone()
	}
	return &Node{children: children}
}
