// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEmptyIncludeCopiesFullSchema(t *testing.T) {
	for _, base := range []*Node{ServerStatusSchema, ConnPoolStatsSchema, DBStatsSchema} {
		eff := Resolve(base, Context{})
		assert.Equal(t, base.Keys(), eff.Keys())
	}
}

func TestResolveIncludeFilter(t *testing.T) {
	tests := []struct {
		name     string
		include  []string
		expected []string
	}{
		{
			name:     "subset of known keys",
			include:  []string{"connections", "opcounters"},
			expected: []string{"connections", "opcounters"},
		},
		{
			name:     "unknown keys silently ignored",
			include:  []string{"connections", "noSuchSection"},
			expected: []string{"connections"},
		},
		{
			name:     "all unknown keys",
			include:  []string{"noSuchSection"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eff := Resolve(ServerStatusSchema, Context{ServerVersion: "2.4.0", Include: tt.include})
			assert.ElementsMatch(t, tt.expected, eff.Keys())
		})
	}
}

func TestResolveDoesNotMutateBase(t *testing.T) {
	before := ServerStatusSchema.Keys()
	locksBefore, ok := ServerStatusSchema.Child("locks")
	require.True(t, ok)
	lockKeysBefore := locksBefore.Keys()

	for i := 0; i < 2; i++ {
		Resolve(ServerStatusSchema, Context{
			ServerVersion: "2.2.0",
			Databases:     []string{"admin", "logs"},
		})
	}

	assert.Equal(t, before, ServerStatusSchema.Keys())
	locksAfter, ok := ServerStatusSchema.Child("locks")
	require.True(t, ok)
	assert.Equal(t, lockKeysBefore, locksAfter.Keys())
}

func TestResolveVersionThreshold(t *testing.T) {
	tests := []struct {
		name    string
		version string
		legacy  bool
	}{
		{name: "below threshold", version: "2.3.9", legacy: true},
		{name: "at threshold", version: "2.4.0", legacy: false},
		{name: "above threshold", version: "2.4.1", legacy: false},
		{name: "far above threshold", version: "3.6.23", legacy: false},
		{name: "malformed version", version: "not-a-version", legacy: true},
		{name: "empty version", version: "", legacy: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eff := Resolve(ServerStatusSchema, Context{ServerVersion: tt.version})
			ic, ok := eff.Child("indexCounters")
			require.True(t, ok)

			if tt.legacy {
				require.Equal(t, []string{"btree"}, ic.Keys())
				nested, ok := ic.Child("btree")
				require.True(t, ok)
				assert.ElementsMatch(t, []string{"accesses", "hits", "misses"}, nested.Keys())
			} else {
				assert.ElementsMatch(t, []string{"accesses", "hits", "misses"}, ic.Keys())
			}
		})
	}
}

func TestResolveLockBranchInjection(t *testing.T) {
	eff := Resolve(ServerStatusSchema, Context{
		ServerVersion: "2.4.0",
		Databases:     []string{"admin", "logs"},
	})

	locks, ok := eff.Child("locks")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"GLOBAL", "admin", "logs"}, locks.Keys())

	_, ok = locks.Child(lockPlaceholderKey)
	assert.False(t, ok)

	// Every injected branch is a full copy of the scoped lock subtree.
	for _, key := range []string{"GLOBAL", "admin", "logs"} {
		scoped, ok := locks.Child(key)
		require.True(t, ok)
		assert.ElementsMatch(t, []string{"timeAcquiringMicros", "timeLockedMicros"}, scoped.Keys())
	}
}

func TestResolveInjectedBranchesAreIndependent(t *testing.T) {
	eff := Resolve(ServerStatusSchema, Context{Databases: []string{"admin"}})

	locks, ok := eff.Child("locks")
	require.True(t, ok)
	global, ok := locks.Child("GLOBAL")
	require.True(t, ok)
	admin, ok := locks.Child("admin")
	require.True(t, ok)

	global.children["extra"] = NewLeaf(KindGauge)
	assert.ElementsMatch(t, []string{"timeAcquiringMicros", "timeLockedMicros"}, admin.Keys())
}

func TestResolveLockInjectionRespectsFilter(t *testing.T) {
	eff := Resolve(ServerStatusSchema, Context{
		Include:   []string{"connections"},
		Databases: []string{"admin"},
	})
	assert.Equal(t, []string{"connections"}, eff.Keys())
}

func TestResolveLeafAndNilBase(t *testing.T) {
	assert.Nil(t, Resolve(nil, Context{}))

	leaf := NewLeaf(KindGauge)
	eff := Resolve(leaf, Context{Include: []string{"ignored"}})
	require.NotNil(t, eff)
	assert.True(t, eff.IsLeaf())
	assert.NotSame(t, leaf, eff)
}

func TestVersionAtLeast(t *testing.T) {
	assert.True(t, versionAtLeast("2.4.0", "2.4.0"))
	assert.True(t, versionAtLeast("2.10.0", "2.4.0"))
	assert.False(t, versionAtLeast("2.3.9", "2.4.0"))
	assert.False(t, versionAtLeast("", "2.4.0"))
	assert.False(t, versionAtLeast("garbage", "2.4.0"))
}
