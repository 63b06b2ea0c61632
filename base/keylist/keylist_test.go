// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyList(t *testing.T) {
	var kl List[int, string]
	assert.NoError(t, kl.Add(3, "c"))
	assert.NoError(t, kl.Add(1, "a"))
	assert.NoError(t, kl.Add(2, "b"))
	assert.Error(t, kl.Add(1, "x"))

	assert.Equal(t, 3, kl.Len())
	assert.Equal(t, []int{3, 1, 2}, kl.Keys)
	assert.Equal(t, []string{"c", "a", "b"}, kl.Values)
	assert.Equal(t, "a", kl.At(1))
	assert.Equal(t, "", kl.At(9))
	assert.True(t, kl.Has(3))
	assert.False(t, kl.Has(4))

	_, ok := kl.AtTry(9)
	assert.False(t, ok)

	var keys []int
	var vals []string
	for k, v := range kl.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{3, 1, 2}, keys)
	assert.Equal(t, []string{"c", "a", "b"}, vals)

	keys = nil
	for k := range kl.All() {
		keys = append(keys, k)
		break
	}
	assert.Equal(t, []int{3}, keys)
}

func TestKeyListNil(t *testing.T) {
	var kl *List[string, int]
	assert.Equal(t, 0, kl.Len())
	assert.False(t, kl.Has("a"))
	_, ok := kl.AtTry("a")
	assert.False(t, ok)
	for range kl.All() {
		t.Fatal("nil list should not yield")
	}
}
