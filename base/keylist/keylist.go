// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key (e.g., ids) to indexes,
to support fast lookup by key while preserving insertion order.
*/
package keylist

import (
	"fmt"
	"iter"
)

// List implements an ordered list (slice) of Values,
// with a map from a key to indexes.
// The zero value is an empty list ready to use.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values]
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// Add adds an item to the end of the list with given key.
// An error is returned if the key is already on the list,
// in which case the list is unchanged.
func (kl *List[K, V]) Add(key K, val V) error {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int)
	}
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return nil
}

// At returns the value corresponding to the given key,
// with a zero value returned for a missing key. See [List.AtTry]
// for one that returns a bool for missing keys.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value corresponding to the given key,
// with false returned for a missing key, in case the zero value
// is not diagnostic.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if kl != nil {
		if idx, ok := kl.indexes[key]; ok {
			return kl.Values[idx], true
		}
	}
	var zv V
	return zv, false
}

// Has returns whether the given key is on the list.
func (kl *List[K, V]) Has(key K) bool {
	_, ok := kl.AtTry(key)
	return ok
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// All returns an iterator over the keys and values in list order.
func (kl *List[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if kl == nil {
			return
		}
		for i, k := range kl.Keys {
			if !yield(k, kl.Values[i]) {
				return
			}
		}
	}
}
