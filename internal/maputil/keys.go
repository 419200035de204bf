// Package maputil provides key-set helpers for comparing string-keyed maps.
package maputil

import "sort"

// SortedKeys returns the keys of m in lexicographic order.
// A nil or empty map yields an empty, non-nil slice.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KeySet partitions the keys of two maps.
type KeySet struct {
	// Added holds destination keys absent from the source.
	Added []string
	// Removed holds source keys absent from the destination.
	Removed []string
	// Common holds keys present in both maps.
	Common []string
}

// KeySets computes the added, removed and common keys between source and
// destination. Each slice is sorted so callers get a stable traversal order
// regardless of map iteration order.
func KeySets[S, D any](source map[string]S, destination map[string]D) KeySet {
	set := KeySet{
		Added:   []string{},
		Removed: []string{},
		Common:  []string{},
	}
	for _, k := range SortedKeys(source) {
		if _, ok := destination[k]; ok {
			set.Common = append(set.Common, k)
		} else {
			set.Removed = append(set.Removed, k)
		}
	}
	for _, k := range SortedKeys(destination) {
		if _, ok := source[k]; !ok {
			set.Added = append(set.Added, k)
		}
	}
	return set
}
