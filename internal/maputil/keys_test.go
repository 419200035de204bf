package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]bool
		expected []string
	}{
		{
			name:     "sorted keys",
			input:    map[string]bool{"zebra": true, "apple": true, "mango": true},
			expected: []string{"apple", "mango", "zebra"},
		},
		{
			name:     "single key",
			input:    map[string]bool{"only": true},
			expected: []string{"only"},
		},
		{
			name:     "empty map",
			input:    map[string]bool{},
			expected: []string{},
		},
		{
			name:     "nil map",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortedKeys(tt.input)
			assert.Equal(t, tt.expected, got, "SortedKeys(%v)", tt.input)
		})
	}
}

func TestKeySets(t *testing.T) {
	tests := []struct {
		name        string
		source      map[string]int
		destination map[string]int
		added       []string
		removed     []string
		common      []string
	}{
		{
			name:        "disjoint and shared keys",
			source:      map[string]int{"/a": 1, "/b": 2, "/c": 3},
			destination: map[string]int{"/b": 2, "/d": 4, "/c": 9},
			added:       []string{"/d"},
			removed:     []string{"/a"},
			common:      []string{"/b", "/c"},
		},
		{
			name:        "identical maps",
			source:      map[string]int{"get": 1, "post": 2},
			destination: map[string]int{"post": 2, "get": 1},
			added:       []string{},
			removed:     []string{},
			common:      []string{"get", "post"},
		},
		{
			name:        "nil source",
			source:      nil,
			destination: map[string]int{"200": 1, "404": 2},
			added:       []string{"200", "404"},
			removed:     []string{},
			common:      []string{},
		},
		{
			name:        "nil destination",
			source:      map[string]int{"x-b": 1, "x-a": 2},
			destination: nil,
			added:       []string{},
			removed:     []string{"x-a", "x-b"},
			common:      []string{},
		},
		{
			name:    "both nil",
			added:   []string{},
			removed: []string{},
			common:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeySets(tt.source, tt.destination)
			assert.Equal(t, tt.added, got.Added, "added keys")
			assert.Equal(t, tt.removed, got.Removed, "removed keys")
			assert.Equal(t, tt.common, got.Common, "common keys")
		})
	}
}

func TestKeySets_MixedValueTypes(t *testing.T) {
	source := map[string]*struct{}{"a": {}, "b": {}}
	destination := map[string]string{"b": "x", "c": "y"}

	got := KeySets(source, destination)
	assert.Equal(t, []string{"c"}, got.Added)
	assert.Equal(t, []string{"a"}, got.Removed)
	assert.Equal(t, []string{"b"}, got.Common)
}
