package cmd

import (
	"reflect"
	"testing"
)

func TestSortedKeys(t *testing.T) {
	testCases := []struct {
		name     string
		stats    map[string]int
		expected []string
	}{
		{
			name:     "Keys come back in lexicographic order",
			stats:    map[string]int{"rust": 1, "go": 3, "python": 2},
			expected: []string{"go", "python", "rust"},
		},
		{
			name:     "Case-sensitive ordering",
			stats:    map[string]int{"go": 1, "Go": 1},
			expected: []string{"Go", "go"},
		},
		{
			name:     "Empty map",
			stats:    map[string]int{},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := sortedKeys(tc.stats)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("sortedKeys() = %v, want %v", got, tc.expected)
			}
		})
	}
}
