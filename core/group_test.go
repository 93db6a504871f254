package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSplitMajors covers the grouping behavior and edge cases.
func TestSplitMajors(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		expected [][]string
	}{
		{
			name:     "empty history",
			versions: []string{},
			expected: nil,
		},
		{
			name:     "single version",
			versions: []string{"1.0.0"},
			expected: [][]string{{"1.0.0"}},
		},
		{
			name:     "two majors in order",
			versions: []string{"1.0.0", "1.1.0", "2.0.0"},
			expected: [][]string{{"1.0.0", "1.1.0"}, {"2.0.0"}},
		},
		{
			name:     "interleaved majors collect fully",
			versions: []string{"1.0.0", "2.0.0", "1.1.0"},
			expected: [][]string{{"1.0.0", "1.1.0"}, {"2.0.0"}},
		},
		{
			name:     "major without dot groups by whole string",
			versions: []string{"1.0.0", "final", "1.0.1"},
			expected: [][]string{{"1.0.0", "1.0.1"}, {"final"}},
		},
		{
			name:     "major 1 does not swallow major 10",
			versions: []string{"1.0.0", "10.0.0"},
			expected: [][]string{{"1.0.0"}, {"10.0.0"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitMajors(tt.versions))
		})
	}
}

// TestSplitMajorsIsPartition verifies that every version lands in exactly one group.
func TestSplitMajorsIsPartition(t *testing.T) {
	versions := []string{"1.0.0", "2.0.0", "1.1.0", "3.0", "2.1.0", "1.2.0"}
	groups := SplitMajors(versions)

	var flattened []string
	for _, g := range groups {
		flattened = append(flattened, g...)
	}
	assert.ElementsMatch(t, versions, flattened)

	// First-seen major order is preserved across groups.
	assert.Equal(t, "1.0.0", groups[0][0])
	assert.Equal(t, "2.0.0", groups[1][0])
	assert.Equal(t, "3.0", groups[2][0])
}
