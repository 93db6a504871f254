package core

import (
	"testing"
	"time"

	"github.com/huangsam/trustscore/schema"
	"github.com/stretchr/testify/assert"
)

func datedRelease(version string, daysAgo int) schema.Release {
	return schema.Release{
		Version:     version,
		PublishedAt: time.Now().AddDate(0, 0, -daysAgo).Truncate(24 * time.Hour),
	}
}

// TestReleaseFrequency covers cadence computation and its edge cases.
func TestReleaseFrequency(t *testing.T) {
	tests := []struct {
		name     string
		releases []schema.Release
		expected float64
	}{
		{
			name:     "no releases",
			releases: nil,
			expected: 0,
		},
		{
			name:     "single release",
			releases: []schema.Release{datedRelease("1.0.0", 100)},
			expected: 0,
		},
		{
			name: "even cadence",
			releases: []schema.Release{
				datedRelease("1.0.0", 90),
				datedRelease("1.1.0", 60),
				datedRelease("1.2.0", 30),
				datedRelease("1.3.0", 0),
			},
			expected: 30,
		},
		{
			name: "two releases",
			releases: []schema.Release{
				datedRelease("1.0.0", 45),
				datedRelease("2.0.0", 0),
			},
			expected: 45,
		},
		{
			name: "missing timestamps",
			releases: []schema.Release{
				{Version: "1.0.0"},
				{Version: "1.1.0"},
			},
			expected: 0,
		},
		{
			name: "inverted publication dates",
			releases: []schema.Release{
				datedRelease("1.0.0", 0),
				datedRelease("1.1.0", 30),
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReleaseFrequency(tt.releases)
			if tt.expected == 0 {
				assert.Zero(t, got)
			} else {
				assert.InEpsilon(t, tt.expected, got, 0.05)
			}
		})
	}
}
