package scorecard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner records docker invocations and returns canned output.
type stubRunner struct {
	output  string
	err     error
	history [][]string
}

func (s *stubRunner) Run(_ context.Context, args ...string) ([]byte, error) {
	s.history = append(s.history, args)
	return []byte(s.output), s.err
}

// TestScoreParsesAggregate extracts the aggregate score from JSON output.
func TestScoreParsesAggregate(t *testing.T) {
	runner := &stubRunner{output: `{"score": 7.3, "checks": [{"name": "Maintained", "score": 10}]}`}
	c := &Client{runner: runner, image: "gcr.io/openssf/scorecard:stable", token: "ghp_test"}

	result, err := c.Score(t.Context(), "https://github.com/example/widget", false)
	require.NoError(t, err)
	assert.InDelta(t, 7.3, result.Score, 1e-9)
	assert.True(t, result.Available)
	assert.Empty(t, result.RawOutput)

	require.Len(t, runner.history, 1)
	args := strings.Join(runner.history[0], " ")
	assert.Contains(t, args, "run --rm")
	assert.Contains(t, args, "-e GITHUB_AUTH_TOKEN=ghp_test")
	assert.Contains(t, args, "--repo=https://github.com/example/widget")
	assert.Contains(t, args, "--format=json")
}

// TestScoreFullKeepsRawOutput preserves the JSON payload for inspection.
func TestScoreFullKeepsRawOutput(t *testing.T) {
	runner := &stubRunner{output: `{"score": 5.1}` + "\n"}
	c := &Client{runner: runner, image: "img"}

	result, err := c.Score(t.Context(), "https://github.com/example/widget", true)
	require.NoError(t, err)
	assert.Equal(t, `{"score": 5.1}`, result.RawOutput)
}

// TestScoreWithoutToken omits the auth environment variable.
func TestScoreWithoutToken(t *testing.T) {
	runner := &stubRunner{output: `{"score": 2.0}`}
	c := &Client{runner: runner, image: "img"}

	_, err := c.Score(t.Context(), "https://github.com/example/widget", false)
	require.NoError(t, err)
	assert.NotContains(t, strings.Join(runner.history[0], " "), "GITHUB_AUTH_TOKEN")
}

// TestScoreToolFailure surfaces docker errors with a sentinel score.
func TestScoreToolFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("docker daemon not running")}
	c := &Client{runner: runner, image: "img"}

	result, err := c.Score(t.Context(), "https://github.com/example/widget", false)
	assert.Error(t, err)
	assert.InDelta(t, -1.0, result.Score, 1e-9)
	assert.False(t, result.Available)
}

// TestScoreMalformedOutput rejects unparseable tool output.
func TestScoreMalformedOutput(t *testing.T) {
	runner := &stubRunner{output: "panic: runtime error"}
	c := &Client{runner: runner, image: "img"}

	_, err := c.Score(t.Context(), "https://github.com/example/widget", false)
	assert.Error(t, err)
}

// TestEnsureImagePullsWhenMissing falls back to docker pull.
func TestEnsureImagePullsWhenMissing(t *testing.T) {
	// First call (inspect) fails, second call (pull) succeeds.
	runner := &inspectFailRunner{}
	require.NoError(t, EnsureImage(t.Context(), runner, "img"))
	require.Len(t, runner.history, 2)
	assert.Equal(t, "image", runner.history[0][0])
	assert.Equal(t, "pull", runner.history[1][0])
}

type inspectFailRunner struct {
	history [][]string
}

func (s *inspectFailRunner) Run(_ context.Context, args ...string) ([]byte, error) {
	s.history = append(s.history, args)
	if args[0] == "image" {
		return nil, errors.New("no such image")
	}
	return nil, nil
}
