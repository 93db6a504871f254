package japicmp

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/huangsam/trustscore/internal/registry"
	"github.com/huangsam/trustscore/schema"
	"github.com/stretchr/testify/assert"
)

var testCoord = schema.Coordinate{GroupID: "org.example", ArtifactID: "widget"}

// stubJarSource writes placeholder jars, or fails for configured versions.
type stubJarSource struct {
	missing map[string]bool
	failAll error
}

func (s *stubJarSource) DownloadJar(_ context.Context, _ schema.Coordinate, version, path string) error {
	if s.failAll != nil {
		return s.failAll
	}
	if s.missing[version] {
		return registry.ErrNotFound
	}
	return os.WriteFile(path, []byte("jar"), 0o644)
}

// stubRunner returns canned diff tool output.
type stubRunner struct {
	output string
	err    error
	calls  int
}

func (s *stubRunner) Run(_ context.Context, _ ...string) ([]byte, error) {
	s.calls++
	return []byte(s.output), s.err
}

func testComparator(jars JarSource, runner ToolRunner) *Comparator {
	return &Comparator{jars: jars, runner: runner, jarPath: "/tmp/japicmp.jar"}
}

// TestCompareOutcomes maps diff tool results onto compatibility outcomes.
func TestCompareOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		runner   *stubRunner
		expected schema.Outcome
	}{
		{"clean diff", &stubRunner{output: "Comparing ...\n=== UNCHANGED CLASS: PUBLIC org.example.Widget\n"}, schema.Compatible},
		{"empty diff", &stubRunner{output: ""}, schema.Compatible},
		{"incompatible marker", &stubRunner{output: "! REMOVED METHOD: PUBLIC doWork()\n"}, schema.Incompatible},
		{"tool crash", &stubRunner{err: errors.New("OutOfMemoryError")}, schema.Incompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testComparator(&stubJarSource{}, tt.runner)
			outcome := c.Compare(t.Context(), testCoord, "1.0.0", "1.0.1")
			assert.Equal(t, tt.expected, outcome)
			assert.Equal(t, 1, tt.runner.calls)
		})
	}
}

// TestComparePomOnlyArtifacts never downloads or diffs bom/parent artifacts.
func TestComparePomOnlyArtifacts(t *testing.T) {
	runner := &stubRunner{}
	c := testComparator(&stubJarSource{failAll: errors.New("should not be called")}, runner)

	for _, artifact := range []string{"spring-boot-dependencies-bom", "commons-parent", "jackson-bom"} {
		coord := schema.Coordinate{GroupID: "org.example", ArtifactID: artifact}
		assert.Equal(t, schema.AssumedCompatible, c.Compare(t.Context(), coord, "1.0.0", "1.0.1"))
	}
	assert.Zero(t, runner.calls)
}

// TestCompareMissingJar assumes compatibility when a jar cannot be resolved.
func TestCompareMissingJar(t *testing.T) {
	tests := []struct {
		name string
		jars *stubJarSource
	}{
		{"older missing", &stubJarSource{missing: map[string]bool{"1.0.0": true}}},
		{"newer missing", &stubJarSource{missing: map[string]bool{"1.0.1": true}}},
		{"download failure", &stubJarSource{failAll: errors.New("connection reset")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &stubRunner{}
			c := testComparator(tt.jars, runner)
			assert.Equal(t, schema.AssumedCompatible, c.Compare(t.Context(), testCoord, "1.0.0", "1.0.1"))
			assert.Zero(t, runner.calls)
		})
	}
}

// TestIsPomOnlyArtifact covers the naming heuristic.
func TestIsPomOnlyArtifact(t *testing.T) {
	assert.True(t, IsPomOnlyArtifact("jackson-bom"))
	assert.True(t, IsPomOnlyArtifact("commons-parent"))
	assert.True(t, IsPomOnlyArtifact("Spring-BOM"))
	assert.False(t, IsPomOnlyArtifact("commons-lang3"))
	assert.False(t, IsPomOnlyArtifact("guava"))
}
