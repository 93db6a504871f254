// Package japicmp compares published jars for binary compatibility by
// driving the japicmp diff tool through a local JVM.
package japicmp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/internal/registry"
	"github.com/huangsam/trustscore/schema"
)

// JarSource downloads published jars for comparison. *registry.Client
// satisfies this; tests substitute canned fixtures.
type JarSource interface {
	DownloadJar(ctx context.Context, coord schema.Coordinate, version, path string) error
}

// ToolRunner executes the diff tool. The default implementation shells out to
// the local 'java' binary.
type ToolRunner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// JavaRunner implements ToolRunner by executing the local 'java' binary.
type JavaRunner struct{}

var _ ToolRunner = &JavaRunner{} // Compile-time check

// Run executes java with the given arguments and returns its stdout.
func (r *JavaRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "java", args...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return out, fmt.Errorf("java command failed: %s", stderr)
	} else if err != nil {
		return nil, fmt.Errorf("java command failed: %w. Ensure a JRE is installed and available on your PATH", err)
	}
	return out, nil
}

// Comparator implements contract.ArtifactComparator on top of japicmp.
type Comparator struct {
	jars    JarSource
	runner  ToolRunner
	jarPath string
}

var _ contract.ArtifactComparator = &Comparator{} // Compile-time check

// NewComparator creates a comparator using the given jar source and the
// japicmp jar at jarPath.
func NewComparator(jars JarSource, jarPath string) *Comparator {
	return &Comparator{
		jars:    jars,
		runner:  &JavaRunner{},
		jarPath: jarPath,
	}
}

// Compare diffs two adjacent published versions of one artifact.
//
// Failures never escape as errors. Artifacts without a code jar (bom and
// parent poms, pom-only releases) resolve to assumed-compatible since there
// is nothing to break; a diff tool crash resolves to incompatible so that a
// broken toolchain can only lower the score, never inflate it.
func (c *Comparator) Compare(ctx context.Context, coord schema.Coordinate, olderVersion, newerVersion string) schema.Outcome {
	if IsPomOnlyArtifact(coord.ArtifactID) {
		return schema.AssumedCompatible
	}

	workDir, err := os.MkdirTemp("", "trustscore-japicmp-")
	if err != nil {
		contract.LogWarn("Could not create temp directory for jar comparison", err)
		return schema.Incompatible
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	oldJar := filepath.Join(workDir, fmt.Sprintf("%s-%s.jar", coord.ArtifactID, olderVersion))
	newJar := filepath.Join(workDir, fmt.Sprintf("%s-%s.jar", coord.ArtifactID, newerVersion))

	if err := c.jars.DownloadJar(ctx, coord, olderVersion, oldJar); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return schema.AssumedCompatible
		}
		contract.LogWarn(fmt.Sprintf("Could not download %s %s", coord, olderVersion), err)
		return schema.AssumedCompatible
	}
	if err := c.jars.DownloadJar(ctx, coord, newerVersion, newJar); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return schema.AssumedCompatible
		}
		contract.LogWarn(fmt.Sprintf("Could not download %s %s", coord, newerVersion), err)
		return schema.AssumedCompatible
	}

	out, err := c.runner.Run(ctx,
		"-jar", c.jarPath,
		"--old", oldJar,
		"--new", newJar,
		"--only-incompatible",
		"--ignore-missing-classes",
	)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("Diff tool failed for %s %s -> %s", coord, olderVersion, newerVersion), err)
		return schema.Incompatible
	}

	// japicmp marks each binary-incompatible change with a '!' prefix.
	if strings.Contains(string(out), "!") {
		return schema.Incompatible
	}
	return schema.Compatible
}

// IsPomOnlyArtifact reports whether an artifact id names a bom or parent pom,
// which publish no code jar and therefore cannot break consumers.
func IsPomOnlyArtifact(artifactID string) bool {
	lowered := strings.ToLower(artifactID)
	return strings.Contains(lowered, "bom") || strings.Contains(lowered, "parent")
}
