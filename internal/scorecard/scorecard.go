// Package scorecard runs the OpenSSF scorecard tool against a source
// repository through its official docker image.
package scorecard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/schema"
)

// DockerRunner executes docker commands. The default implementation shells
// out to the local 'docker' binary.
type DockerRunner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// LocalDockerRunner implements DockerRunner by executing the local docker binary.
type LocalDockerRunner struct{}

var _ DockerRunner = &LocalDockerRunner{} // Compile-time check

// Run executes docker with the given arguments and returns its stdout.
func (r *LocalDockerRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "docker", args...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return out, fmt.Errorf("docker command failed: %s", stderr)
	} else if err != nil {
		return nil, fmt.Errorf("docker command failed: %w. Ensure Docker is installed and running", err)
	}
	return out, nil
}

// Client implements contract.ScorecardClient through the scorecard docker image.
type Client struct {
	runner DockerRunner
	image  string
	token  string
}

var _ contract.ScorecardClient = &Client{} // Compile-time check

// NewClient builds a scorecard client from the validated config.
func NewClient(cfg *contract.Config) *Client {
	return &Client{
		runner: &LocalDockerRunner{},
		image:  cfg.ScorecardImage,
		token:  cfg.GithubToken,
	}
}

// scorecardOutput mirrors the top-level fields of scorecard's JSON format.
type scorecardOutput struct {
	Score float64 `json:"score"`
}

// Score runs the scorecard for repoURL. The aggregate score is always parsed
// from the JSON output; when full is true the raw JSON is kept in the result
// so individual checks can be inspected.
func (c *Client) Score(ctx context.Context, repoURL string, full bool) (schema.ScorecardResult, error) {
	args := []string{"run", "--rm"}
	if c.token != "" {
		args = append(args, "-e", "GITHUB_AUTH_TOKEN="+c.token)
	}
	args = append(args, c.image, "--repo="+repoURL, "--format=json")

	out, err := c.runner.Run(ctx, args...)
	if err != nil {
		return schema.ScorecardResult{Score: -1}, err
	}

	var parsed scorecardOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		return schema.ScorecardResult{Score: -1}, fmt.Errorf("parsing scorecard output: %w", err)
	}

	result := schema.ScorecardResult{Score: parsed.Score, Available: true}
	if full {
		result.RawOutput = strings.TrimSpace(string(out))
	}
	return result, nil
}

// EnsureImage pulls the scorecard image when it is not present locally.
func EnsureImage(ctx context.Context, runner DockerRunner, image string) error {
	if _, err := runner.Run(ctx, "image", "inspect", image); err == nil {
		return nil
	}
	contract.LogInfo(fmt.Sprintf("Pulling scorecard image %s", image))
	if _, err := runner.Run(ctx, "pull", image); err != nil {
		return fmt.Errorf("pulling scorecard image %s: %w", image, err)
	}
	return nil
}
