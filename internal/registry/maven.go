package registry

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/schema"
)

// Client resolves Maven Central metadata and libraries.io project data for an
// artifact coordinate. It implements contract.RegistryClient.
type Client struct {
	registryURL  string
	librariesURL string
	apiKey       string
	timeout      time.Duration
	fetch        *BreakerFetcher
}

// NewClient builds a registry client from the validated config.
func NewClient(cfg *contract.Config, opts ...Option) *Client {
	return &Client{
		registryURL:  cfg.RegistryURL,
		librariesURL: cfg.LibrariesURL,
		apiKey:       cfg.LibrariesAPIKey,
		timeout:      cfg.FetchTimeout,
		fetch:        NewBreakerFetcher(NewFetcher(opts...)),
	}
}

// mavenMetadata mirrors the maven-metadata.xml layout published alongside
// every artifact on Maven Central.
type mavenMetadata struct {
	GroupID    string   `xml:"groupId"`
	ArtifactID string   `xml:"artifactId"`
	Latest     string   `xml:"versioning>latest"`
	Versions   []string `xml:"versioning>versions>version"`
}

// FetchVersions returns the published release history for a coordinate from
// maven-metadata.xml, oldest first, with pre-release versions removed. A
// coordinate unknown to the registry yields an empty history, not an error.
func (c *Client) FetchVersions(ctx context.Context, coord schema.Coordinate) ([]string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	url := fmt.Sprintf("%s/%s/%s/maven-metadata.xml", c.registryURL, groupPath(coord.GroupID), coord.ArtifactID)
	payload, err := c.fetch.FetchBytes(ctx, url)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching version metadata for %s: %w", coord, err)
	}

	var meta mavenMetadata
	if err := xml.Unmarshal(payload, &meta); err != nil {
		return nil, fmt.Errorf("parsing version metadata for %s: %w", coord, err)
	}

	return schema.FilterReleases(meta.Versions), nil
}

// JarURL returns the canonical download URL for one published jar.
func (c *Client) JarURL(coord schema.Coordinate, version string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s-%s.jar",
		c.registryURL, groupPath(coord.GroupID), coord.ArtifactID, version, coord.ArtifactID, version)
}

// DownloadJar streams one published jar to the given path. It reports
// ErrNotFound when the version has no jar artifact (e.g. pom-only releases).
func (c *Client) DownloadJar(ctx context.Context, coord schema.Coordinate, version, path string) error {
	return c.fetch.FetchToFile(ctx, c.JarURL(coord, version), path)
}

// DownloadFile streams an arbitrary URL to the given path, sharing the
// client's retry and breaker policy. Used for fetching the diff tool itself.
func (c *Client) DownloadFile(ctx context.Context, url, path string) error {
	return c.fetch.FetchToFile(ctx, url, path)
}

// BreakerStates exposes per-host breaker states for diagnostics.
func (c *Client) BreakerStates() map[string]string {
	return c.fetch.BreakerStates()
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// groupPath converts a dotted groupId into its repository path form.
func groupPath(groupID string) string {
	return strings.ReplaceAll(groupID, ".", "/")
}
