package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/huangsam/trustscore/schema"
)

// librariesProject mirrors the libraries.io project response fields we need.
type librariesProject struct {
	RepositoryURL string             `json:"repository_url"`
	Versions      []librariesRelease `json:"versions"`
}

type librariesRelease struct {
	Number      string `json:"number"`
	PublishedAt string `json:"published_at"`
}

// FetchProjectInfo returns the source repository URL and dated release list
// for a coordinate from libraries.io. Timestamps that fail to parse are kept
// as zero times so the cadence computation can skip them.
func (c *Client) FetchProjectInfo(ctx context.Context, coord schema.Coordinate) (*schema.ProjectInfo, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	endpoint := fmt.Sprintf("%s/%s", c.librariesURL, url.PathEscape(coord.String()))
	if c.apiKey != "" {
		endpoint += "?api_key=" + url.QueryEscape(c.apiKey)
	}

	payload, err := c.fetch.FetchBytes(ctx, endpoint)
	if errors.Is(err, ErrNotFound) {
		return &schema.ProjectInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching project info for %s: %w", coord, err)
	}

	var project librariesProject
	if err := json.Unmarshal(payload, &project); err != nil {
		return nil, fmt.Errorf("parsing project info for %s: %w", coord, err)
	}

	releases := make([]schema.Release, 0, len(project.Versions))
	for _, v := range project.Versions {
		rel := schema.Release{Version: v.Number}
		if t, err := time.Parse(time.RFC3339, v.PublishedAt); err == nil {
			rel.PublishedAt = t.UTC()
		}
		releases = append(releases, rel)
	}
	sort.SliceStable(releases, func(i, j int) bool {
		return releases[i].PublishedAt.Before(releases[j].PublishedAt)
	})

	return &schema.ProjectInfo{
		RepositoryURL: project.RepositoryURL,
		Releases:      releases,
	}, nil
}
