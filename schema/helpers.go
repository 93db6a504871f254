package schema

import (
	"fmt"
	"strings"

	"github.com/git-pkgs/purl"
)

// ParseCoordinate parses an artifact coordinate from either the canonical
// "groupId:artifactId" form or a Maven package URL such as
// "pkg:maven/org.apache.commons/commons-lang3".
func ParseCoordinate(s string) (Coordinate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Coordinate{}, fmt.Errorf("coordinate is required (groupId:artifactId or pkg:maven/... purl)")
	}

	if strings.HasPrefix(s, "pkg:") {
		p, err := purl.Parse(s)
		if err != nil {
			return Coordinate{}, fmt.Errorf("invalid package URL %q: %w", s, err)
		}
		if p.Type != "maven" {
			return Coordinate{}, fmt.Errorf("unsupported package URL type %q: only maven coordinates can be scored", p.Type)
		}
		if p.Namespace == "" || p.Name == "" {
			return Coordinate{}, fmt.Errorf("package URL %q is missing a group or artifact component", s)
		}
		return Coordinate{GroupID: p.Namespace, ArtifactID: p.Name}, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Coordinate{}, fmt.Errorf("invalid coordinate %q: expected groupId:artifactId", s)
	}
	return Coordinate{GroupID: parts[0], ArtifactID: parts[1]}, nil
}

// FilterReleases drops pre-release versions (anything containing '-', e.g.
// "2.0.0-rc1" or "1.0-SNAPSHOT") and preserves the original publication order.
func FilterReleases(versions []string) []string {
	filtered := make([]string, 0, len(versions))
	for _, v := range versions {
		if strings.Contains(v, "-") {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered
}

// VersionStrings extracts the version tokens from a release list, preserving order.
func VersionStrings(releases []Release) []string {
	versions := make([]string, len(releases))
	for i, r := range releases {
		versions[i] = r.Version
	}
	return versions
}
