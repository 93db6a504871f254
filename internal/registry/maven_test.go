package registry

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/trustscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCoord = schema.Coordinate{GroupID: "org.apache.commons", ArtifactID: "commons-lang3"}

func testClient(serverURL string) *Client {
	return &Client{
		registryURL:  serverURL,
		librariesURL: serverURL + "/api/Maven",
		timeout:      5 * time.Second,
		fetch: NewBreakerFetcher(NewFetcher(
			WithHTTPClient(&http.Client{Timeout: 5 * time.Second}),
			WithBaseDelay(time.Millisecond),
			WithMaxRetries(0),
		)),
	}
}

// TestFetchVersions parses maven-metadata.xml and drops pre-releases.
func TestFetchVersions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/org/apache/commons/commons-lang3/maven-metadata.xml", func(w http.ResponseWriter, _ *http.Request) {
		metadata := `<?xml version="1.0" encoding="UTF-8"?>
<metadata>
  <groupId>org.apache.commons</groupId>
  <artifactId>commons-lang3</artifactId>
  <versioning>
    <latest>3.14.0</latest>
    <versions>
      <version>3.12.0</version>
      <version>3.13.0-RC1</version>
      <version>3.13.0</version>
      <version>3.14.0-SNAPSHOT</version>
      <version>3.14.0</version>
    </versions>
  </versioning>
</metadata>`
		_, _ = w.Write([]byte(metadata))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	versions, err := testClient(server.URL).FetchVersions(t.Context(), testCoord)
	require.NoError(t, err)
	assert.Equal(t, []string{"3.12.0", "3.13.0", "3.14.0"}, versions)
}

// TestFetchVersionsUnknownArtifact yields an empty history on 404.
func TestFetchVersionsUnknownArtifact(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	versions, err := testClient(server.URL).FetchVersions(t.Context(), testCoord)
	require.NoError(t, err)
	assert.Empty(t, versions)
}

// TestFetchVersionsMalformedMetadata surfaces parse failures.
func TestFetchVersionsMalformedMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<metadata><unclosed>"))
	}))
	defer server.Close()

	_, err := testClient(server.URL).FetchVersions(t.Context(), testCoord)
	assert.Error(t, err)
}

// TestJarURL follows the Maven repository layout convention.
func TestJarURL(t *testing.T) {
	c := testClient("https://repo1.maven.org/maven2")
	assert.Equal(t,
		"https://repo1.maven.org/maven2/org/apache/commons/commons-lang3/3.14.0/commons-lang3-3.14.0.jar",
		c.JarURL(testCoord, "3.14.0"))
}

// TestDownloadJar streams a jar payload into the requested path.
func TestDownloadJar(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/org/apache/commons/commons-lang3/3.14.0/commons-lang3-3.14.0.jar", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("PK-jar"))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	path := filepath.Join(t.TempDir(), "old.jar")
	require.NoError(t, testClient(server.URL).DownloadJar(t.Context(), testCoord, "3.14.0", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PK-jar", string(data))
}

// TestDownloadJarMissing reports not-found for pom-only releases.
func TestDownloadJarMissing(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	path := filepath.Join(t.TempDir(), "old.jar")
	err := testClient(server.URL).DownloadJar(t.Context(), testCoord, "9.9.9", path)
	assert.ErrorIs(t, err, ErrNotFound)
}
