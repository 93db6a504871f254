package registry

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBreakerFetcher() *BreakerFetcher {
	f := NewFetcher(
		WithHTTPClient(&http.Client{Timeout: 5 * time.Second}),
		WithBaseDelay(time.Millisecond),
		WithMaxRetries(0),
	)
	return NewBreakerFetcher(f)
}

// TestBreakerPassesThroughSuccess leaves the circuit closed on healthy hosts.
func TestBreakerPassesThroughSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	bf := testBreakerFetcher()
	payload, err := bf.FetchBytes(t.Context(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(payload))

	states := bf.BreakerStates()
	for _, state := range states {
		assert.Equal(t, "closed", state)
	}
	assert.Len(t, states, 1)
}

// TestBreakerTripsAfterConsecutiveFailures opens the circuit for a dead host.
func TestBreakerTripsAfterConsecutiveFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	bf := testBreakerFetcher()
	for range 5 {
		_, err := bf.FetchBytes(t.Context(), server.URL)
		assert.Error(t, err)
	}

	// Sixth call should fail fast without reaching the server.
	_, err := bf.FetchBytes(t.Context(), server.URL)
	assert.ErrorIs(t, err, ErrUpstreamDown)

	states := bf.BreakerStates()
	assert.Len(t, states, 1)
	for _, state := range states {
		assert.Equal(t, "open", state)
	}
}

// TestExtractHost groups breakers by URL host.
func TestExtractHost(t *testing.T) {
	assert.Equal(t, "repo1.maven.org", extractHost("https://repo1.maven.org/maven2/org/x"))
	assert.Equal(t, "libraries.io", extractHost("https://libraries.io/api/Maven/g:a"))
	assert.Equal(t, "not a url", extractHost("not a url"))
}
