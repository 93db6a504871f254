package registry

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"
)

// BreakerFetcher wraps a Fetcher with per-host circuit breakers so a dead
// upstream (registry, libraries.io) fails fast instead of retrying forever.
type BreakerFetcher struct {
	fetcher  *Fetcher
	breakers map[string]*circuit.Breaker
	mu       sync.RWMutex
}

// NewBreakerFetcher creates a new circuit breaker wrapper for a fetcher.
func NewBreakerFetcher(f *Fetcher) *BreakerFetcher {
	return &BreakerFetcher{
		fetcher:  f,
		breakers: make(map[string]*circuit.Breaker),
	}
}

// getBreaker returns or creates a circuit breaker for the given host.
func (bf *BreakerFetcher) getBreaker(host string) *circuit.Breaker {
	bf.mu.RLock()
	breaker, exists := bf.breakers[host]
	bf.mu.RUnlock()

	if exists {
		return breaker
	}

	bf.mu.Lock()
	defer bf.mu.Unlock()

	// Double-check after acquiring write lock
	if breaker, exists := bf.breakers[host]; exists {
		return breaker
	}

	// Trips after 5 consecutive failures
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 30 * time.Second
	expBackoff.MaxInterval = 5 * time.Minute
	expBackoff.Multiplier = 2.0
	expBackoff.Reset()

	opts := &circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(5),
	}
	breaker = circuit.NewBreakerWithOptions(opts)

	bf.breakers[host] = breaker
	return breaker
}

// FetchBytes wraps the underlying fetcher's FetchBytes with circuit breaker logic.
func (bf *BreakerFetcher) FetchBytes(ctx context.Context, fetchURL string) ([]byte, error) {
	host := extractHost(fetchURL)
	breaker := bf.getBreaker(host)

	if !breaker.Ready() {
		return nil, fmt.Errorf("circuit breaker open for host %s: %w", host, ErrUpstreamDown)
	}

	var payload []byte
	err := breaker.Call(func() error {
		var fetchErr error
		payload, fetchErr = bf.fetcher.FetchBytes(ctx, fetchURL)
		return fetchErr
	}, 0)

	if err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchToFile wraps the underlying fetcher's FetchToFile with circuit breaker logic.
func (bf *BreakerFetcher) FetchToFile(ctx context.Context, fetchURL, path string) error {
	host := extractHost(fetchURL)
	breaker := bf.getBreaker(host)

	if !breaker.Ready() {
		return fmt.Errorf("circuit breaker open for host %s: %w", host, ErrUpstreamDown)
	}

	return breaker.Call(func() error {
		return bf.fetcher.FetchToFile(ctx, fetchURL, path)
	}, 0)
}

// BreakerStates returns the current state of circuit breakers per host.
func (bf *BreakerFetcher) BreakerStates() map[string]string {
	bf.mu.RLock()
	defer bf.mu.RUnlock()

	states := make(map[string]string)
	for host, breaker := range bf.breakers {
		if breaker.Tripped() {
			states[host] = "open"
		} else {
			states[host] = "closed"
		}
	}
	return states
}

// extractHost extracts a host identifier from a URL for breaker grouping.
func extractHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		if len(rawURL) > 50 {
			return rawURL[:50]
		}
		return rawURL
	}
	return parsed.Host
}
