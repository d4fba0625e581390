// Package resilience provides fault tolerance patterns for external calls:
// circuit breakers for feed hosts and provider APIs, and retry with
// exponential backoff and jitter.
//
// Usage:
//
//	cb := circuitbreaker.New(circuitbreaker.FeedFetchConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return fetchFeed()
//	})
//
//	err := retry.WithBackoff(ctx, retry.FeedFetchConfig(), func() error {
//	    return doFetch()
//	})
package resilience
